package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Bounds applied to interactive input. The core only requires a capacity of
// at least 1; the maximums keep console tables readable.
const (
	DefaultFrameCapacity = 3
	MaxFrameCapacity     = 10
)

// Config holds simulator configuration
type Config struct {
	// Simulation Configuration
	FrameCapacity     int    `json:"frame_capacity"`     // Number of memory frames
	ReplacementPolicy string `json:"replacement_policy"` // Replacement policy (fifo)

	// Input Configuration
	MaxFrameCapacity int `json:"max_frame_capacity"` // Upper bound for interactive frame input
	MaxReferences    int `json:"max_references"`     // Upper bound for interactive reference input (0 = unbounded)

	// Performance Configuration
	EnableMetrics bool   `json:"enable_metrics"` // Whether to collect simulation metrics
	LogLevel      string `json:"log_level"`      // Log level (debug, info, warn, error)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FrameCapacity:     DefaultFrameCapacity,
		ReplacementPolicy: "fifo",
		MaxFrameCapacity:  MaxFrameCapacity,
		MaxReferences:     0, // Free entry
		EnableMetrics:     true,
		LogLevel:          "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	err = json.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	config := DefaultConfig()

	if val := os.Getenv("PAGESIM_FRAME_CAPACITY"); val != "" {
		if capacity, err := strconv.Atoi(val); err == nil {
			config.FrameCapacity = capacity
		}
	}

	if val := os.Getenv("PAGESIM_REPLACEMENT_POLICY"); val != "" {
		config.ReplacementPolicy = val
	}

	if val := os.Getenv("PAGESIM_MAX_FRAME_CAPACITY"); val != "" {
		if max, err := strconv.Atoi(val); err == nil {
			config.MaxFrameCapacity = max
		}
	}

	if val := os.Getenv("PAGESIM_MAX_REFERENCES"); val != "" {
		if max, err := strconv.Atoi(val); err == nil {
			config.MaxReferences = max
		}
	}

	if val := os.Getenv("PAGESIM_ENABLE_METRICS"); val != "" {
		config.EnableMetrics = val == "true" || val == "1"
	}

	if val := os.Getenv("PAGESIM_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.FrameCapacity < 1 {
		return ErrInvalidFrameCapacity("Validate", c.FrameCapacity)
	}

	if c.MaxFrameCapacity > 0 && c.FrameCapacity > c.MaxFrameCapacity {
		return ErrValueOutOfRange("Validate", c.FrameCapacity, 1, c.MaxFrameCapacity)
	}

	if _, err := NewReplacer(c.ReplacementPolicy); err != nil {
		return err
	}

	if c.MaxReferences < 0 {
		return fmt.Errorf("max references cannot be negative")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sibexico/PageSim/console"
	"github.com/sibexico/PageSim/sim"
)

var configPath string

// rootCmd starts the interactive menu session when called without any
// subcommands
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "pagesim simulates the FIFO page replacement algorithm.",
	Long: `pagesim simulates the FIFO page replacement algorithm used in ` +
		`operating-system virtual memory management. Run without arguments ` +
		`for an interactive menu, or use the run subcommand for a one-shot ` +
		`simulation.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		session, err := console.NewSession(os.Stdin, os.Stdout, config, newLogger(config))
		if err != nil {
			return err
		}

		return session.Run()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a JSON configuration file")
}

// loadConfig builds the configuration: an optional .env file feeds the
// environment, a --config file overrides everything.
func loadConfig() (*sim.Config, error) {
	// Missing .env is fine; explicit env vars still apply
	_ = godotenv.Load()

	if configPath != "" {
		return sim.LoadConfigFromFile(configPath)
	}

	config := sim.LoadConfigFromEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newLogger(config *sim.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(config.LogLevel),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

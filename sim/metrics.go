package sim

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks simulation statistics across runs
type Metrics struct {
	faults    atomic.Uint64
	hits      atomic.Uint64
	evictions atomic.Uint64
	runs      atomic.Uint64

	startTime time.Time
	mu        sync.RWMutex
}

// NewMetrics creates a new metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

func (m *Metrics) RecordFault() {
	m.faults.Add(1)
}

func (m *Metrics) RecordHit() {
	m.hits.Add(1)
}

func (m *Metrics) RecordEviction() {
	m.evictions.Add(1)
}

func (m *Metrics) RecordRun() {
	m.runs.Add(1)
}

// Getters

func (m *Metrics) GetFaults() uint64 {
	return m.faults.Load()
}

func (m *Metrics) GetHits() uint64 {
	return m.hits.Load()
}

func (m *Metrics) GetEvictions() uint64 {
	return m.evictions.Load()
}

func (m *Metrics) GetRuns() uint64 {
	return m.runs.Load()
}

// GetFaultRate returns faults / total references across all runs
func (m *Metrics) GetFaultRate() float64 {
	faults := m.faults.Load()
	hits := m.hits.Load()
	total := faults + hits
	if total == 0 {
		return 0.0
	}
	return float64(faults) / float64(total)
}

// GetHitRate returns hits / total references across all runs
func (m *Metrics) GetHitRate() float64 {
	faults := m.faults.Load()
	hits := m.hits.Load()
	total := faults + hits
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

func (m *Metrics) GetUptime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return time.Since(m.startTime)
}

// LogMetrics logs all metrics using structured logging
func (m *Metrics) LogMetrics(logger *slog.Logger) {
	logger.Info("Simulation Metrics",
		slog.Group("replacement",
			slog.Uint64("runs", m.GetRuns()),
			slog.Uint64("faults", m.GetFaults()),
			slog.Uint64("hits", m.GetHits()),
			slog.Uint64("evictions", m.GetEvictions()),
			slog.Float64("fault_rate", m.GetFaultRate()),
			slog.Float64("hit_rate", m.GetHitRate()),
		),
		slog.Duration("uptime", m.GetUptime()),
	)
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.faults.Store(0)
	m.hits.Store(0)
	m.evictions.Store(0)
	m.runs.Store(0)

	m.mu.Lock()
	m.startTime = time.Now()
	m.mu.Unlock()
}

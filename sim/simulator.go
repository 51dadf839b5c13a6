package sim

import (
	"fmt"
	"log/slog"

	"github.com/rs/xid"
)

// StepRecord captures the outcome of processing one page reference
type StepRecord struct {
	Index   int         // Position in the reference string (0-based)
	Page    PageID      // The referenced page
	Fault   bool        // Whether the reference caused a page fault
	Slot    int         // Slot written on a fault, -1 on a hit
	Victim  PageID      // Page evicted to make room (valid when Evicted)
	Evicted bool        // Whether an eviction happened at this step
	Note    string      // Human-readable description of the step
	Frames  []FrameSlot // Frame contents after processing this reference
}

// RunResult is the complete trace of one simulation run
type RunResult struct {
	ID            string       // Unique run identifier
	References    []PageID     // The input reference string
	FrameCapacity int          // Number of frames used
	Policy        string       // Replacement policy name
	Faults        int          // Total page faults
	Steps         []StepRecord // One record per reference, in order
	FaultRate     float64      // Faults / len(References), 0 for empty input
	HitRate       float64      // 1 - FaultRate, 0 for empty input
}

// Hits returns the number of references served without a fault
func (r *RunResult) Hits() int {
	return len(r.References) - r.Faults
}

// FaultPositions returns the 0-based indices of all faulting references
func (r *RunResult) FaultPositions() []int {
	positions := make([]int, 0, r.Faults)
	for _, step := range r.Steps {
		if step.Fault {
			positions = append(positions, step.Index)
		}
	}
	return positions
}

// FinalFrames returns the frame contents after the last step, or all-empty
// frames if no references were processed
func (r *RunResult) FinalFrames() []FrameSlot {
	if len(r.Steps) == 0 {
		return make([]FrameSlot, r.FrameCapacity)
	}
	last := r.Steps[len(r.Steps)-1].Frames
	frames := make([]FrameSlot, len(last))
	copy(frames, last)
	return frames
}

// Simulator runs page replacement simulations with a fixed configuration.
// Each run owns its own frame set and arrival queue; the simulator itself
// only accumulates metrics across runs.
type Simulator struct {
	config  *Config
	metrics *Metrics
	logger  *slog.Logger
}

// NewSimulator creates a simulator from a validated configuration
func NewSimulator(config *Config) (*Simulator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		config:  config.Clone(),
		metrics: NewMetrics(),
	}, nil
}

// SetLogger sets the logger used for per-run reporting
func (s *Simulator) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Metrics returns the metrics accumulated across runs
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

// Config returns a copy of the simulator configuration
func (s *Simulator) Config() *Config {
	return s.config.Clone()
}

// Run simulates the configured replacement policy over the reference string
// and returns the full trace. The reference string may be empty; the result
// then has zero faults, no steps, and a fault rate of 0.
func (s *Simulator) Run(references []PageID) (*RunResult, error) {
	frames, err := NewFrameSet(s.config.FrameCapacity)
	if err != nil {
		return nil, err
	}

	replacer, err := NewReplacer(s.config.ReplacementPolicy)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		ID:            xid.New().String(),
		References:    append([]PageID(nil), references...),
		FrameCapacity: s.config.FrameCapacity,
		Policy:        s.config.ReplacementPolicy,
		Steps:         make([]StepRecord, 0, len(references)),
	}

	for i, page := range references {
		step := StepRecord{
			Index: i,
			Page:  page,
			Slot:  -1,
		}

		if frames.Contains(page) {
			step.Note = "page already in memory"
			s.metrics.RecordHit()
		} else {
			step.Fault = true
			result.Faults++
			s.metrics.RecordFault()

			if frames.Full() {
				victim, ok := replacer.Victim()
				if !ok {
					// Full frame set with an empty arrival queue cannot
					// happen; both structures track the same pages.
					return nil, NewSimError(ErrCodeInternal, "Run",
						"frame set full but arrival queue empty", nil)
				}
				if _, evicted := frames.Evict(victim); !evicted {
					return nil, NewSimError(ErrCodeInternal, "Run",
						fmt.Sprintf("victim page %d not resident", victim), nil)
				}
				step.Victim = victim
				step.Evicted = true
				step.Note = fmt.Sprintf("replaced oldest page %d", victim)
				s.metrics.RecordEviction()
			} else {
				step.Note = "loaded into empty frame"
			}

			slot, err := frames.Insert(page)
			if err != nil {
				return nil, err
			}
			step.Slot = slot
			replacer.Record(page)
		}

		step.Frames = frames.Snapshot()
		result.Steps = append(result.Steps, step)
	}

	if len(references) > 0 {
		result.FaultRate = float64(result.Faults) / float64(len(references))
		result.HitRate = 1 - result.FaultRate
	}

	s.metrics.RecordRun()

	if s.logger != nil {
		s.logger.Info("simulation complete",
			slog.String("run_id", result.ID),
			slog.Int("references", len(references)),
			slog.Int("frames", result.FrameCapacity),
			slog.Int("faults", result.Faults),
			slog.Float64("fault_rate", result.FaultRate),
		)
	}

	return result, nil
}

// Simulate runs a single FIFO simulation with the given frame capacity.
// This is the one-shot form of Simulator.Run for callers that do not need
// cross-run metrics.
func Simulate(references []PageID, frameCapacity int) (*RunResult, error) {
	config := DefaultConfig()
	config.FrameCapacity = frameCapacity

	simulator, err := NewSimulator(config)
	if err != nil {
		return nil, err
	}

	return simulator.Run(references)
}

// ReplayFrames rebuilds the final frame contents by re-applying the step
// records in order, without looking at their snapshots. The result must
// equal the last step's snapshot; a mismatch means the trace is corrupt.
func ReplayFrames(steps []StepRecord, frameCapacity int) ([]FrameSlot, error) {
	if frameCapacity < 1 {
		return nil, ErrInvalidFrameCapacity("ReplayFrames", frameCapacity)
	}

	frames := make([]FrameSlot, frameCapacity)
	for _, step := range steps {
		if !step.Fault {
			continue
		}
		if step.Slot < 0 || step.Slot >= frameCapacity {
			return nil, NewSimError(ErrCodeInternal, "ReplayFrames",
				fmt.Sprintf("step %d writes out-of-range slot %d", step.Index, step.Slot), nil)
		}
		frames[step.Slot] = FrameSlot{Page: step.Page, Occupied: true}
	}
	return frames, nil
}

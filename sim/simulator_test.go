package sim

import (
	"errors"
	"reflect"
	"testing"
)

// TestSimulateClassicSequence runs the textbook sequence that saturates the
// frames and then keeps faulting under FIFO eviction
func TestSimulateClassicSequence(t *testing.T) {
	references := []PageID{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

	result, err := Simulate(references, 3)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if result.Faults != 9 {
		t.Errorf("Expected 9 faults, got %d", result.Faults)
	}

	if result.Hits() != 3 {
		t.Errorf("Expected 3 hits, got %d", result.Hits())
	}

	expectedPositions := []int{0, 1, 2, 3, 4, 5, 6, 9, 10}
	if !reflect.DeepEqual(result.FaultPositions(), expectedPositions) {
		t.Errorf("Expected fault positions %v, got %v",
			expectedPositions, result.FaultPositions())
	}
}

// TestSimulateWorkedExample runs the demo sequence used by the console layer
func TestSimulateWorkedExample(t *testing.T) {
	references := []PageID{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3}

	result, err := Simulate(references, 3)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if result.Faults != 10 {
		t.Errorf("Expected 10 faults, got %d", result.Faults)
	}

	// The two hits: the 0 at index 4 and the final 3
	if result.Steps[4].Fault {
		t.Error("Reference 0 at index 4 should be a hit")
	}
	if result.Steps[11].Fault {
		t.Error("Reference 3 at index 11 should be a hit")
	}

	// First replacement evicts 7, the first arrival
	step := result.Steps[3]
	if !step.Evicted || step.Victim != 7 {
		t.Errorf("Expected step 3 to evict page 7, got evicted=%v victim=%d",
			step.Evicted, step.Victim)
	}
	if step.Note != "replaced oldest page 7" {
		t.Errorf("Unexpected note: %q", step.Note)
	}

	expectedRate := 10.0 / 12.0
	if result.FaultRate < expectedRate-0.0001 || result.FaultRate > expectedRate+0.0001 {
		t.Errorf("Expected fault rate %.4f, got %.4f", expectedRate, result.FaultRate)
	}
}

// TestSimulateEmptyReferences tests the empty input edge case
func TestSimulateEmptyReferences(t *testing.T) {
	result, err := Simulate(nil, 3)
	if err != nil {
		t.Fatalf("Empty reference string should be valid: %v", err)
	}

	if result.Faults != 0 {
		t.Errorf("Expected 0 faults, got %d", result.Faults)
	}

	if len(result.Steps) != 0 {
		t.Errorf("Expected no steps, got %d", len(result.Steps))
	}

	if result.FaultRate != 0 {
		t.Errorf("Expected fault rate 0, got %f", result.FaultRate)
	}

	if result.HitRate != 0 {
		t.Errorf("Expected hit rate 0, got %f", result.HitRate)
	}
}

// TestSimulateSingleFrame tests repeated access to one page with one frame
func TestSimulateSingleFrame(t *testing.T) {
	result, err := Simulate([]PageID{5, 5, 5, 5}, 1)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if result.Faults != 1 {
		t.Errorf("Expected 1 fault, got %d", result.Faults)
	}

	if result.Hits() != 3 {
		t.Errorf("Expected 3 hits, got %d", result.Hits())
	}

	if result.Steps[0].Note != "loaded into empty frame" {
		t.Errorf("Unexpected note: %q", result.Steps[0].Note)
	}
}

// TestSimulateInvalidCapacity tests that bad capacities fail before any work
func TestSimulateInvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "zero", capacity: 0},
		{name: "negative", capacity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Simulate([]PageID{1, 2, 3}, tt.capacity)
			if err == nil {
				t.Fatal("Expected an error for invalid capacity")
			}
			if result != nil {
				t.Error("No result should be produced on invalid capacity")
			}
			if !IsErrorCode(err, ErrCodeInvalidFrameCapacity) {
				t.Errorf("Expected invalid frame capacity error, got %v", err)
			}
		})
	}
}

// TestSimulateDeterministic tests that identical inputs yield identical traces
func TestSimulateDeterministic(t *testing.T) {
	references := []PageID{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	first, err := Simulate(references, 4)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	second, err := Simulate(references, 4)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if first.Faults != second.Faults {
		t.Errorf("Fault counts differ: %d vs %d", first.Faults, second.Faults)
	}

	if !reflect.DeepEqual(first.Steps, second.Steps) {
		t.Error("Step traces differ between identical runs")
	}

	if first.FaultRate != second.FaultRate {
		t.Errorf("Fault rates differ: %f vs %f", first.FaultRate, second.FaultRate)
	}
}

// TestSimulateInvariants checks per-step frame invariants over a long mixed
// sequence: occupancy never exceeds capacity, snapshots hold no duplicates,
// and the first touch of every distinct page faults
func TestSimulateInvariants(t *testing.T) {
	references := []PageID{
		2, 3, 2, 1, 5, 2, 4, 5, 3, 2, 5, 2, 7, 7, 1, 5, 6, 2, 3, 6,
	}
	capacity := 4

	result, err := Simulate(references, capacity)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	seen := make(map[PageID]bool)
	for _, step := range result.Steps {
		if !seen[step.Page] && !step.Fault {
			t.Errorf("First touch of page %d at step %d did not fault",
				step.Page, step.Index)
		}
		seen[step.Page] = true

		occupied := 0
		resident := make(map[PageID]bool)
		for _, slot := range step.Frames {
			if !slot.Occupied {
				continue
			}
			occupied++
			if resident[slot.Page] {
				t.Errorf("Step %d: page %d resident twice", step.Index, slot.Page)
			}
			resident[slot.Page] = true
		}

		if occupied > capacity {
			t.Errorf("Step %d: %d pages resident, capacity %d",
				step.Index, occupied, capacity)
		}
	}

	// Fault count bounds: at least min(capacity, distinct), at most len(refs)
	distinct := len(seen)
	min := capacity
	if distinct < min {
		min = distinct
	}
	if result.Faults < min || result.Faults > len(references) {
		t.Errorf("Fault count %d outside [%d, %d]", result.Faults, min, len(references))
	}
}

// TestArrivalQueueMatchesFrameSet drives the arrival queue and the frame set
// in lockstep through the replacement rule and checks that both structures
// always hold the same set of pages
func TestArrivalQueueMatchesFrameSet(t *testing.T) {
	references := []PageID{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	capacity := 3

	frames, err := NewFrameSet(capacity)
	if err != nil {
		t.Fatalf("NewFrameSet failed: %v", err)
	}
	replacer := NewFIFOReplacer()

	for i, page := range references {
		if !frames.Contains(page) {
			if frames.Full() {
				victim, ok := replacer.Victim()
				if !ok {
					t.Fatalf("Step %d: full frame set but empty queue", i)
				}
				if _, evicted := frames.Evict(victim); !evicted {
					t.Fatalf("Step %d: victim %d not resident", i, victim)
				}
			}
			if _, err := frames.Insert(page); err != nil {
				t.Fatalf("Step %d: insert failed: %v", i, err)
			}
			replacer.Record(page)
		}

		if replacer.Size() != frames.Resident() {
			t.Fatalf("Step %d: queue holds %d pages, frames hold %d",
				i, replacer.Size(), frames.Resident())
		}
		if replacer.Size() > capacity {
			t.Fatalf("Step %d: queue length %d exceeds capacity %d",
				i, replacer.Size(), capacity)
		}
		for _, queued := range replacer.Pages() {
			if !frames.Contains(queued) {
				t.Fatalf("Step %d: queued page %d not resident", i, queued)
			}
		}
	}
}

// TestReplayMatchesFinalSnapshot rebuilds the final frames from the step
// records alone and compares against the last snapshot
func TestReplayMatchesFinalSnapshot(t *testing.T) {
	references := []PageID{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3}

	result, err := Simulate(references, 3)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	replayed, err := ReplayFrames(result.Steps, result.FrameCapacity)
	if err != nil {
		t.Fatalf("ReplayFrames failed: %v", err)
	}

	if !reflect.DeepEqual(replayed, result.FinalFrames()) {
		t.Errorf("Replayed frames %v do not match final snapshot %v",
			replayed, result.FinalFrames())
	}
}

// TestSimulatorRunIsolation tests that runs share no frame state
func TestSimulatorRunIsolation(t *testing.T) {
	config := DefaultConfig()
	config.FrameCapacity = 2

	simulator, err := NewSimulator(config)
	if err != nil {
		t.Fatalf("NewSimulator failed: %v", err)
	}

	first, err := simulator.Run([]PageID{1, 2, 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// A second run starts from empty frames: page 1 must fault again
	second, err := simulator.Run([]PageID{1})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !second.Steps[0].Fault {
		t.Error("First reference of a fresh run should fault")
	}

	if first.ID == second.ID {
		t.Error("Runs should carry distinct IDs")
	}

	// Metrics accumulate across both runs
	if simulator.Metrics().GetRuns() != 2 {
		t.Errorf("Expected 2 runs recorded, got %d", simulator.Metrics().GetRuns())
	}
	if simulator.Metrics().GetFaults() != 4 {
		t.Errorf("Expected 4 faults recorded, got %d", simulator.Metrics().GetFaults())
	}
}

// TestSimulateSnapshotUnchangedOnHit tests that a hit leaves the frames as-is
func TestSimulateSnapshotUnchangedOnHit(t *testing.T) {
	result, err := Simulate([]PageID{1, 2, 1}, 3)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	hit := result.Steps[2]
	if hit.Fault {
		t.Fatal("Third reference should be a hit")
	}
	if hit.Slot != -1 {
		t.Errorf("Hit should not write a slot, got %d", hit.Slot)
	}
	if !reflect.DeepEqual(hit.Frames, result.Steps[1].Frames) {
		t.Error("Hit changed the frame snapshot")
	}
}

// TestNewSimulatorUnknownPolicy tests the policy factory seam
func TestNewSimulatorUnknownPolicy(t *testing.T) {
	config := DefaultConfig()
	config.ReplacementPolicy = "lru"

	_, err := NewSimulator(config)
	if err == nil {
		t.Fatal("Expected an error for unknown policy")
	}
	if !errors.Is(err, &SimError{Code: ErrCodeUnknownPolicy}) {
		t.Errorf("Expected unknown policy error, got %v", err)
	}
}

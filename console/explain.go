package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sibexico/PageSim/sim"
)

// ExampleReferences is the worked example shown by the demo menu option
var ExampleReferences = []sim.PageID{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3}

// ExampleFrameCapacity is the frame count used by the worked example
const ExampleFrameCapacity = 3

// ExplainAlgorithm writes the FIFO algorithm description
func ExplainAlgorithm(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "FIFO ALGORITHM EXPLANATION:")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "1. FIFO (First-In, First-Out): First page in is first page out")
	fmt.Fprintln(w, "2. Uses a queue to track the order of pages in memory")
	fmt.Fprintln(w, "3. When page replacement is needed:")
	fmt.Fprintln(w, "   - Remove the page at the front of the queue (oldest)")
	fmt.Fprintln(w, "   - Add new page to the back of the queue")
	fmt.Fprintln(w, "4. Page fault occurs when requested page is not in memory")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
}

// ExplainResults writes a narrated interpretation of a run's statistics
func ExplainResults(w io.Writer, result *sim.RunResult) {
	total := len(result.References)

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "RESULTS EXPLANATION:")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintf(w, "With reference string of %d pages:\n", total)
	fmt.Fprintf(w, "- %d page faults occurred\n", result.Faults)
	fmt.Fprintf(w, "- Page fault rate is %.2f%%\n", result.FaultRate*100)
	fmt.Fprintln(w, "\nThis means:")
	fmt.Fprintf(w, "* %d/%d accesses required loading from disk\n", result.Faults, total)
	fmt.Fprintf(w, "* %d/%d accesses found page in RAM\n", result.Hits(), total)
	fmt.Fprintf(w, "* Performance: %.2f%% fast accesses\n", result.HitRate*100)
}

// RunExample runs the canned demonstration: fixed sample data, algorithm
// explanation, full results, and narrated statistics.
func RunExample(w io.Writer) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "EXAMPLE DEMONSTRATION: FIFO PAGE REPLACEMENT ALGORITHM")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))

	fmt.Fprintf(w, "Number of frames: %d\n", ExampleFrameCapacity)
	fmt.Fprintf(w, "Reference string: %s\n", formatReferences(ExampleReferences))
	fmt.Fprintf(w, "Number of references: %d\n", len(ExampleReferences))

	ExplainAlgorithm(w)

	result, err := sim.Simulate(ExampleReferences, ExampleFrameCapacity)
	if err != nil {
		return err
	}

	RenderResults(w, result)
	ExplainResults(w, result)

	return nil
}

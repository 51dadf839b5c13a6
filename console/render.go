package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sibexico/PageSim/sim"
)

const lineWidth = 80

// RenderResults writes the full report for one run: header, step-by-step
// table, and summary statistics.
func RenderResults(w io.Writer, result *sim.RunResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "FIFO PAGE REPLACEMENT ALGORITHM - RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))

	fmt.Fprintf(w, "Number of frames: %d\n", result.FrameCapacity)
	fmt.Fprintf(w, "Reference string: %s\n", formatReferences(result.References))
	fmt.Fprintf(w, "Number of references: %d\n", len(result.References))

	RenderStepTable(w, result)
	RenderSummary(w, result)
}

// RenderStepTable writes the per-reference trace table
func RenderStepTable(w io.Writer, result *sim.RunResult) {
	fmt.Fprintln(w, "\nStep | Page Ref | Memory State               | Page Fault | Note")
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))

	for _, step := range result.Steps {
		faultStr := "NO"
		if step.Fault {
			faultStr = "YES"
		}

		fmt.Fprintf(w, "%4d | %8d | %-25s | %-10s | %s\n",
			step.Index+1,
			step.Page,
			FormatFrames(step.Frames),
			faultStr,
			step.Note,
		)
	}
}

// RenderSummary writes the aggregate statistics block
func RenderSummary(w io.Writer, result *sim.RunResult) {
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))
	fmt.Fprintf(w, "Total page faults: %d\n", result.Faults)
	fmt.Fprintf(w, "Fault positions: %s\n", formatPositions(result.FaultPositions()))
	fmt.Fprintf(w, "Page fault rate: %.2f%%\n", result.FaultRate*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "- Total accesses: %d\n", len(result.References))
	fmt.Fprintf(w, "- Page faults: %d\n", result.Faults)
	fmt.Fprintf(w, "- Successful accesses: %d\n", result.Hits())
	fmt.Fprintf(w, "- Success rate: %.2f%%\n", result.HitRate*100)
}

// FormatFrames renders frame slots as "[7] [0] [ ]" with empty-slot markers
func FormatFrames(frames []sim.FrameSlot) string {
	cells := make([]string, len(frames))
	for i, slot := range frames {
		if slot.Occupied {
			cells[i] = fmt.Sprintf("[%d]", slot.Page)
		} else {
			cells[i] = "[ ]"
		}
	}
	return strings.Join(cells, " ")
}

func formatReferences(references []sim.PageID) string {
	parts := make([]string, len(references))
	for i, page := range references {
		parts[i] = fmt.Sprintf("%d", page)
	}
	return strings.Join(parts, " ")
}

func formatPositions(positions []int) string {
	if len(positions) == 0 {
		return "none"
	}
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = fmt.Sprintf("%d", pos+1)
	}
	return strings.Join(parts, ", ")
}

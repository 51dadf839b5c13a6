// Package console implements the interactive front end of the simulator:
// input parsing and re-prompting, result rendering, and the main menu.
// It validates everything before handing typed values to the sim package.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sibexico/PageSim/sim"
)

// ParseFrameCapacity converts raw text into a frame count within [1, max].
// A max of 0 disables the upper bound.
func ParseFrameCapacity(raw string, max int) (int, error) {
	trimmed := strings.TrimSpace(raw)

	capacity, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, sim.ErrMalformedNumber("ParseFrameCapacity", trimmed, err)
	}

	if capacity < 1 || (max > 0 && capacity > max) {
		upper := max
		if upper == 0 {
			upper = capacity
		}
		return 0, sim.ErrValueOutOfRange("ParseFrameCapacity", capacity, 1, upper)
	}

	return capacity, nil
}

// ParseReferences converts a whitespace-separated list of numbers into a
// page reference string. A maxLen of 0 disables the length bound.
func ParseReferences(raw string, maxLen int) ([]sim.PageID, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, sim.ErrEmptyReferenceString("ParseReferences")
	}

	if maxLen > 0 && len(fields) > maxLen {
		return nil, sim.ErrTooManyReferences("ParseReferences", len(fields), maxLen)
	}

	references := make([]sim.PageID, 0, len(fields))
	for _, field := range fields {
		page, err := strconv.Atoi(field)
		if err != nil {
			return nil, sim.ErrMalformedNumber("ParseReferences", field, err)
		}
		references = append(references, sim.PageID(page))
	}

	return references, nil
}

// Prompter reads interactive input line by line and re-asks until the
// input parses. It never returns unvalidated values; the only error it
// reports is running out of input.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine reads one line of input
func (p *Prompter) ReadLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// FrameCapacity prompts for a frame count until a valid one is entered
func (p *Prompter) FrameCapacity(max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Enter number of frames (1-%d): ", max)

		line, err := p.ReadLine()
		if err != nil {
			return 0, err
		}

		capacity, err := ParseFrameCapacity(line, max)
		if err == nil {
			return capacity, nil
		}

		if sim.IsErrorCode(err, sim.ErrCodeValueOutOfRange) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d!\n", max)
		} else {
			fmt.Fprintln(p.out, "Please enter a valid number!")
		}
	}
}

// References prompts for a reference string until a valid one is entered
func (p *Prompter) References(maxLen int) ([]sim.PageID, error) {
	fmt.Fprintln(p.out, "\nEnter page reference string (numbers separated by spaces):")
	fmt.Fprintln(p.out, "Example: 7 0 1 2 0 3 0 4 2 3 0 3")

	for {
		fmt.Fprint(p.out, "Reference string: ")

		line, err := p.ReadLine()
		if err != nil {
			return nil, err
		}

		references, err := ParseReferences(line, maxLen)
		if err == nil {
			return references, nil
		}

		switch sim.GetErrorCode(err) {
		case sim.ErrCodeEmptyReferenceString:
			fmt.Fprintln(p.out, "String cannot be empty!")
		case sim.ErrCodeTooManyReferences:
			fmt.Fprintf(p.out, "Please enter at most %d numbers!\n", maxLen)
		default:
			fmt.Fprintln(p.out, "Please enter only numbers!")
		}
	}
}

// Continue asks whether to keep the session going.
// Returns false when the user enters 'q' or input runs out.
func (p *Prompter) Continue() bool {
	fmt.Fprint(p.out, "\nPress Enter to continue, or 'q' to quit: ")

	line, err := p.ReadLine()
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) != "q"
}

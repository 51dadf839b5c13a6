package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sibexico/PageSim/sim"
)

// Session drives the interactive menu loop. It owns the prompter and the
// simulator; metrics accumulate across runs at the same frame capacity and
// are logged when the session ends.
type Session struct {
	prompter  *Prompter
	out       io.Writer
	config    *sim.Config
	logger    *slog.Logger
	simulator *sim.Simulator
}

// NewSession creates an interactive session over the given streams
func NewSession(in io.Reader, out io.Writer, config *sim.Config, logger *slog.Logger) (*Session, error) {
	if config == nil {
		config = sim.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		prompter: NewPrompter(in, out),
		out:      out,
		config:   config.Clone(),
		logger:   logger,
	}, nil
}

// Run loops over the main menu until the user exits or input runs out
func (s *Session) Run() error {
	for {
		s.displayMenu()
		fmt.Fprint(s.out, "Enter your choice (1-3): ")

		line, err := s.prompter.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		cont, err := s.handleChoice(strings.TrimSpace(line))
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !cont {
			break
		}
	}

	if s.config.EnableMetrics && s.logger != nil && s.simulator != nil {
		s.simulator.Metrics().LogMetrics(s.logger)
	}

	return nil
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "FIFO PAGE REPLACEMENT ALGORITHM SIMULATOR")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "1. Enter data from keyboard and run simulation")
	fmt.Fprintln(s.out, "2. View example demonstration")
	fmt.Fprintln(s.out, "3. Exit program")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
}

// handleChoice dispatches one menu choice and reports whether to continue
func (s *Session) handleChoice(choice string) (bool, error) {
	switch choice {
	case "1":
		if err := s.runFromInput(); err != nil {
			return false, err
		}
		return s.prompter.Continue(), nil
	case "2":
		if err := RunExample(s.out); err != nil {
			return false, err
		}
		return s.prompter.Continue(), nil
	case "3":
		fmt.Fprintln(s.out, "Thank you for using the program!")
		return false, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice! Please enter 1, 2, or 3.")
		return true, nil
	}
}

// runFromInput prompts for frame count and reference string, then runs
// one simulation and renders the results
func (s *Session) runFromInput() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "USER INPUT")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))

	capacity, err := s.prompter.FrameCapacity(s.config.MaxFrameCapacity)
	if err != nil {
		return err
	}

	references, err := s.prompter.References(s.config.MaxReferences)
	if err != nil {
		return err
	}

	result, err := s.runSimulation(references, capacity)
	if err != nil {
		return err
	}

	RenderResults(s.out, result)
	return nil
}

// runSimulation runs one simulation, reusing the session simulator so
// metrics accumulate. The frame capacity changes per run, so the simulator
// is rebuilt when the requested capacity differs.
func (s *Session) runSimulation(references []sim.PageID, capacity int) (*sim.RunResult, error) {
	if s.simulator == nil || s.simulator.Config().FrameCapacity != capacity {
		config := s.config.Clone()
		config.FrameCapacity = capacity

		simulator, err := sim.NewSimulator(config)
		if err != nil {
			return nil, err
		}
		if s.logger != nil {
			simulator.SetLogger(s.logger)
		}
		s.simulator = simulator
	}

	return s.simulator.Run(references)
}

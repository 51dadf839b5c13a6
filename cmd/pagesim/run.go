package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sibexico/PageSim/console"
	"github.com/sibexico/PageSim/sim"
)

var (
	runFrames     int
	runReferences string
	runExplain    bool
)

// runCmd performs a single non-interactive simulation
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print the trace.",
	Long: "`run --frames 3 --refs \"7 0 1 2 0 3 0 4 2 3 0 3\"` simulates " +
		"the reference string once and prints the step table and summary.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		if runFrames != 0 {
			config.FrameCapacity = runFrames
			if err := config.Validate(); err != nil {
				return err
			}
		}

		references, err := console.ParseReferences(runReferences, config.MaxReferences)
		if err != nil {
			return err
		}

		logger := newLogger(config)

		simulator, err := sim.NewSimulator(config)
		if err != nil {
			return err
		}
		simulator.SetLogger(logger)

		result, err := simulator.Run(references)
		if err != nil {
			return err
		}

		if runExplain {
			console.ExplainAlgorithm(os.Stdout)
		}
		console.RenderResults(os.Stdout, result)

		if config.EnableMetrics {
			simulator.Metrics().LogMetrics(logger)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runFrames, "frames", 0,
		"Number of memory frames (defaults to the configured capacity)")
	runCmd.Flags().StringVar(&runReferences, "refs", "",
		"Page reference string, numbers separated by spaces")
	runCmd.Flags().BoolVar(&runExplain, "explain", false,
		"Print the algorithm explanation before the results")
	_ = runCmd.MarkFlagRequired("refs")
}

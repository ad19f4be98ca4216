package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir string
	debug   bool
	scene   sceneFlags
	logFile *os.File
}

// newRootCmd wires every subcommand. With no subcommand the scene opens in
// a window.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "linesim",
		Short:         "animated horizontal and vertical line segments",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := setupLogging(opts.dataDir, opts.debug)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			opts.logFile = f
			log.Printf("linesim %s starting", cmd.Name())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dataDir, "data", ".linesim", "data directory")
	pf.BoolVar(&opts.debug, "debug", false, "write a debug log to <data>/"+logFileName)
	opts.scene.register(pf)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runSimulation(cmd, opts) },
	}
	runCmd.Flags().IntVar(&opts.scene.sampleEvery, "sample", 10, "record a frame every n ticks")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runLive(cmd, opts) },
	}
	liveCmd.Flags().StringVar(&opts.scene.theme, "theme", "minimal", "panel theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the scene in a window",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runGUI(cmd, opts) },
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return listRuns(cmd, opts) },
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot metric series of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return plotRun(cmd, opts, args[0]) },
	}
	plotCmd.Flags().StringVar(&opts.scene.metric, "metric", "", "plot only this metric")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return exportRun(cmd, opts, args[0]) },
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the last frame of a run, or one metric series, to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return exportSVG(cmd, opts, args[0]) },
	}
	exportSVGCmd.Flags().StringVarP(&opts.scene.output, "output", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().StringVar(&opts.scene.metric, "metric", "", "chart this metric series instead of the frame")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames and series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return exportJSON(cmd, opts, args[0]) },
	}
	exportJSONCmd.Flags().StringVarP(&opts.scene.output, "output", "o", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return analyzeRun(cmd, opts, args[0]) },
	}
	analyzeCmd.Flags().StringVar(&opts.scene.metric, "metric", "", "analyze only this metric")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario and store the results",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return runScenario(cmd, opts, args[0]) },
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [policy]",
		Short: "list available presets for a policy",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return listPresets(cmd, args[0]) },
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the selected policy over several scene sizes",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return benchPolicy(cmd, opts) },
	}
	benchCmd.Flags().IntVar(&opts.scene.runs, "runs", 4, "parallel runs per size")

	policiesCmd := &cobra.Command{
		Use:   "policies",
		Short: "list update policies",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return listPolicies(cmd) },
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, exportCmd, exportSVGCmd, exportJSONCmd, analyzeCmd, scenarioCmd, presetsCmd, benchCmd, policiesCmd)
	return rootCmd
}

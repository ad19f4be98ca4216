package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/linesim/internal/analysis"
	"github.com/san-kum/linesim/internal/automation"
	"github.com/san-kum/linesim/internal/config"
	"github.com/san-kum/linesim/internal/export"
	"github.com/san-kum/linesim/internal/gui"
	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
	"github.com/san-kum/linesim/internal/sim"
	"github.com/san-kum/linesim/internal/storage"
	"github.com/san-kum/linesim/internal/viz"
	"github.com/spf13/cobra"
)

func runSimulation(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, &opts.scene)
	if err != nil {
		return err
	}

	st := storage.New(opts.dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s, err := automation.NewSimulator(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %s with %d segments...\n", cfg.Policy, cfg.Count)
	start := time.Now()

	result, err := s.Run(cmd.Context(), sim.Config{
		Ticks:         cfg.Ticks,
		Bounds:        cfg.Bounds(),
		SampleEvery:   opts.scene.sampleEvery,
		ValidateState: true,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := saveRun(st, cfg, result)
	if err != nil {
		return err
	}
	log.Printf("run %s: %d ticks in %v", runID, result.TicksTaken, elapsed)

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "ticks: %d\n", result.TicksTaken)
	fmt.Fprintf(out, "frames: %d\n", len(result.Frames))
	fmt.Fprintln(out, "\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(out, "  %s: %.6f\n", name, result.Metrics[name])
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "error: %v\n", e)
	}
	return nil
}

func saveRun(st *storage.Store, cfg *config.Config, result *sim.Result) (string, error) {
	return st.Save(storage.RunMetadata{
		Policy: cfg.Policy,
		Seed:   cfg.Seed,
		Count:  cfg.Count,
		Ticks:  result.TicksTaken,
		Weight: cfg.Weight,
		Color:  cfg.Color,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, result)
}

func runScenario(cmd *cobra.Command, opts *rootOptions, path string) error {
	sc, err := automation.LoadScenario(path)
	if err != nil {
		return err
	}

	st := storage.New(opts.dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario %s: %d steps\n", sc.Name, len(sc.Steps))
	results, err := automation.RunScenario(cmd.Context(), sc, func(cfg *config.Config, r *sim.Result) (string, error) {
		return saveRun(st, cfg, r)
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN ID\tPOLICY\tCOUNT\tTICKS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i+1, r.RunID, r.Config.Policy, r.Config.Count, r.Result.TicksTaken)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func runLive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, &opts.scene)
	if err != nil {
		return err
	}
	m, err := viz.NewModel(viz.Options{
		Title:  cfg.Policy,
		Build:  func() (*sim.Simulator, error) { return automation.NewSimulator(cfg) },
		Bounds: cfg.Bounds(),
		FPS:    cfg.FPS,
		Color:  cfg.Color,
		Theme:  opts.scene.theme,
	})
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, &opts.scene)
	if err != nil {
		return err
	}
	stroke, err := config.ParseColor(cfg.Color)
	if err != nil {
		return err
	}
	return gui.Run(cmd.Context(), gui.Options{
		Title:  "linesim: " + cfg.Policy,
		Width:  int32(cfg.Width),
		Height: int32(cfg.Height),
		FPS:    int32(cfg.FPS),
		Weight: cfg.Weight,
		Color:  stroke,
		Build:  func() (*sim.Simulator, error) { return automation.NewSimulator(cfg) },
	})
}

func listRuns(cmd *cobra.Command, opts *rootOptions) error {
	st := storage.New(opts.dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOLICY\tTIME\tCOUNT\tTICKS\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Policy,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Ticks,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, opts *rootOptions, runID string) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	names := sortedKeys(series)
	if opts.scene.metric != "" {
		if _, ok := series[opts.scene.metric]; !ok {
			return fmt.Errorf("unknown metric %q (available: %s)", opts.scene.metric, strings.Join(names, ", "))
		}
		names = []string{opts.scene.metric}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "policy: %s\n\n", meta.Policy)

	plotted := 0
	for _, name := range names {
		data := series[name]
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs tick"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("no data to plot")
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, opts *rootOptions, runID string) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	names := sortedKeys(series)
	if opts.scene.metric != "" {
		if _, ok := series[opts.scene.metric]; !ok {
			return fmt.Errorf("unknown metric %q (available: %s)", opts.scene.metric, strings.Join(names, ", "))
		}
		names = []string{opts.scene.metric}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frequency analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "policy: %s\n\n", meta.Policy)

	for _, name := range names {
		ps := analysis.PowerSpectrum(series[name])
		if len(ps) > 1 {
			graph := asciigraph.Plot(ps[:max(len(ps)/4, 2)],
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption("power spectrum ("+name+")"),
			)
			fmt.Fprintln(out, graph)
		}
		if peak, ok := analysis.DominantPeriod(series[name]); ok {
			fmt.Fprintf(out, "%s: period %.1f ticks (bin %d)\n\n", name, peak.Period, peak.Bin)
		} else {
			fmt.Fprintf(out, "%s: no periodic component\n\n", name)
		}
	}
	return nil
}

func exportRun(cmd *cobra.Command, opts *rootOptions, runID string) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, opts *rootOptions, runID string) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	var svg string
	if opts.scene.metric != "" {
		series, err := st.LoadSeries(runID)
		if err != nil {
			return err
		}
		values, ok := series[opts.scene.metric]
		if !ok {
			return fmt.Errorf("unknown metric %q", opts.scene.metric)
		}
		svg = export.SeriesToSVG(values, 800, 300, "#00ff88")
	} else {
		frames, err := st.LoadFrames(runID)
		if err != nil {
			return err
		}
		if len(frames) == 0 {
			return fmt.Errorf("run %s has no frames", runID)
		}
		stroke, err := config.ParseColor(meta.Color)
		if err != nil {
			return err
		}
		last := frames[len(frames)-1]
		b := lines.BoundsFromSize(float32(meta.Width), float32(meta.Height))
		svg = export.SegmentsToSVG(last.Segments, b, meta.Weight, stroke)
	}

	return writeOutput(cmd, opts.scene.output, func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}

func exportJSON(cmd *cobra.Command, opts *rootOptions, runID string) error {
	result, err := loadResult(storage.New(opts.dataDir), runID)
	if err != nil {
		return err
	}
	if opts.scene.output != "" {
		if err := export.ExportJSON(opts.scene.output, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", opts.scene.output)
		return nil
	}
	return export.WriteJSON(cmd.OutOrStdout(), result)
}

// loadResult rebuilds a sim.Result from a stored run.
func loadResult(st *storage.Store, runID string) (*sim.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, err
	}
	return &sim.Result{
		Policy:     meta.Policy,
		Frames:     frames,
		Series:     series,
		Metrics:    meta.Metrics,
		TicksTaken: meta.Ticks,
	}, nil
}

func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, name string) error {
	pol, err := policy.Parse(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	presets := config.ListPresets(pol)
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for policy: %s\n", pol)
		return nil
	}
	sort.Strings(presets)
	fmt.Fprintf(out, "presets for %s:\n", pol)
	for _, p := range presets {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}

func listPolicies(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for _, name := range policy.Names() {
		fmt.Fprintf(out, "%s\n", name)
	}
	return nil
}

func benchPolicy(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, &opts.scene)
	if err != nil {
		return err
	}
	runs := max(opts.scene.runs, 1)
	counts := []int{100, 1000, 10000}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %s (%d ticks, %d runs per size)\n\n", cfg.Policy, cfg.Ticks, runs)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENTS\tTICKS\tTIME\tSEGMENT-TICKS/SEC")

	for _, n := range counts {
		gen := cfg.GenConfig()
		gen.Count = n
		ens := sim.NewEnsemble(gen, func() (lines.Policy, error) {
			return policy.New(cfg.Policy, cfg.PolicyParams())
		}, runs, cfg.Seed)

		start := time.Now()
		results, err := ens.Run(cmd.Context(), sim.Config{
			Ticks:  cfg.Ticks,
			Bounds: cfg.Bounds(),
		})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		ticks := 0
		for _, r := range results {
			ticks += r.TicksTaken
		}
		rate := float64(ticks) * float64(n) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, ticks, elapsed, rate)
	}

	return w.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

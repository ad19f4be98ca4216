package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/linesim/internal/export"
	"github.com/san-kum/linesim/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// storedRun performs one headless run and returns its data dir and id.
func storedRun(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	out, err := execute(t, "run", "--data", dir, "--policy", "bounce", "--count", "20", "--ticks", "30", "--seed", "7")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "run id: move_") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	runs, err := storage.New(dir).List()
	if err != nil || len(runs) != 1 {
		t.Fatalf("expected one stored run, got %d (%v)", len(runs), err)
	}
	return dir, runs[0].ID
}

func TestRunCommand(t *testing.T) {
	dir, id := storedRun(t)

	meta, err := storage.New(dir).Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Policy != "move" || meta.Count != 20 || meta.Ticks != 30 || meta.Seed != 7 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if _, ok := meta.Metrics["mean_length"]; !ok {
		t.Error("metrics missing from metadata")
	}
}

func TestRunCommand_InvalidPolicy(t *testing.T) {
	_, err := execute(t, "run", "--data", t.TempDir(), "--policy", "spin")
	if err == nil || !strings.Contains(err.Error(), "unknown policy") {
		t.Errorf("err = %v, want unknown policy", err)
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--data", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no runs found") {
		t.Errorf("unexpected output:\n%s", out)
	}

	dir, id := storedRun(t)
	out, err = execute(t, "list", "--data", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "POLICY") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPlotCommand(t *testing.T) {
	dir, id := storedRun(t)

	out, err := execute(t, "plot", id, "--data", dir, "--metric", "extent")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "extent vs tick") || strings.Contains(out, "mean_length vs tick") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "plot", id, "--data", dir, "--metric", "nope"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestExportCommands(t *testing.T) {
	dir, id := storedRun(t)

	out, err := execute(t, "export", id, "--data", dir)
	if err != nil {
		t.Fatal(err)
	}
	var meta storage.RunMetadata
	if err := json.Unmarshal([]byte(out), &meta); err != nil || meta.ID != id {
		t.Errorf("export produced %q (%v)", out, err)
	}

	svgPath := filepath.Join(t.TempDir(), "frame.svg")
	if _, err := execute(t, "export-svg", id, "--data", dir, "-o", svgPath); err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(svg), "<line ") != 20 {
		t.Errorf("expected 20 lines in svg")
	}

	out, err = execute(t, "export-svg", id, "--data", dir, "--metric", "extent")
	if err != nil || !strings.Contains(out, "<path") {
		t.Errorf("series svg: %v\n%s", err, out)
	}

	out, err = execute(t, "export-json", id, "--data", dir)
	if err != nil {
		t.Fatal(err)
	}
	var data export.ExportData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Policy != "move" || len(data.Frames) == 0 || len(data.Frames[0].Segments) != 20 {
		t.Errorf("unexpected export %+v", data.Policy)
	}
}

func TestPresetsAndPolicies(t *testing.T) {
	out, err := execute(t, "presets", "pulse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "presets for extend:") || !strings.Contains(out, "breathe") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = execute(t, "policies")
	if err != nil {
		t.Fatal(err)
	}
	if out != "extend\nmove\nsweep\n" {
		t.Errorf("policies = %q", out)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "run", "--data", dir, "--policy", "extend", "--count", "10", "--ticks", "510", "--seed", "1"); err != nil {
		t.Fatal(err)
	}
	runs, _ := storage.New(dir).List()
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}

	out, err := execute(t, "analyze", runs[0].ID, "--data", dir, "--metric", "mean_length")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "frequency analysis: "+runs[0].ID) || !strings.Contains(out, "mean_length: ") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestScenarioCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "tour.yaml")
	body := "name: tour\nsteps:\n  - policy: move\n    count: 5\n    ticks: 10\n  - policy: sweep\n    count: 5\n    ticks: 10\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "scenario", path, "--data", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "scenario tour: 2 steps") || !strings.Contains(out, "sweep_") {
		t.Errorf("unexpected output:\n%s", out)
	}
	runs, _ := storage.New(dir).List()
	if len(runs) != 2 {
		t.Errorf("stored %d runs, want 2", len(runs))
	}
}

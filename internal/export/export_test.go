package export

import (
	"bytes"
	"encoding/json"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/sim"
)

func TestSegmentsToSVG(t *testing.T) {
	segs := []lines.Segment{
		{Start: lines.Vec2{X: 0, Y: 0}, End: lines.Vec2{X: 0, Y: 50}, Axis: lines.Vertical},
		{Start: lines.Vec2{X: -100, Y: -50}, End: lines.Vec2{X: 100, Y: -50}, Axis: lines.Horizontal},
	}
	svg := SegmentsToSVG(segs, lines.BoundsFromSize(400, 200), 4, color.RGBA{R: 255, G: 128, A: 255})

	if strings.Count(svg, "<line ") != 2 {
		t.Errorf("expected 2 lines, got svg:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="#ff8000"`) {
		t.Error("stroke color missing")
	}
	if !strings.Contains(svg, `stroke-width="4.00"`) {
		t.Error("stroke width missing")
	}
	// origin maps to the centre; y=50 is 50 px above it.
	if !strings.Contains(svg, `x1="200.00" y1="100.00" x2="200.00" y2="50.00"`) {
		t.Errorf("vertical segment misplaced:\n%s", svg)
	}
	if !strings.Contains(svg, `x1="100.00" y1="150.00" x2="300.00" y2="150.00"`) {
		t.Errorf("horizontal segment misplaced:\n%s", svg)
	}
}

func TestSegmentsToSVG_Empty(t *testing.T) {
	svg := SegmentsToSVG(nil, lines.BoundsFromSize(10, 10), 1, color.RGBA{A: 255})
	if !strings.HasSuffix(svg, "</svg>") || strings.Contains(svg, "<line ") {
		t.Errorf("unexpected svg for empty scene:\n%s", svg)
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}
	svg := SeriesToSVG([]float64{0, 1, 0, 1}, 300, 100, "#00ff00")
	if !strings.Contains(svg, `d="M0.0,`) || strings.Count(svg, " L") != 3 {
		t.Errorf("unexpected path:\n%s", svg)
	}
}

func testResult() *sim.Result {
	return &sim.Result{
		Policy:     "extend",
		TicksTaken: 5,
		Frames: []sim.Frame{{Tick: 5, Segments: []lines.Segment{
			{Start: lines.Vec2{X: 1, Y: 2}, End: lines.Vec2{X: 1, Y: 4}, Rate: 0.5, Axis: lines.Vertical},
		}}},
		Series:  map[string][]float64{"extent": {1, 2}},
		Metrics: map[string]float64{"extent": 2},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Policy != "extend" || data.Ticks != 5 {
		t.Errorf("unexpected header %+v", data)
	}
	seg := data.Frames[0].Segments[0]
	if seg.Axis != "vertical" || seg.End != [2]float32{1, 4} || seg.Rate != 0.5 {
		t.Errorf("unexpected segment %+v", seg)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := ExportJSON(filepath.Join(t.TempDir(), "missing", "run.json"), testResult()); err == nil {
		t.Error("expected error for missing directory")
	}
}

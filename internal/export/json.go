package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/linesim/internal/sim"
)

type SegmentData struct {
	Axis  string     `json:"axis"`
	Start [2]float32 `json:"start"`
	End   [2]float32 `json:"end"`
	Rate  float32    `json:"rate"`
}

type FrameData struct {
	Tick     int           `json:"tick"`
	Segments []SegmentData `json:"segments"`
}

type ExportData struct {
	Policy  string               `json:"policy"`
	Ticks   int                  `json:"ticks"`
	Frames  []FrameData          `json:"frames"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

func NewExportData(result *sim.Result) ExportData {
	data := ExportData{
		Policy:  result.Policy,
		Ticks:   result.TicksTaken,
		Frames:  make([]FrameData, len(result.Frames)),
		Series:  result.Series,
		Metrics: result.Metrics,
	}
	for i, fr := range result.Frames {
		fd := FrameData{Tick: fr.Tick, Segments: make([]SegmentData, len(fr.Segments))}
		for j, s := range fr.Segments {
			fd.Segments[j] = SegmentData{
				Axis:  s.Axis.String(),
				Start: [2]float32{s.Start.X, s.Start.Y},
				End:   [2]float32{s.End.X, s.End.Y},
				Rate:  s.Rate,
			}
		}
		data.Frames[i] = fd
	}
	return data
}

func WriteJSON(w io.Writer, result *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(result))
}

func ExportJSON(path string, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, result)
}

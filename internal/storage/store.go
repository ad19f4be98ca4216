package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Policy    string             `json:"policy"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Count     int                `json:"count"`
	Ticks     int                `json:"ticks"`
	Weight    float32            `json:"weight"`
	Color     string             `json:"color"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Metrics   map[string]float64 `json:"metrics"`
	Errors    []string           `json:"errors,omitempty"`
}

// Save writes meta and result under a fresh run directory and returns the
// run id. meta.ID, meta.Timestamp and meta.Metrics are filled in here.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Policy, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Metrics = result.Metrics
	for _, e := range result.Errors {
		meta.Errors = append(meta.Errors, e.Error())
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), result.Frames); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), result.Series); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func writeFrames(path string, frames []sim.Frame) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"tick", "index", "axis", "x0", "y0", "x1", "y1", "rate"}); err != nil {
			return err
		}
		for _, fr := range frames {
			// An empty frame keeps a tick-only row so it survives a reload.
			if len(fr.Segments) == 0 {
				if err := w.Write([]string{strconv.Itoa(fr.Tick), "", "", "", "", "", "", ""}); err != nil {
					return err
				}
				continue
			}
			for i, seg := range fr.Segments {
				row := []string{
					strconv.Itoa(fr.Tick),
					strconv.Itoa(i),
					seg.Axis.String(),
					formatFloat(seg.Start.X),
					formatFloat(seg.Start.Y),
					formatFloat(seg.End.X),
					formatFloat(seg.End.Y),
					formatFloat(seg.Rate),
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeSeries(path string, series map[string][]float64) error {
	names := make([]string, 0, len(series))
	rows := 0
	for name, vals := range series {
		names = append(names, name)
		rows = max(rows, len(vals))
	}
	sort.Strings(names)

	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write(append([]string{"tick"}, names...)); err != nil {
			return err
		}
		for i := 0; i < rows; i++ {
			row := []string{strconv.Itoa(i)}
			for _, name := range names {
				val := "0"
				if i < len(series[name]) {
					val = strconv.FormatFloat(series[name][i], 'f', 6, 64)
				}
				row = append(row, val)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func parse32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// LoadFrames reads the recorded frames of a run in tick order.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}

	frames := make([]sim.Frame, 0)
	for n, rec := range records {
		if n == 0 || len(rec) < 8 {
			continue
		}
		tick, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, n+1, err)
		}
		if rec[1] == "" {
			frames = append(frames, sim.Frame{Tick: tick})
			continue
		}
		axis, err := lines.ParseAxis(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, n+1, err)
		}
		var vals [5]float32
		for i := range vals {
			if vals[i], err = parse32(rec[3+i]); err != nil {
				return nil, fmt.Errorf("%s line %d: %w", framesFile, n+1, err)
			}
		}
		seg := lines.Segment{
			Start: lines.Vec2{X: vals[0], Y: vals[1]},
			End:   lines.Vec2{X: vals[2], Y: vals[3]},
			Rate:  vals[4],
			Axis:  axis,
		}

		if len(frames) == 0 || frames[len(frames)-1].Tick != tick {
			frames = append(frames, sim.Frame{Tick: tick})
		}
		last := &frames[len(frames)-1]
		last.Segments = append(last.Segments, seg)
	}

	return frames, nil
}

// LoadSeries reads the per-tick metric values of a run.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}

	series := make(map[string][]float64)
	if len(records) == 0 {
		return series, nil
	}

	header := records[0]
	for _, name := range header[1:] {
		series[name] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for j := 1; j < len(rec) && j < len(header); j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				continue
			}
			series[header[j]] = append(series[header[j]], v)
		}
	}

	return series, nil
}

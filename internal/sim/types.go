package sim

import (
	"fmt"

	"github.com/san-kum/linesim/internal/lines"
)

type Metric interface {
	Name() string
	Observe(segs []lines.Segment, tick int)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(segs []lines.Segment, tick int)
}

type Config struct {
	Ticks  int
	Bounds lines.Bounds
	// SampleEvery records a frame every n ticks; 0 keeps only the first
	// and last frames.
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Ticks:         1000,
		Bounds:        lines.BoundsFromSize(1000, 800),
		SampleEvery:   10,
		ValidateState: true,
	}
}

type Frame struct {
	Tick     int
	Segments []lines.Segment
}

type Result struct {
	Policy     string
	Frames     []Frame
	Series     map[string][]float64
	Metrics    map[string]float64
	TicksTaken int
	Errors     []error
}

// Last returns the most recent recorded frame.
func (r *Result) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

type SimError struct {
	Tick    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Tick, e.Message)
}

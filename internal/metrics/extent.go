package metrics

import (
	"math"

	"github.com/san-kum/linesim/internal/lines"
)

// Extent is the diagonal of the smallest rectangle holding every segment.
type Extent struct {
	name  string
	value float64
}

func NewExtent() *Extent {
	return &Extent{name: "extent"}
}

func (e *Extent) Name() string { return e.name }

func (e *Extent) Observe(segs []lines.Segment, tick int) {
	b, ok := lines.ExtentOf(segs)
	if !ok {
		e.value = 0
		return
	}
	e.value = math.Hypot(float64(b.Width()), float64(b.Height()))
}

func (e *Extent) Value() float64 { return e.value }

func (e *Extent) Reset() { e.value = 0 }

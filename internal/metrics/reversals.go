package metrics

import "github.com/san-kum/linesim/internal/lines"

// Reversals counts rate sign changes between consecutive observations,
// summed over all segments since the last Reset.
type Reversals struct {
	name  string
	prev  []float32
	count int
}

func NewReversals() *Reversals {
	return &Reversals{name: "reversals"}
}

func (r *Reversals) Name() string { return r.name }

func (r *Reversals) Observe(segs []lines.Segment, tick int) {
	if len(r.prev) != len(segs) {
		r.prev = make([]float32, len(segs))
		for i, s := range segs {
			r.prev[i] = s.Rate
		}
		return
	}
	for i, s := range segs {
		if (s.Rate < 0) != (r.prev[i] < 0) {
			r.count++
		}
		r.prev[i] = s.Rate
	}
}

func (r *Reversals) Value() float64 { return float64(r.count) }

func (r *Reversals) Reset() {
	r.prev = nil
	r.count = 0
}

package policy

import "github.com/san-kum/linesim/internal/lines"

// BounceMove translates each segment along its moving axis by its rate and
// reflects the rate at the bounds. Comparisons are inclusive: a segment
// touching an edge is sent away from it.
type BounceMove struct{}

func NewBounceMove() *BounceMove { return &BounceMove{} }

func (p *BounceMove) Name() string { return NameMove }

func (p *BounceMove) Step(segs []lines.Segment, tick int, b lines.Bounds) {
	for i := range segs {
		seg := &segs[i]
		near, far := b.Edges(seg.Axis)
		a, c := seg.Moving()
		lo, hi := min(a, c), max(a, c)
		switch {
		case hi >= far:
			seg.Rate = -abs32(seg.Rate)
		case lo <= near:
			seg.Rate = abs32(seg.Rate)
		}
		seg.Shift(seg.Rate)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

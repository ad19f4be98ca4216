package policy

import "github.com/san-kum/linesim/internal/lines"

const DefaultMaxStep = 50

// PulseExtend grows and shrinks segments along their moving axis. The start
// endpoint moves toward zero by rate and the end endpoint away from it, so a
// segment on one side of the origin extends or contracts while one
// straddling zero is pushed on one side and pulled on the other. After
// MaxStep+1 ticks every rate is negated.
type PulseExtend struct {
	Counter int
	MaxStep int
}

func NewPulseExtend(maxStep int) *PulseExtend {
	return &PulseExtend{MaxStep: maxStep}
}

func (p *PulseExtend) Name() string { return NameExtend }

func (p *PulseExtend) Step(segs []lines.Segment, tick int, b lines.Bounds) {
	for i := range segs {
		seg := &segs[i]
		a, c := seg.Moving()
		r := seg.Rate
		if a < 0 {
			a += r
		} else {
			a -= r
		}
		if c < 0 {
			c -= r
		} else {
			c += r
		}
		seg.SetMoving(a, c)
	}

	p.Counter++
	if p.Counter > p.MaxStep {
		p.Counter = 0
		for i := range segs {
			segs[i].Rate = -segs[i].Rate
		}
	}
}

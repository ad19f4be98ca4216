package policy

import (
	"fmt"

	"github.com/san-kum/linesim/internal/lines"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Next follows the cycle up, down, left, right, up.
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// Sign is +1 for Up and Right, -1 for Down and Left.
func (d Direction) Sign() float32 {
	if d == Down || d == Left {
		return -1
	}
	return 1
}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction: %s", s)
}

const (
	DefaultThreshold = 50
	DefaultSweepStep = 2.0
)

// SweepRotate moves every segment the same way, regardless of axis, and
// turns to the next direction once Counter reaches Threshold. The turn tick
// moves nothing. Each scene holds its own SweepRotate.
type SweepRotate struct {
	Direction Direction
	Counter   uint8
	Threshold uint8
	// Delta is the signed per-tick step: positive for Up/Right, negative
	// for Down/Left.
	Delta float32
}

func NewSweepRotate(start Direction, threshold uint8, step float32) *SweepRotate {
	return &SweepRotate{
		Direction: start,
		Threshold: threshold,
		Delta:     start.Sign() * abs32(step),
	}
}

func (p *SweepRotate) Name() string { return NameSweep }

func (p *SweepRotate) Step(segs []lines.Segment, tick int, b lines.Bounds) {
	if p.Counter >= p.Threshold {
		p.Direction = p.Direction.Next()
		p.Counter = 0
		p.Delta = p.Direction.Sign() * abs32(p.Delta)
		return
	}

	d := lines.Vec2{X: p.Delta}
	if p.Direction == Up || p.Direction == Down {
		d = lines.Vec2{Y: p.Delta}
	}
	for i := range segs {
		segs[i].Start = segs[i].Start.Add(d)
		segs[i].End = segs[i].End.Add(d)
	}
	p.Counter++
}

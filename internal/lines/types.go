package lines

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Finite() bool { return finite(v.X) && finite(v.Y) }

// Axis names the coordinate shared by both endpoints of a segment.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// ParseAxis is the inverse of Axis.String.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("lines: unknown axis %q", s)
}

// Segment is a horizontal or vertical line. Rate is the signed speed used by
// the active policy: a velocity for movement, a growth rate for extension.
type Segment struct {
	Start Vec2
	End   Vec2
	Rate  float32
	Axis  Axis
}

func (s Segment) IsVertical() bool   { return s.Start.X == s.End.X }
func (s Segment) IsHorizontal() bool { return s.Start.Y == s.End.Y }

// Moving returns the coordinates of both endpoints along the axis that
// differs between them: y for vertical segments, x for horizontal ones.
func (s Segment) Moving() (start, end float32) {
	if s.Axis == Vertical {
		return s.Start.Y, s.End.Y
	}
	return s.Start.X, s.End.X
}

func (s *Segment) SetMoving(start, end float32) {
	if s.Axis == Vertical {
		s.Start.Y, s.End.Y = start, end
		return
	}
	s.Start.X, s.End.X = start, end
}

// Shift translates both endpoints along the moving axis.
func (s *Segment) Shift(d float32) {
	a, b := s.Moving()
	s.SetMoving(a+d, b+d)
}

func (s Segment) Length() float32 {
	a, b := s.Moving()
	return float32(math.Abs(float64(b - a)))
}

func (s Segment) Finite() bool {
	return s.Start.Finite() && s.End.Finite() && finite(s.Rate)
}

type Range struct {
	Min, Max float32
}

func Fixed(v float32) Range { return Range{Min: v, Max: v} }

func (r Range) Span() float32 { return r.Max - r.Min }

func (r Range) Contains(v float32) bool { return v >= r.Min && v <= r.Max }

func (r Range) validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Bounds is an axis-aligned rectangle with y pointing up.
type Bounds struct {
	Left, Right, Bottom, Top float32
}

// BoundsFromSize returns the rectangle of a w x h window centred on the origin.
func BoundsFromSize(w, h float32) Bounds {
	return Bounds{Left: -w / 2, Right: w / 2, Bottom: -h / 2, Top: h / 2}
}

func (b Bounds) Width() float32  { return b.Right - b.Left }
func (b Bounds) Height() float32 { return b.Top - b.Bottom }

// Edges returns the near and far edge for the given moving axis.
func (b Bounds) Edges(a Axis) (near, far float32) {
	if a == Vertical {
		return b.Bottom, b.Top
	}
	return b.Left, b.Right
}

// Policy advances every segment by one tick.
type Policy interface {
	Name() string
	Step(segs []Segment, tick int, b Bounds)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

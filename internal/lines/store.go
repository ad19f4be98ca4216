package lines

import "math/rand"

// Store owns the ordered segment collection of one scene.
type Store struct {
	segs []Segment
}

func NewStore() *Store {
	return &Store{}
}

// Generate replaces the store contents with c.Count random segments drawn
// from rng. The slice is sized once; ticks never reallocate it.
func (s *Store) Generate(rng *rand.Rand, c GenConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	segs := make([]Segment, c.Count)
	for i := range segs {
		segs[i] = generateOne(rng, AxisFor(i, c.Count), c)
	}
	s.segs = segs
	return nil
}

// Apply advances the store by one tick under p.
func (s *Store) Apply(p Policy, tick int, b Bounds) {
	if len(s.segs) == 0 {
		return
	}
	p.Step(s.segs, tick, b)
}

// Segments exposes the live slice for renderers. Callers must not retain it
// across ticks.
func (s *Store) Segments() []Segment { return s.segs }

func (s *Store) Snapshot() []Segment {
	c := make([]Segment, len(s.segs))
	copy(c, s.segs)
	return c
}

// Reset replaces the store contents with a copy of segs.
func (s *Store) Reset(segs []Segment) {
	s.segs = make([]Segment, len(segs))
	copy(s.segs, segs)
}

func (s *Store) Len() int { return len(s.segs) }

// Valid reports whether every coordinate and rate in the store is finite.
func (s *Store) Valid() bool {
	for _, seg := range s.segs {
		if !seg.Finite() {
			return false
		}
	}
	return true
}

// Extent returns the smallest rectangle containing every segment. The
// second result is false for an empty store.
func (s *Store) Extent() (Bounds, bool) { return ExtentOf(s.segs) }

func ExtentOf(segs []Segment) (Bounds, bool) {
	if len(segs) == 0 {
		return Bounds{}, false
	}
	first := segs[0]
	b := Bounds{Left: first.Start.X, Right: first.Start.X, Bottom: first.Start.Y, Top: first.Start.Y}
	for _, seg := range segs {
		for _, p := range [2]Vec2{seg.Start, seg.End} {
			b.Left = min(b.Left, p.X)
			b.Right = max(b.Right, p.X)
			b.Bottom = min(b.Bottom, p.Y)
			b.Top = max(b.Top, p.Y)
		}
	}
	return b, true
}

package lines

import (
	"fmt"
	"math/rand"
)

const (
	DefaultCount   = 200
	DefaultLength  = 200.0
	DefaultRateMax = 4.0
)

// GenConfig describes the random layout produced by Store.Generate.
// XRange and YRange bound both endpoints of every generated segment.
type GenConfig struct {
	Count   int
	XRange  Range
	YRange  Range
	Length  Range
	RateMax float32
}

func DefaultGenConfig() GenConfig {
	return GenConfig{
		Count:   DefaultCount,
		XRange:  Range{Min: -499, Max: 499},
		YRange:  Range{Min: -399, Max: 399},
		Length:  Fixed(DefaultLength),
		RateMax: DefaultRateMax,
	}
}

func (c GenConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, c.Count)
	}
	for _, r := range []Range{c.XRange, c.YRange, c.Length} {
		if err := r.validate(); err != nil {
			return err
		}
	}
	if c.Length.Min < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeLength, c.Length.Min)
	}
	if c.RateMax < 0 {
		return fmt.Errorf("lines: rate max must not be negative, got %g", c.RateMax)
	}
	// Vertical segments need room on y, horizontal ones on x.
	if c.Count > c.Count/2 && c.Length.Max > c.XRange.Span() {
		return fmt.Errorf("%w: length %g, x span %g", ErrLengthTooLarge, c.Length.Max, c.XRange.Span())
	}
	if c.Count/2 > 0 && c.Length.Max > c.YRange.Span() {
		return fmt.Errorf("%w: length %g, y span %g", ErrLengthTooLarge, c.Length.Max, c.YRange.Span())
	}
	return nil
}

// AxisFor returns the axis generated at index i of n: the first n/2 are
// vertical, the rest horizontal. An odd n puts the extra segment on the
// horizontal side.
func AxisFor(i, n int) Axis {
	if i < n/2 {
		return Vertical
	}
	return Horizontal
}

func uniform(rng *rand.Rand, r Range) float32 {
	if r.Max <= r.Min {
		return r.Min
	}
	return min(r.Min+rng.Float32()*(r.Max-r.Min), r.Max)
}

func generateOne(rng *rand.Rand, axis Axis, c GenConfig) Segment {
	length := uniform(rng, c.Length)
	x, y := c.XRange, c.YRange
	if axis == Vertical {
		y.Max -= length
	} else {
		x.Max -= length
	}
	start := Vec2{X: uniform(rng, x), Y: uniform(rng, y)}

	end := start
	if axis == Vertical {
		end.Y += length
	} else {
		end.X += length
	}
	// The subtraction above can round the far endpoint past the range by an ulp.
	end.X = min(end.X, c.XRange.Max)
	end.Y = min(end.Y, c.YRange.Max)

	return Segment{
		Start: start,
		End:   end,
		Rate:  uniform(rng, Range{Min: -c.RateMax, Max: c.RateMax}),
		Axis:  axis,
	}
}

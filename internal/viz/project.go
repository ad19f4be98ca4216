package viz

import "github.com/san-kum/linesim/internal/lines"

// Projection maps scene coordinates (origin centred, y up) onto canvas
// sub-pixels (origin top-left, y down). Zoom scales about the origin.
type Projection struct {
	Bounds lines.Bounds
	Zoom   float64
	W, H   int
}

func NewProjection(b lines.Bounds, c *Canvas, zoom float64) Projection {
	w, h := c.SubSize()
	return Projection{Bounds: b, Zoom: zoom, W: w, H: h}
}

func (p Projection) Point(v lines.Vec2) (int, int) {
	bw, bh := float64(p.Bounds.Width()), float64(p.Bounds.Height())
	if bw <= 0 || bh <= 0 || p.W < 1 || p.H < 1 {
		return -1, -1
	}
	x := float64(v.X)*p.Zoom - float64(p.Bounds.Left)
	y := float64(p.Bounds.Top) - float64(v.Y)*p.Zoom
	return int(x / bw * float64(p.W-1)), int(y / bh * float64(p.H-1))
}

// DrawSegments rasterises segs onto c through p.
func DrawSegments(c *Canvas, segs []lines.Segment, p Projection) {
	for _, s := range segs {
		x0, y0 := p.Point(s.Start)
		x1, y1 := p.Point(s.End)
		if offscreen(x0, x1, p.W) || offscreen(y0, y1, p.H) {
			continue
		}
		// Segments are axis-aligned, so clamping keeps their shape while
		// bounding the Bresenham walk.
		c.DrawLine(clamp(x0, p.W), clamp(y0, p.H), clamp(x1, p.W), clamp(y1, p.H))
	}
}

func clamp(v, limit int) int {
	return min(max(v, -1), limit)
}

// offscreen reports whether both coordinates fall on the same side outside
// [0, limit).
func offscreen(a, b, limit int) bool {
	return (a < 0 && b < 0) || (a >= limit && b >= limit)
}

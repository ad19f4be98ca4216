package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/linesim/internal/lines"
)

// SegmentsToSVG draws segs as they would appear in a window spanning b,
// flipping y so the scene keeps its y-up orientation.
func SegmentsToSVG(segs []lines.Segment, b lines.Bounds, weight float32, stroke color.RGBA) string {
	width, height := b.Width(), b.Height()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g stroke="%s" stroke-width="%.2f" stroke-linecap="round">
`, width, height, width, height, hexColor(stroke), weight))

	for _, s := range segs {
		x1, y1 := toSVG(s.Start, b)
		x2, y2 := toSVG(s.End, b)
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, x1, y1, x2, y2))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func toSVG(p lines.Vec2, b lines.Bounds) (float32, float32) {
	return p.X - b.Left, b.Top - p.Y
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SeriesToSVG plots one metric series as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

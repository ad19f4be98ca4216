package gui

import "github.com/san-kum/linesim/internal/lines"

// ToScreen converts a scene point (origin at the window centre, y up) to
// window pixels (origin top-left, y down).
func ToScreen(v lines.Vec2, w, h float32) (x, y float32) {
	return v.X + w/2, h/2 - v.Y
}

// screenBounds is the scene rectangle covered by a w x h window.
func screenBounds(w, h int32) lines.Bounds {
	return lines.BoundsFromSize(float32(w), float32(h))
}

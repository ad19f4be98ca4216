// Package viz draws a running line scene in the terminal.
//
// The live view is a Bubble Tea program:
//
//   - [Model]: steps a [sim.Simulator] once per frame and renders it
//   - [Canvas]: braille pixel canvas, 2x4 dots per cell
//   - [Projection]: maps the origin-centred scene onto canvas dots
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Rebuild the scene from its seed
//	+/-   - Zoom (eased by a spring)
//	T     - Cycle panel themes
//	?     - Toggle full help
package viz

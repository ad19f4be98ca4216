package gui

import (
	"context"
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type Options struct {
	Title         string
	Width, Height int32
	FPS           int32
	Weight        float32
	Color         color.RGBA
	Build         func() (*sim.Simulator, error)
}

// App hosts one simulator in a raylib window. The window rectangle is the
// bounds of every tick, so resizing the window moves the walls.
type App struct {
	opts    Options
	sim     *sim.Simulator
	tick    int
	running bool
	reset   bool
	quit    bool
	stroke  rl.Color
}

func initWindow(o Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(o.Width, o.Height, o.Title)
	rl.SetTargetFPS(o.FPS)
}

func NewApp(o Options) (*App, error) {
	if o.Build == nil {
		return nil, fmt.Errorf("gui needs a simulator builder")
	}
	s, err := o.Build()
	if err != nil {
		return nil, err
	}
	return &App{
		opts:    o,
		sim:     s,
		running: true,
		stroke:  rl.NewColor(o.Color.R, o.Color.G, o.Color.B, o.Color.A),
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, o Options) error {
	app, err := NewApp(o)
	if err != nil {
		return err
	}
	initWindow(o)
	defer rl.CloseWindow()
	return app.RunLoop(ctx)
}

func (a *App) RunLoop(ctx context.Context) error {
	for {
		err := a.sim.RunWithCallback(ctx, true, func(segs []lines.Segment, tick int) (lines.Bounds, bool) {
			return a.frame(ctx, segs, tick)
		})
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.reset {
			return nil
		}
		s, err := a.opts.Build()
		if err != nil {
			return err
		}
		log.Printf("gui: reset after %d ticks", a.tick)
		a.sim, a.tick, a.reset = s, 0, false
	}
}

// frame draws segs and reports the bounds for the next tick. While paused
// it keeps redrawing without returning, so no tick is applied.
func (a *App) frame(ctx context.Context, segs []lines.Segment, tick int) (lines.Bounds, bool) {
	for {
		a.handleInput()
		if a.stopped(ctx) || rl.WindowShouldClose() {
			return lines.Bounds{}, false
		}
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		a.draw(segs, w, h)
		if a.running {
			a.tick = tick + 1
			return screenBounds(w, h), true
		}
	}
}

// stopped reports whether the current run should end, paused or not.
func (a *App) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return a.quit || a.reset
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.running = !a.running
	case rl.IsKeyPressed(rl.KeyR):
		a.reset = true
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	}
}

func (a *App) draw(segs []lines.Segment, w, h int32) {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	fw, fh := float32(w), float32(h)
	for _, s := range segs {
		x0, y0 := ToScreen(s.Start, fw, fh)
		x1, y1 := ToScreen(s.End, fw, fh)
		rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), a.opts.Weight, a.stroke)
	}

	a.drawHUD(len(segs), w, h)
	rl.EndDrawing()
}

func (a *App) drawHUD(n int, w, h int32) {
	rl.DrawText(fmt.Sprintf("%s  tick %d  %d segments", a.opts.Title, a.tick, n), 20, 20, 16, ColText)
	if !a.running {
		rl.DrawText("PAUSED", w-90, 20, 16, ColText)
	}
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [Q] QUIT", 20, h-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), w-80, h-30, 14, ColTextDim)
}

package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/linesim/internal/lines"
)

type Simulator struct {
	store     *lines.Store
	policy    lines.Policy
	metrics   []Metric
	observers []Observer
}

func New(store *lines.Store, policy lines.Policy) *Simulator {
	return &Simulator{
		store:     store,
		policy:    policy,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Store() *lines.Store { return s.store }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Policy:  s.policy.Name(),
		Frames:  make([]Frame, 0, s.frameCapacity(cfg)),
		Series:  make(map[string][]float64),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
		result.Series[m.Name()] = make([]float64, 0, cfg.Ticks)
	}

	result.Frames = append(result.Frames, Frame{Tick: 0, Segments: s.store.Snapshot()})

	tick := 0
	for ; tick < cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		segs := s.store.Segments()
		for _, m := range s.metrics {
			m.Observe(segs, tick)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, obs := range s.observers {
			obs.OnTick(segs, tick)
		}

		s.store.Apply(s.policy, tick, cfg.Bounds)
		result.TicksTaken++

		if cfg.ValidateState && !s.store.Valid() {
			result.Errors = append(result.Errors, SimError{Tick: tick, Message: "invalid segment (NaN/Inf)"})
			break
		}

		if cfg.SampleEvery > 0 && (tick+1)%cfg.SampleEvery == 0 {
			result.Frames = append(result.Frames, Frame{Tick: tick + 1, Segments: s.store.Snapshot()})
		}
	}

	if last, _ := result.Last(); last.Tick != result.TicksTaken {
		result.Frames = append(result.Frames, Frame{Tick: result.TicksTaken, Segments: s.store.Snapshot()})
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.SampleEvery < 0 {
		return fmt.Errorf("sample interval must not be negative, got %d", cfg.SampleEvery)
	}
	if cfg.Bounds.Width() <= 0 || cfg.Bounds.Height() <= 0 {
		return fmt.Errorf("bounds must have positive area, got %+v", cfg.Bounds)
	}
	return nil
}

func (s *Simulator) frameCapacity(cfg Config) int {
	if cfg.SampleEvery == 0 {
		return 2
	}
	return cfg.Ticks/cfg.SampleEvery + 2
}

// RunWithCallback steps the store until callback returns false or ctx is
// done. The callback sees the segments before each tick is applied and
// supplies the bounds for it, so a host can follow a resizable window.
func (s *Simulator) RunWithCallback(ctx context.Context, validate bool, callback func(segs []lines.Segment, tick int) (lines.Bounds, bool)) error {
	for tick := 0; ; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bounds, ok := callback(s.store.Segments(), tick)
		if !ok {
			return nil
		}

		s.store.Apply(s.policy, tick, bounds)

		if validate && !s.store.Valid() {
			return fmt.Errorf("invalid segment at tick %d: %w", tick, lines.ErrNonFinite)
		}
	}
}

// Step applies a single tick. Hosts that own their loop (bubbletea,
// raylib) call this once per frame.
func (s *Simulator) Step(tick int, b lines.Bounds) {
	segs := s.store.Segments()
	for _, m := range s.metrics {
		m.Observe(segs, tick)
	}
	for _, obs := range s.observers {
		obs.OnTick(segs, tick)
	}
	s.store.Apply(s.policy, tick, b)
}

func (s *Simulator) Metrics() []Metric { return s.metrics }

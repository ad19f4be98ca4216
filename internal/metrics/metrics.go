package metrics

import "github.com/san-kum/linesim/internal/sim"

// Default returns the metrics recorded for every run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewMeanLength(),
		NewExtent(),
		NewReversals(),
	}
}

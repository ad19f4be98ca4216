// Package analysis finds periodic structure in per-tick metric series.
//
// The sweep and extend policies are periodic by construction; a run's
// spectrum shows it:
//
//	peak, ok := analysis.DominantPeriod(series["mean_length"])
//	if ok {
//	    fmt.Printf("period: %.1f ticks\n", peak.Period)
//	}
package analysis

package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the DFT of data
// after removing its mean, so bin 0 carries no DC offset.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// Peak is the strongest non-DC component of a series.
type Peak struct {
	Bin    int
	Power  float64
	Period float64 // in ticks
}

// DominantPeriod finds the strongest periodic component of a per-tick
// series. ok is false for constant or too-short series.
func DominantPeriod(series []float64) (Peak, bool) {
	ps := PowerSpectrum(series)
	best := Peak{}
	for i := 1; i < len(ps); i++ {
		if ps[i] > best.Power {
			best = Peak{Bin: i, Power: ps[i]}
		}
	}
	if best.Bin == 0 || best.Power < 1e-9 {
		return Peak{}, false
	}
	best.Period = float64(len(series)) / float64(best.Bin)
	return best, true
}

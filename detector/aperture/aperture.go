// Package aperture reduces per-bin counts and noise to a single measurement
// and flags saturated exposures.
package aperture

import "math"

// Aggregate sums the background-subtracted signal and the sky over the
// bins in mask and adds their noise in quadrature. It returns the aperture
// SNR, the net signal and the sky signal.
func Aggregate(obj, sky, noise []float64, mask []int) (snr, signal, skySignal float64) {
	var variance float64
	for _, i := range mask {
		signal += obj[i] - sky[i]
		skySignal += sky[i]
		variance += noise[i] * noise[i]
	}
	if variance > 0 {
		snr = signal / math.Sqrt(variance)
	}
	return snr, signal, skySignal
}

// Select gathers x at the bins in mask.
func Select(x []float64, mask []int) []float64 {
	out := make([]float64, len(mask))
	for k, i := range mask {
		out[k] = x[i]
	}
	return out
}

// Saturated reports whether any bin reaches the well depth.
func Saturated(counts []float64, well float64) bool {
	for _, c := range counts {
		if c >= well {
			return true
		}
	}
	return false
}

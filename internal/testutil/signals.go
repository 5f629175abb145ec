package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued array.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Ramp returns n samples start, start+step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// TopHat evaluates a band of height value between lo and hi (inclusive) on x.
func TopHat(x []float64, lo, hi, value float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v >= lo && v <= hi {
			out[i] = value
		}
	}
	return out
}

// Gaussian evaluates a unit-peak Gaussian with the given centre and FWHM on x.
func Gaussian(x []float64, center, fwhm float64) []float64 {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

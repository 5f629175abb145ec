package conv

import (
	"errors"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by ConvolveSame.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Kernels up to this length are applied in the time domain.
const directThreshold = 64

// ConvolveSame convolves signal with kernel and returns len(signal) samples
// aligned with the input. For an odd-length symmetric kernel the output is
// not shifted.
func ConvolveSame(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	long, short := signal, kernel
	if len(short) > len(long) {
		long, short = short, long
	}

	var (
		full []float64
		err  error
	)
	if len(short) <= directThreshold {
		full = direct(long, short)
	} else if full, err = overlapAdd(long, short); err != nil {
		return nil, err
	}

	start := (len(kernel) - 1) / 2
	return full[start : start+len(signal)], nil
}

// direct is the time-domain full convolution, len(a)+len(b)-1 samples.
func direct(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	m := len(b)
	if m < 4 {
		for i, x := range a {
			for j, y := range b {
				out[i+j] += x * y
			}
		}
		return out
	}

	scaled := make([]float64, m)
	for i, x := range a {
		if x == 0 {
			continue
		}
		vecmath.ScaleBlock(scaled, b, x)
		vecmath.AddBlockInPlace(out[i:i+m], scaled)
	}
	return out
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

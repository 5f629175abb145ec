package interp

import (
	"errors"
	"sort"
)

// Errors returned by interpolation functions.
var (
	ErrEmptyInput     = errors.New("interp: empty input")
	ErrLengthMismatch = errors.New("interp: x and y length mismatch")
	ErrNotIncreasing  = errors.New("interp: abscissae must be strictly increasing")
)

// Lerp interpolates between y0 and y1 at frac in [0,1].
func Lerp(y0, y1, frac float64) float64 {
	return y0 + frac*(y1-y0)
}

// Validate checks that xs is strictly increasing and matches ys in length.
func Validate(xs, ys []float64) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return ErrNotIncreasing
		}
	}
	return nil
}

// Search returns the index i such that xs[i] <= x < xs[i+1].
// Values below xs[0] return -1 and values at or above the last sample return len(xs)-1.
func Search(xs []float64, x float64) int {
	return sort.Search(len(xs), func(i int) bool { return xs[i] > x }) - 1
}

// Linear resamples the samples (xs, ys) at every position in at.
// xs must be strictly increasing (see [Validate]); positions outside
// [xs[0], xs[len-1]] take the nearest end value.
func Linear(xs, ys, at []float64) []float64 {
	out := make([]float64, len(at))
	LinearTo(out, xs, ys, at)
	return out
}

// LinearTo is [Linear] writing into a pre-allocated dst of len(at).
func LinearTo(dst, xs, ys, at []float64) {
	n := len(xs)
	if n == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	// Sorted query axes are the common case; walk the segment index forward
	// and fall back to a binary search when the query steps backwards.
	seg := 0
	for i, x := range at {
		switch {
		case x <= xs[0]:
			dst[i] = ys[0]
			continue
		case x >= xs[n-1]:
			dst[i] = ys[n-1]
			continue
		}

		if seg >= n-1 || xs[seg] > x {
			seg = Search(xs, x)
		}
		for seg < n-2 && xs[seg+1] <= x {
			seg++
		}

		x0, x1 := xs[seg], xs[seg+1]
		dst[i] = Lerp(ys[seg], ys[seg+1], (x-x0)/(x1-x0))
	}
}

// Linspace returns n evenly spaced values from start to stop, both included.
// For n == 1 it returns []float64{start}.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}

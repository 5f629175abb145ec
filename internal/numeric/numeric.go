// Package numeric holds small scalar and reduction helpers shared by the
// engine packages.
package numeric

import (
	"math"
	"sort"
)

// MedianNonZero returns the median of the non-zero elements of x.
// Sparse spectra (a narrow emission line on an empty continuum) make most
// pixels exactly zero; they are excluded so the summary describes the signal.
// Returns 0 when x has no non-zero element.
func MedianNonZero(x []float64) float64 {
	nz := make([]float64, 0, len(x))
	for _, v := range x {
		if v != 0 {
			nz = append(nz, v)
		}
	}
	if len(nz) == 0 {
		return 0
	}

	sort.Float64s(nz)
	mid := len(nz) / 2
	if len(nz)%2 == 1 {
		return nz[mid]
	}
	return 0.5 * (nz[mid-1] + nz[mid])
}

// Max returns the largest element of x and its index.
// Returns (0, -1) for an empty slice.
func Max(x []float64) (float64, int) {
	if len(x) == 0 {
		return 0, -1
	}
	best, pos := x[0], 0
	for i, v := range x[1:] {
		if v > best {
			best, pos = v, i+1
		}
	}
	return best, pos
}

// Pow10Mag converts a magnitude difference to a linear flux ratio, 10^(-mag/2.5).
func Pow10Mag(mag float64) float64 {
	return math.Pow(10, -mag/2.5)
}

package curve

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// ErrNoSkySamples is returned by NewSkyModel without samples.
var ErrNoSkySamples = errors.New("curve: sky model needs at least one airmass sample")

// SkySample holds the atmospheric transmission and sky emission tabulated at
// one airmass.
type SkySample struct {
	Airmass      float64
	Transmission Curve
	Emission     Curve
}

// SkyModel interpolates sky curves between tabulated airmasses.
type SkyModel struct {
	samples []SkySample
}

// NewSkyModel sorts the samples by airmass. Airmasses must be distinct and
// every sample needs both curves.
func NewSkyModel(samples ...SkySample) (SkyModel, error) {
	if len(samples) == 0 {
		return SkyModel{}, ErrNoSkySamples
	}

	sorted := append([]SkySample(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Airmass < sorted[j].Airmass })

	for i, s := range sorted {
		if s.Transmission.Empty() || s.Emission.Empty() {
			return SkyModel{}, fmt.Errorf("%w: airmass %.2f", ErrEmptyCurve, s.Airmass)
		}
		if i > 0 && s.Airmass == sorted[i-1].Airmass {
			return SkyModel{}, fmt.Errorf("curve: duplicate sky airmass %.2f", s.Airmass)
		}
	}

	return SkyModel{samples: sorted}, nil
}

// Airmasses returns the tabulated airmasses in increasing order.
func (m SkyModel) Airmasses() []float64 {
	out := make([]float64, len(m.samples))
	for i, s := range m.samples {
		out[i] = s.Airmass
	}
	return out
}

// At returns the sky transmission and emission on g for the given airmass.
// Between two tabulated airmasses the curves are blended linearly; outside the
// tabulated range the nearest sample is used.
func (m SkyModel) At(airmass float64, g Grid) (transmission, emission []float64) {
	n := len(m.samples)
	if n == 0 {
		return make([]float64, g.Len()), make([]float64, g.Len())
	}

	lo := sort.Search(n, func(i int) bool { return m.samples[i].Airmass > airmass }) - 1
	switch {
	case lo < 0:
		return m.samples[0].Transmission.Interpolate(g), m.samples[0].Emission.Interpolate(g)
	case lo >= n-1:
		return m.samples[n-1].Transmission.Interpolate(g), m.samples[n-1].Emission.Interpolate(g)
	}

	a, b := m.samples[lo], m.samples[lo+1]
	w := (airmass - a.Airmass) / (b.Airmass - a.Airmass)

	transmission = blend(a.Transmission.Interpolate(g), b.Transmission.Interpolate(g), w)
	emission = blend(a.Emission.Interpolate(g), b.Emission.Interpolate(g), w)
	return transmission, emission
}

// blend returns (1-w)*a + w*b, reusing a.
func blend(a, b []float64, w float64) []float64 {
	if w == 0 {
		return a
	}
	vecmath.ScaleBlockInPlace(a, 1-w)
	vecmath.ScaleBlockInPlace(b, w)
	vecmath.AddBlockInPlace(a, b)
	return a
}

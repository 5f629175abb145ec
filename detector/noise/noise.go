// Package noise models the per-bin noise of a detector exposure.
//
// Each bin of an exposure of t seconds holding x electrons carries shot,
// dark and read noise:
//
//	σ = √(x + D·t + RON²)
//
// Object and sky frames are averaged separately and combined in quadrature.
package noise

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Model holds detector noise constants and frame counts.
type Model struct {
	ReadNoise    float64 // e- rms
	DarkCurrent  float64 // e-/s/pixel
	ObjectFrames int
	// SkyFrames of 0 is treated as one sky frame.
	SkyFrames int
}

func (m Model) objectFrames() float64 {
	if m.ObjectFrames < 1 {
		return 1
	}
	return float64(m.ObjectFrames)
}

func (m Model) skyFrames() float64 {
	if m.SkyFrames < 1 {
		return 1
	}
	return float64(m.SkyFrames)
}

// Noise returns the single-frame noise of every bin of counts after t seconds.
func (m Model) Noise(counts []float64, t float64) []float64 {
	out := make([]float64, len(counts))
	floor := m.DarkCurrent*t + m.ReadNoise*m.ReadNoise
	for i, x := range counts {
		out[i] = math.Sqrt(x + floor)
	}
	return out
}

// Total combines the frame-averaged object and sky noise per bin.
// obj holds object-plus-sky counts, sky the sky counts alone.
func (m Model) Total(obj, sky []float64, t float64) []float64 {
	no := m.Noise(obj, t)
	ns := m.Noise(sky, t)

	vecmath.MulBlockInPlace(no, no)
	vecmath.ScaleBlockInPlace(no, 1/m.objectFrames())
	vecmath.MulBlockInPlace(ns, ns)
	vecmath.ScaleBlockInPlace(ns, 1/m.skyFrames())
	vecmath.AddBlockInPlace(no, ns)

	for i, v := range no {
		no[i] = math.Sqrt(v)
	}
	return no
}

package spectral

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/conv"
	"github.com/cwbudde/algo-etc/internal/interp"
	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Input holds grid-aligned spectral densities (per micron) ready for
// dispersion: throughput, exposure time and slit losses already applied.
type Input struct {
	Grid       curve.Grid
	Object     []float64
	Sky        []float64
	Dispersive []float64
	Resolution float64
	SlitWidth  float64 // arcsec
	PlateScale float64 // arcsec/pixel
}

// Output holds per-pixel counts on the detector's spectral axis.
type Output struct {
	PixelWavelengths []float64
	Object           []float64
	Sky              []float64
	Geometry         Geometry
}

// Resolve convolves the object and sky densities to the instrumental
// resolution and integrates them onto detector pixels.
func Resolve(in Input) (Output, error) {
	geom, err := NewGeometry(in.Grid, in.Dispersive, in.Resolution, in.SlitWidth, in.PlateScale)
	if err != nil {
		return Output{}, err
	}
	return ResolveWith(geom, in)
}

// ResolveWith is Resolve with a precomputed geometry.
func ResolveWith(geom Geometry, in Input) (Output, error) {
	n := in.Grid.Len()
	if len(in.Object) != n || len(in.Sky) != n {
		return Output{}, request.Invalid("spectral input", len(in.Object), "length differs from grid")
	}

	pixels := geom.Pixels()
	kernel := GaussianKernel(geom.ResolutionElement, in.Grid.Step())

	obj, err := smooth(in.Grid, in.Object, kernel, pixels, geom.Dispersion)
	if err != nil {
		return Output{}, fmt.Errorf("spectral: object: %w", err)
	}
	sky, err := smooth(in.Grid, in.Sky, kernel, pixels, geom.Dispersion)
	if err != nil {
		return Output{}, fmt.Errorf("spectral: sky: %w", err)
	}

	return Output{
		PixelWavelengths: pixels,
		Object:           obj,
		Sky:              sky,
		Geometry:         geom,
	}, nil
}

// NormalizedSpectrum smooths values with a kernel one pixel wide, resamples
// them to the pixel axis and scales the result to a peak of one. An
// all-zero spectrum stays zero.
func NormalizedSpectrum(g curve.Grid, values []float64, geom Geometry) ([]float64, error) {
	kernel := GaussianKernel(geom.Dispersion, g.Step())
	out, err := smooth(g, values, kernel, geom.Pixels(), 1)
	if err != nil {
		return nil, fmt.Errorf("spectral: normalized spectrum: %w", err)
	}
	if peak, _ := numeric.Max(out); peak > 0 {
		vecmath.ScaleBlockInPlace(out, 1/peak)
	}
	return out, nil
}

// roundoff is the level, relative to the peak, below which convolved
// samples are FFT residue and are reset to zero.
const roundoff = 1e-12

func smooth(g curve.Grid, values, kernel, pixels []float64, scale float64) ([]float64, error) {
	c, err := conv.ConvolveSame(values, kernel)
	if err != nil {
		return nil, err
	}
	if floor := roundoff * vecmath.MaxAbs(c); floor > 0 {
		for i, v := range c {
			if math.Abs(v) <= floor {
				c[i] = 0
			}
		}
	}
	out := interp.Linear(g.Lambda(), c, pixels)
	vecmath.ScaleBlockInPlace(out, scale)
	return out, nil
}

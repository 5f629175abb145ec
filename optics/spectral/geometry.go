package spectral

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Detector spectral axis.
const (
	NumPixels   = 2048
	CenterPixel = 1024
)

// pixelsPerResolution is the nominal sampling of a resolution element at
// the grism's design slit.
const pixelsPerResolution = 3

// Geometry is the spectral sampling of one grism/slit/detector setup.
type Geometry struct {
	Central           float64 // micron
	Dispersion        float64 // micron/pixel
	ResolutionElement float64 // micron
	ResolvingPower    float64 // achieved, Central/ResolutionElement
}

// NewGeometry derives the sampling of a dispersive throughput on g.
func NewGeometry(g curve.Grid, dispersive []float64, resolution, slitWidth, plateScale float64) (Geometry, error) {
	switch {
	case !(resolution > 0):
		return Geometry{}, request.Invalid("resolution", resolution, "must be > 0")
	case !(slitWidth > 0):
		return Geometry{}, request.Invalid("slit width", slitWidth, "must be > 0")
	case !(plateScale > 0):
		return Geometry{}, request.Invalid("plate scale", plateScale, "must be > 0")
	case len(dispersive) != g.Len():
		return Geometry{}, request.Invalid("dispersive throughput", len(dispersive), "length differs from grid")
	}

	total := vecmath.Sum(dispersive)
	if !(total > 0) {
		return Geometry{}, request.Invalid("dispersive throughput", nil, "zero everywhere")
	}

	central := vecmath.DotProduct(g.Lambda(), dispersive) / total
	disp := central / resolution / pixelsPerResolution
	res := disp * slitWidth / plateScale

	return Geometry{
		Central:           central,
		Dispersion:        disp,
		ResolutionElement: res,
		ResolvingPower:    central / res,
	}, nil
}

// Pixels returns the wavelength of each detector pixel.
func (g Geometry) Pixels() []float64 {
	out := make([]float64, NumPixels)
	for i := range out {
		out[i] = float64(i-CenterPixel)*g.Dispersion + g.Central
	}
	return out
}

// Coverage returns the wavelengths of the first and last pixel.
func (g Geometry) Coverage() (lo, hi float64) {
	return float64(-CenterPixel)*g.Dispersion + g.Central,
		float64(NumPixels-1-CenterPixel)*g.Dispersion + g.Central
}

const fwhmToSigma = 2.3548200450309493

// SlitFraction is the share of a Gaussian seeing disk of FWHM seeing arcsec
// that passes a slit of width slitWidth arcsec.
func SlitFraction(seeing, slitWidth float64) float64 {
	if seeing <= 0 {
		return 1
	}
	sigma := seeing / fwhmToSigma
	return math.Erf(slitWidth / (2 * math.Sqrt2 * sigma))
}

// GaussianKernel returns a unit-sum Gaussian of the given FWHM sampled at
// step, truncated at ±4σ. A FWHM below one step yields the identity kernel.
func GaussianKernel(fwhm, step float64) []float64 {
	sigma := fwhm / fwhmToSigma / step
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return []float64{1}
	}
	half := int(math.Ceil(4 * sigma))

	k := make([]float64, 2*half+1)
	for i := range k {
		d := float64(i-half) / sigma
		k[i] = math.Exp(-0.5 * d * d)
	}
	vecmath.ScaleBlockInPlace(k, 1/vecmath.Sum(k))
	return k
}

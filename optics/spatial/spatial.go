// Package spatial distributes detected flux over detector bins and selects
// the aperture that is summed into a measurement.
//
// A point source is spread as a Gaussian seeing disk: a 100×100 image for
// photometry, a 100-bin row across the slit for every spectral pixel. An
// extended source has uniform surface brightness, so a single pixel stands
// for the whole aperture.
package spatial

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/observe/request"
)

// Bin layout of point-source profiles.
const (
	Size   = 100
	Center = 50
)

// Aperture radius in units of the seeing FWHM (in pixels). The imaging
// aperture is half the spectroscopic one.
const (
	PhotometryApertureFactor   = 0.5 * 1.2
	SpectroscopyApertureFactor = 1.2
)

const fwhmToSigma = 2.3548200450309493

// Model places integrated flux into spatial bins.
type Model interface {
	// Bins spreads flux over the bins used for op.
	Bins(op request.Operation, flux float64) []float64
	// Aperture returns the indices of the bins summed for op.
	Aperture(op request.Operation) []int
}

// Point is a seeing-limited point source.
type Point struct {
	Seeing     float64 // arcsec FWHM
	PlateScale float64 // arcsec/pixel
}

// Extended is a source of uniform surface brightness.
type Extended struct{}

// New returns the model for a source type.
func New(src request.SourceType, seeing, plateScale float64) Model {
	if src == request.Extended {
		return Extended{}
	}
	return Point{Seeing: seeing, PlateScale: plateScale}
}

func (p Point) fwhmPixels() float64 { return p.Seeing / p.PlateScale }

func (p Point) Bins(op request.Operation, flux float64) []float64 {
	if op == request.Spectroscopy {
		return Profile1D(p.fwhmPixels(), flux)
	}
	return Profile2D(p.fwhmPixels(), flux)
}

func (p Point) Aperture(op request.Operation) []int {
	r := ApertureRadius(op, p.Seeing, p.PlateScale)
	if op == request.Spectroscopy {
		return Mask1D(r)
	}
	return Mask2D(r)
}

func (Extended) Bins(_ request.Operation, flux float64) []float64 { return []float64{flux} }

func (Extended) Aperture(request.Operation) []int { return []int{0} }

// ApertureRadius returns the aperture radius in pixels for op.
func ApertureRadius(op request.Operation, seeing, plateScale float64) float64 {
	if op == request.Spectroscopy {
		return SpectroscopyApertureFactor * seeing / plateScale
	}
	return PhotometryApertureFactor * seeing / plateScale
}

// Profile1D returns a Size-bin Gaussian of the given FWHM (pixels) centred
// on Center that sums to flux.
func Profile1D(fwhm, flux float64) []float64 {
	out := make([]float64, Size)
	sigma := fwhm / fwhmToSigma
	if !(sigma > 0) {
		out[Center] = flux
		return out
	}
	for k := range out {
		d := float64(k-Center) / sigma
		out[k] = math.Exp(-0.5 * d * d)
	}
	return scaleTo(out, flux)
}

// Profile2D returns a Size×Size row-major circular Gaussian of the given
// FWHM (pixels) centred on (Center, Center) that sums to flux.
func Profile2D(fwhm, flux float64) []float64 {
	out := make([]float64, Size*Size)
	sigma := fwhm / fwhmToSigma
	if !(sigma > 0) {
		out[Center*Size+Center] = flux
		return out
	}

	// The circular Gaussian separates into the outer product of two rows.
	row := make([]float64, Size)
	for k := range row {
		d := float64(k-Center) / sigma
		row[k] = math.Exp(-0.5 * d * d)
	}
	for i := range Size {
		vecmath.ScaleBlock(out[i*Size:(i+1)*Size], row, row[i])
	}
	return scaleTo(out, flux)
}

func scaleTo(x []float64, flux float64) []float64 {
	if s := vecmath.Sum(x); s > 0 {
		vecmath.ScaleBlockInPlace(x, flux/s)
	}
	return x
}

// Mask1D selects the bins k with |k-Center| <= r.
func Mask1D(r float64) []int {
	var idx []int
	for k := range Size {
		if math.Abs(float64(k-Center)) <= r {
			idx = append(idx, k)
		}
	}
	return idx
}

// Mask2D selects the row-major bins (i, j) whose distance from
// (Center, Center) is at most r.
func Mask2D(r float64) []int {
	var idx []int
	for i := range Size {
		for j := range Size {
			di, dj := float64(i-Center), float64(j-Center)
			if math.Sqrt(di*di+dj*dj) <= r {
				idx = append(idx, i*Size+j)
			}
		}
	}
	return idx
}

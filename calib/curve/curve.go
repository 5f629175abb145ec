package curve

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-etc/internal/interp"
)

// Unit tags the flux convention of a curve or spectrum.
type Unit string

const (
	// UnitNormalPhoton marks a photon spectrum with arbitrary normalization.
	// It is scaled to a magnitude against Vega before use.
	UnitNormalPhoton Unit = "normal_photon"

	// UnitPhotonFlux marks an absolute photon flux density in photon/s/m2/micron.
	UnitPhotonFlux Unit = "photon/s/m2/micron"

	// UnitTransmission marks a dimensionless efficiency curve.
	UnitTransmission Unit = "transmission"
)

// Errors returned when constructing curves and grids.
var (
	ErrEmptyCurve     = errors.New("curve: empty curve")
	ErrLengthMismatch = errors.New("curve: wavelength and value length mismatch")
	ErrNotIncreasing  = errors.New("curve: wavelengths must be strictly increasing")
)

// Curve is an immutable tabulated function of wavelength (micron).
type Curve struct {
	wavelength []float64
	value      []float64
	unit       Unit
}

// New validates and copies the samples into a Curve.
func New(wavelength, value []float64, unit Unit) (Curve, error) {
	if err := interp.Validate(wavelength, value); err != nil {
		return Curve{}, translate(err)
	}

	c := Curve{
		wavelength: append([]float64(nil), wavelength...),
		value:      append([]float64(nil), value...),
		unit:       unit,
	}
	return c, nil
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.wavelength) }

// Empty reports whether the curve has no samples.
func (c Curve) Empty() bool { return len(c.wavelength) == 0 }

// Unit returns the flux unit tag.
func (c Curve) Unit() Unit { return c.unit }

// Wavelengths returns a copy of the wavelength samples.
func (c Curve) Wavelengths() []float64 { return append([]float64(nil), c.wavelength...) }

// Values returns a copy of the value samples.
func (c Curve) Values() []float64 { return append([]float64(nil), c.value...) }

// Range returns the first and last tabulated wavelength.
func (c Curve) Range() (lo, hi float64) {
	if c.Empty() {
		return 0, 0
	}
	return c.wavelength[0], c.wavelength[len(c.wavelength)-1]
}

// WithUnit returns the same samples tagged with another unit.
func (c Curve) WithUnit(u Unit) Curve {
	c.unit = u
	return c
}

// Interpolate resamples the curve onto g.
func (c Curve) Interpolate(g Grid) []float64 {
	return Interpolate(c, g)
}

// Interpolate resamples c linearly onto every wavelength of g, holding the
// end values outside the tabulated range. An empty curve yields zeros.
func Interpolate(c Curve, g Grid) []float64 {
	return interp.Linear(c.wavelength, c.value, g.lambda)
}

func translate(err error) error {
	switch {
	case errors.Is(err, interp.ErrEmptyInput):
		return ErrEmptyCurve
	case errors.Is(err, interp.ErrLengthMismatch):
		return ErrLengthMismatch
	case errors.Is(err, interp.ErrNotIncreasing):
		return ErrNotIncreasing
	default:
		return fmt.Errorf("curve: %w", err)
	}
}

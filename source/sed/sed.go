package sed

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/observe/request"
)

// SED is a spectrum sampled on a grid.
type SED struct {
	Values []float64
	Unit   curve.Unit
}

// UnitMismatchError is returned when a spectrum's unit cannot be normalized.
type UnitMismatchError struct {
	Unit curve.Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("sed: cannot normalize spectrum in unit %q", e.Unit)
}

// Build samples the request's template on g.
func Build(req request.Request, store *curve.Store, g curve.Grid) (SED, error) {
	var s SED
	switch tpl := req.Template.(type) {
	case request.ModelLibrary:
		c, err := store.Model(tpl.Model)
		if err != nil {
			return SED{}, fmt.Errorf("sed: %w", err)
		}
		s = SED{Values: c.Interpolate(g), Unit: c.Unit()}
	case request.ModelFile:
		c, err := store.LoadModelFile(tpl.Path)
		if err != nil {
			return SED{}, fmt.Errorf("sed: %w", err)
		}
		s = SED{Values: c.Interpolate(g), Unit: c.Unit()}
	case request.BlackBody:
		v, err := Planck(tpl.Temperature, g)
		if err != nil {
			return SED{}, err
		}
		s = SED{Values: v, Unit: curve.UnitNormalPhoton}
	case request.EmissionLines:
		s = SED{Values: EmissionLines(tpl.Lines, g), Unit: curve.UnitPhotonFlux}
	default:
		return SED{}, request.Invalid("template", fmt.Sprintf("%T", req.Template), "unsupported template")
	}

	if req.UnitOverride != "" {
		s.Unit = req.UnitOverride
	}
	return s, nil
}

// SyntheticFlux integrates values through passband as a plain sum.
func SyntheticFlux(values, passband []float64) float64 {
	return vecmath.DotProduct(values, passband)
}

// Normalize scales a relative spectrum so that its flux through passband
// equals Vega's attenuated by mag. Spectra in absolute photon flux are
// returned unchanged.
func Normalize(s SED, mag float64, vega, passband []float64) (SED, error) {
	switch s.Unit {
	case curve.UnitPhotonFlux:
		return s, nil
	case curve.UnitNormalPhoton:
	default:
		return SED{}, &UnitMismatchError{Unit: s.Unit}
	}

	if len(s.Values) != len(vega) || len(vega) != len(passband) {
		return SED{}, fmt.Errorf("sed: length mismatch: sed %d, vega %d, passband %d",
			len(s.Values), len(vega), len(passband))
	}

	src := SyntheticFlux(s.Values, passband)
	if src <= 0 {
		return SED{}, request.Invalid("source spectrum", nil, "no flux in passband")
	}
	scale := SyntheticFlux(vega, passband) / src * numeric.Pow10Mag(mag)

	out := make([]float64, len(s.Values))
	vecmath.ScaleBlock(out, s.Values, scale)
	return SED{Values: out, Unit: curve.UnitPhotonFlux}, nil
}

// Sky normalizes a sky emission spectrum to a surface brightness of mag per
// arcsec² through passband. The emission curve is always taken as relative.
func Sky(emission []float64, mag float64, vega, passband []float64) (SED, error) {
	s, err := Normalize(SED{Values: emission, Unit: curve.UnitNormalPhoton}, mag, vega, passband)
	if err != nil {
		return SED{}, fmt.Errorf("sed: sky: %w", err)
	}
	return s, nil
}

package sed

import (
	"math"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/observe/request"
)

// SI constants.
const (
	PlanckConstant = 6.62607015e-34 // J s
	SpeedOfLight   = 2.99792458e8   // m/s
	Boltzmann      = 1.380649e-23   // J/K
)

const (
	micron       = 1e-6
	ergPerCm2ToW = 1e-3 // erg/s/cm² -> W/m²
	fwhmToSigma  = 2.3548200450309493
)

// Planck returns the photon spectral radiance of a black body at temp kelvin
// on g, scaled to a peak of one.
func Planck(temp float64, g curve.Grid) ([]float64, error) {
	if !(temp > 0) {
		return nil, request.Invalid("temperature", temp, "must be > 0")
	}

	lambda := g.Lambda()
	out := make([]float64, len(lambda))
	c := PlanckConstant * SpeedOfLight / (Boltzmann * temp)
	for i, l := range lambda {
		lm := l * micron
		// photons: 2c/λ⁴ / (exp(hc/λkT) - 1)
		out[i] = 2 * SpeedOfLight / (lm * lm * lm * lm) / math.Expm1(c/lm)
	}

	peak, _ := numeric.Max(out)
	if peak > 0 && !math.IsInf(peak, 0) {
		inv := 1 / peak
		for i := range out {
			out[i] *= inv
		}
	}
	return out, nil
}

// PhotonRate converts an integrated line flux in erg/s/cm² at center micron
// to photons/s/m².
func PhotonRate(flux, center float64) float64 {
	return flux * ergPerCm2ToW * center * micron / (PlanckConstant * SpeedOfLight)
}

// EmissionLines sums Gaussian line profiles on g in photons/s/m²/micron.
// Each profile integrates to the line's photon rate.
func EmissionLines(lines []request.Line, g curve.Grid) []float64 {
	lambda := g.Lambda()
	out := make([]float64, len(lambda))
	for _, l := range lines {
		sigma := l.FWHM / fwhmToSigma
		amp := PhotonRate(l.Flux, l.Center) / (sigma * math.Sqrt(2*math.Pi))
		lo, hi := l.Center-8*sigma, l.Center+8*sigma
		for i, x := range lambda {
			if x < lo || x > hi {
				continue
			}
			d := (x - l.Center) / sigma
			out[i] += amp * math.Exp(-0.5*d*d)
		}
	}
	return out
}

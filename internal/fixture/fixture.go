// Package fixture provides a small synthetic near-infrared instrument for
// tests: a curve store with J/H/Ks filters and one grism, instrument
// constants of an 8 m class telescope, and the reference requests used by
// the end-to-end tests.
package fixture

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Grid spans 0.8–2.8 micron in 1 Å steps, a tenth of the default density.
func Grid() curve.Grid {
	g, err := curve.UniformGrid(curve.DefaultGridStart, 1e-4, 20001)
	if err != nil {
		panic(err)
	}
	return g
}

// Instrument returns the detector and telescope constants.
func Instrument() request.Instrument {
	return request.Instrument{
		Gain:        4.0,
		ReadNoise:   10,
		DarkCurrent: 0.05,
		WellDepth:   1.5e5,
		PlateScale:  0.2,
		Area:        73,
	}
}

func mustCurve(wl, v []float64, u curve.Unit) curve.Curve {
	c, err := curve.New(wl, v, u)
	if err != nil {
		panic(fmt.Sprintf("fixture: %v", err))
	}
	return c
}

func flat(v float64) curve.Curve {
	return mustCurve([]float64{0.5, 3.0}, []float64{v, v}, curve.UnitTransmission)
}

// TopHat is a transmission of v between lo and hi with zero end points.
func TopHat(lo, hi, v float64) curve.Curve {
	return mustCurve(
		[]float64{0.5, lo - 1e-3, lo, hi, hi + 1e-3, 3.0},
		[]float64{0, 0, v, v, 0, 0},
		curve.UnitTransmission,
	)
}

// Vega approximates the photon flux density of Vega (photons/s/m²/micron)
// as a power law anchored at 2e10 at 1.25 micron.
func Vega() curve.Curve {
	var wl, v []float64
	for l := 0.5; l <= 3.0+1e-9; l += 0.05 {
		wl = append(wl, l)
		v = append(v, 2e10*math.Pow(1.25/l, 2.5))
	}
	return mustCurve(wl, v, curve.UnitPhotonFlux)
}

// Store builds the synthetic curve store. opts are applied after the
// defaults.
func Store(opts ...curve.Option) *curve.Store {
	sky, err := curve.NewSkyModel(
		curve.SkySample{Airmass: 1.0, Transmission: flat(0.95), Emission: flat(1.0)},
		curve.SkySample{Airmass: 2.0, Transmission: flat(0.85), Emission: flat(1.3)},
	)
	if err != nil {
		panic(err)
	}

	base := []curve.Option{
		curve.WithFilter("J", TopHat(1.17, 1.33, 0.85)),
		curve.WithFilter("H", TopHat(1.49, 1.78, 0.85)),
		curve.WithFilter("Ks", TopHat(1.99, 2.31, 0.85)),
		curve.WithFilter("zJ", TopHat(0.95, 1.35, 0.85)),
		curve.WithGrism("zJ_G", curve.Grism{Resolution: 1000, Dispersive: flat(0.6), Filter: "zJ"}),
		curve.WithModel("A0V", mustCurve([]float64{0.5, 3.0}, []float64{1, 1}, curve.UnitNormalPhoton)),
		curve.WithSkyMagnitude("J", 16.0),
		curve.WithSkyMagnitude("H", 14.0),
		curve.WithSkyMagnitude("Ks", 13.0),
		curve.WithCatchAllSkyMagnitude(15.5),
	}

	s, err := curve.NewStore(curve.Fixed{
		QE:        flat(0.8),
		Optics:    flat(0.6),
		Telescope: flat(0.9),
		Vega:      Vega(),
	}, sky, append(base, opts...)...)
	if err != nil {
		panic(err)
	}
	return s
}

// PhotometryRequest is a J = 18 point source at 0.8" seeing and airmass 1.2,
// one 30 s frame.
func PhotometryRequest() request.Request {
	return request.Request{
		Operation:    request.Photometry,
		Source:       request.Point,
		Magnitude:    18,
		Seeing:       0.8,
		Airmass:      1.2,
		Exposure:     request.Single(30),
		ObjectFrames: 1,
		Band:         "J",
		Template:     request.BlackBody{Temperature: 5800},
	}
}

// EmissionLineRequest is a single 1e-16 erg/s/cm² line at 1.0 micron with a
// FWHM of 10 Å through the zJ grism and a 0.6" slit.
func EmissionLineRequest() request.Request {
	return request.Request{
		Operation:    request.Spectroscopy,
		Source:       request.Point,
		Seeing:       0.8,
		Airmass:      1.2,
		Exposure:     request.Single(300),
		ObjectFrames: 1,
		Band:         "zJ_G",
		SlitWidth:    0.6,
		Template: request.EmissionLines{Lines: []request.Line{
			{Center: 1.0, FWHM: 10e-4, Flux: 1e-16},
		}},
	}
}

// Package curve holds the calibration curves of the instrument and resamples
// them onto the shared high-resolution wavelength grid.
//
// A [Curve] is an immutable, strictly increasing (wavelength, value) table
// tagged with a flux [Unit]. [Interpolate] resamples it linearly onto a [Grid];
// outside the tabulated range the first or last value is held (clamp policy).
// Transmission curves that must vanish outside their band therefore carry
// explicit zero end points, which is how the calibration files are written.
//
// A [Store] is built once per run from the fixed optical train (detector QE,
// optics, telescope), the Vega reference spectrum, the per-band filter and
// grism curves, the model-library templates, the sky magnitudes and the
// airmass-dependent [SkyModel]. It is read-only after construction and safe to
// share between goroutines.
//
// # Usage
//
//	grid := curve.DefaultGrid()
//	store, err := curve.NewStore(fixed, sky,
//		curve.WithFilter("J", jBand),
//		curve.WithSkyMagnitude("J", 16.0),
//		curve.WithCatchAllSkyMagnitude(13.0),
//	)
//	filter, err := store.Filter("J")
//	onGrid := filter.Interpolate(grid)
package curve

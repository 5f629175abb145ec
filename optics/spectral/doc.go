// Package spectral maps grid-sampled spectral densities onto the detector's
// spectral pixels.
//
// A grism of resolving power R, used with a slit of width w arcsec on a
// detector of plate scale p arcsec/pixel, samples the spectrum with
//
//	dispersion         = λc / (3R)             micron/pixel
//	resolution element = dispersion · w / p    micron
//
// where λc is the throughput-weighted central wavelength of the grism. The
// spectrum is convolved with a Gaussian of FWHM equal to the resolution
// element and resampled onto 2048 pixels centred on λc.
//
// # Usage
//
//	out, err := spectral.Resolve(spectral.Input{
//		Grid:       grid,
//		Object:     obj,
//		Sky:        sky,
//		Dispersive: tp.Dispersive,
//		Resolution: tp.Resolution,
//		SlitWidth:  req.SlitWidth,
//		PlateScale: inst.PlateScale,
//	})
package spectral

// Package interp provides the one-dimensional interpolation primitives used to
// resample calibration curves and spectra onto wavelength axes.
//
// Available methods:
//
//   - [Linear]:   piecewise-linear resampling of (x, y) samples onto new abscissae
//   - [Linspace]: evenly spaced abscissae including both end points
//   - [Lerp]:     2-point linear interpolation at a fractional position
//
// Points outside the sampled domain are clamped to the first or last ordinate.
// This matches the behavior of numpy.interp and is relied on by every flux
// integral downstream: a curve that must vanish outside its range has to carry
// explicit zero end points.
package interp

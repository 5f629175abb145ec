// Package conv provides the linear convolution used to degrade high-resolution
// spectra to the resolving power of a spectrograph.
//
//	smoothed, err := conv.ConvolveSame(spectrum, kernel) // same length as spectrum
//
// Kernels of at most 64 samples are applied directly in the time domain,
// longer ones by FFT overlap-add. A resolution element of a few hundred grid
// samples on the 100k-point wavelength grid is the case the FFT path exists for.
package conv

// Package sed builds source spectral energy distributions on the wavelength
// grid and scales them to an observed magnitude.
//
// A template is turned into an [SED] by [Build]. Relative spectra (unit
// normal_photon) are then anchored to a Vega magnitude through a passband by
// [Normalize]; spectra already in absolute photon flux pass through
// unchanged. The sky is treated as one more relative spectrum normalized to
// the band's sky surface brightness, see [Sky].
//
// # Usage
//
//	s, err := sed.Build(req, store, grid)
//	if err != nil {
//		return err
//	}
//	obj, err := sed.Normalize(s, req.Magnitude, vega, tp.Passband)
package sed

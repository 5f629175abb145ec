// Package pipeline computes the signal-to-noise of a single exposure.
//
// [Prepare] does all work that does not depend on the exposure time:
// throughput composition, sky curves at the requested airmass, building
// and normalizing the source and sky spectra, the spectral geometry, slit
// losses and the choice of spatial model. The resulting [Plan] is
// read-only and may be evaluated for any number of exposure times,
// concurrently.
//
// # Usage
//
//	plan, err := pipeline.Prepare(req, store, inst, grid)
//	if err != nil {
//		return err
//	}
//	res, err := plan.Evaluate(30)
package pipeline

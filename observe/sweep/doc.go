// Package sweep evaluates a prepared request over a range of exposure times.
//
// A scalar exposure yields one sample. A range yields 100 linearly spaced
// samples for photometry and 10 for spectroscopy, both end points
// included. Samples are independent and may be evaluated by several
// workers; results are always returned in exposure order.
//
// [Driver] wraps preparation and the sweep with logging and metrics for the
// CLI and the HTTP server.
//
// # Usage
//
//	plan, _ := pipeline.Prepare(req, store, inst, grid)
//	results, err := sweep.Run(ctx, plan, req.Exposure,
//		sweep.WithWorkers(4),
//		sweep.WithTimeout(10*time.Second),
//	)
package sweep

package sweep

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-etc/internal/interp"
	"github.com/cwbudde/algo-etc/observe/pipeline"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Samples per exposure range.
const (
	PhotometrySamples   = 100
	SpectroscopySamples = 10
)

// Plan is what Run needs from a prepared request.
type Plan interface {
	Request() request.Request
	Evaluate(t float64) (pipeline.Result, error)
}

// Observer is called with every finished sample. With more than one worker
// it is called concurrently and out of order.
type Observer func(index int, r pipeline.Result)

type options struct {
	workers  int
	timeout  time.Duration
	observer Observer
}

// Option configures Run.
type Option func(*options)

// WithWorkers evaluates up to n samples in parallel. n <= 1 is sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithTimeout bounds the whole sweep. d <= 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithObserver registers a per-sample hook.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// Expand returns the exposure times of a sweep.
func Expand(exp request.Exposure, op request.Operation) []float64 {
	if !exp.IsRange() {
		return []float64{exp.Min}
	}
	n := PhotometrySamples
	if op == request.Spectroscopy {
		n = SpectroscopySamples
	}
	ts := interp.Linspace(exp.Min, exp.Max, n)
	ts[n-1] = exp.Max
	return ts
}

// Run evaluates plan at every exposure time of exp. The first failing
// sample aborts the sweep.
func Run(ctx context.Context, plan Plan, exp request.Exposure, opts ...Option) ([]pipeline.Result, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	times := Expand(exp, plan.Request().Operation)
	results := make([]pipeline.Result, len(times))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.workers, 1))
	for i, t := range times {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := plan.Evaluate(t)
			if err != nil {
				return fmt.Errorf("sweep: sample %d (t=%g s): %w", i, t, err)
			}
			results[i] = r
			if o.observer != nil {
				o.observer(i, r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return results, nil
}

package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/observe/pipeline"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Recorder receives sweep metrics.
type Recorder interface {
	SweepStarted(operation string)
	SweepFinished(operation string, samples, saturated int, elapsed time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) SweepStarted(string)                                  {}
func (noopRecorder) SweepFinished(string, int, int, time.Duration, error) {}

// Report is the outcome of one Driver run.
type Report struct {
	ID        string            `json:"id"`
	Operation string            `json:"operation"`
	Results   []pipeline.Result `json:"results"`
	Elapsed   time.Duration     `json:"elapsed_ns"`
}

// Driver runs requests against one instrument.
type Driver struct {
	store *curve.Store
	inst  request.Instrument
	grid  curve.Grid

	log      logging.Logger
	recorder Recorder
	opts     []Option
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the driver's logger.
func WithLogger(l logging.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) DriverOption {
	return func(d *Driver) {
		if r != nil {
			d.recorder = r
		}
	}
}

// WithSweepOptions sets the options passed to Run.
func WithSweepOptions(opts ...Option) DriverOption {
	return func(d *Driver) { d.opts = append(d.opts, opts...) }
}

// NewDriver returns a Driver for store and inst on grid g.
func NewDriver(store *curve.Store, inst request.Instrument, g curve.Grid, opts ...DriverOption) *Driver {
	d := &Driver{
		store:    store,
		inst:     inst,
		grid:     g,
		log:      logging.Noop(),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Do prepares req and sweeps its exposure range. The run id is taken from
// ctx when present, otherwise a new one is generated.
func (d *Driver) Do(ctx context.Context, req request.Request) (Report, error) {
	id := logging.RunIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = logging.ContextWithRunID(ctx, id)
	}
	op := req.Operation.String()
	log := d.log.Named("sweep").With(logging.String("run_id", id), logging.String("operation", op))

	start := time.Now()
	d.recorder.SweepStarted(op)
	log.Info(ctx, "sweep started",
		logging.String("band", req.Band),
		logging.String("exposure", req.Exposure.String()),
		logging.String("template", templateName(req.Template)),
	)

	results, err := d.run(ctx, req)
	elapsed := time.Since(start)

	saturated := 0
	for _, r := range results {
		if r.Saturated {
			saturated++
		}
	}
	d.recorder.SweepFinished(op, len(results), saturated, elapsed, err)

	if err != nil {
		log.Error(ctx, "sweep failed", logging.Error(err), logging.Duration("elapsed", elapsed))
		return Report{}, err
	}

	best := 0.0
	for _, r := range results {
		best = max(best, r.SNR)
	}
	log.Info(ctx, "sweep finished",
		logging.Int("samples", len(results)),
		logging.Int("saturated", saturated),
		logging.Float64("max_snr", best),
		logging.Duration("elapsed", elapsed),
	)

	return Report{ID: id, Operation: op, Results: results, Elapsed: elapsed}, nil
}

func (d *Driver) run(ctx context.Context, req request.Request) ([]pipeline.Result, error) {
	plan, err := pipeline.Prepare(req, d.store, d.inst, d.grid)
	if err != nil {
		return nil, err
	}
	return Run(ctx, plan, req.Exposure, d.opts...)
}

func templateName(t request.Template) string {
	if t == nil {
		return ""
	}
	return t.Name()
}

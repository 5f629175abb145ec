package curve

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

// Fixed holds the curves of the optical train that every observation passes
// through, plus the Vega reference spectrum used for magnitude zero points.
type Fixed struct {
	QE        Curve
	Optics    Curve
	Telescope Curve
	Vega      Curve
}

// Grism describes a dispersive element: its nominal resolving power, its
// efficiency curve and the id of the order-sorting filter used with it.
type Grism struct {
	Resolution float64
	Dispersive Curve
	Filter     string
}

// Loader reads a user-supplied spectrum, typically from disk.
type Loader func(path string) (Curve, error)

// Option configures a Store.
type Option func(*Store)

// Store is the read-only catalog of calibration curves for one run.
type Store struct {
	fixed    Fixed
	sky      SkyModel
	filters  map[string]Curve
	grisms   map[string]Grism
	models   map[string]Curve
	skyMags  map[string]float64
	catchAll *float64
	loader   Loader
}

// WithFilter registers a filter transmission curve under id.
func WithFilter(id string, c Curve) Option {
	return func(s *Store) { s.filters[id] = c }
}

// WithGrism registers a grism under id.
func WithGrism(id string, g Grism) Option {
	return func(s *Store) { s.grisms[id] = g }
}

// WithModel registers a model-library template under name.
func WithModel(name string, c Curve) Option {
	return func(s *Store) { s.models[name] = c }
}

// WithSkyMagnitude sets the sky surface brightness (Vega mag/arcsec²) of a
// filter or grism id.
func WithSkyMagnitude(id string, mag float64) Option {
	return func(s *Store) { s.skyMags[id] = mag }
}

// WithCatchAllSkyMagnitude sets the sky magnitude used for bands without a
// dedicated value.
func WithCatchAllSkyMagnitude(mag float64) Option {
	return func(s *Store) {
		m := mag
		s.catchAll = &m
	}
}

// WithLoader replaces the loader used for model-file templates.
func WithLoader(l Loader) Option {
	return func(s *Store) {
		if l != nil {
			s.loader = l
		}
	}
}

// NewStore assembles a Store. All fixed curves are required, and every grism
// must reference a registered filter.
func NewStore(fixed Fixed, sky SkyModel, opts ...Option) (*Store, error) {
	s := &Store{
		fixed:   fixed,
		sky:     sky,
		filters: make(map[string]Curve),
		grisms:  make(map[string]Grism),
		models:  make(map[string]Curve),
		skyMags: make(map[string]float64),
		loader:  ReadFile,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	for name, c := range map[string]Curve{
		"qe": fixed.QE, "optics": fixed.Optics, "telescope": fixed.Telescope, "vega": fixed.Vega,
	} {
		if c.Empty() {
			return nil, fmt.Errorf("%w: fixed curve %q", ErrEmptyCurve, name)
		}
	}
	if len(sky.samples) == 0 {
		return nil, ErrNoSkySamples
	}
	for id, g := range s.grisms {
		if g.Dispersive.Empty() {
			return nil, fmt.Errorf("%w: grism %q", ErrEmptyCurve, id)
		}
		if _, ok := s.filters[g.Filter]; !ok {
			return nil, &MissingCurveError{Kind: KindFilter, ID: g.Filter}
		}
	}

	return s, nil
}

// Fixed returns the fixed optical-train curves.
func (s *Store) Fixed() Fixed { return s.fixed }

// Sky returns the airmass-dependent sky model.
func (s *Store) Sky() SkyModel { return s.sky }

// Filter returns the transmission curve of filter id.
func (s *Store) Filter(id string) (Curve, error) {
	c, ok := s.filters[id]
	if !ok {
		return Curve{}, &MissingCurveError{Kind: KindFilter, ID: id}
	}
	return c, nil
}

// Grism returns grism id.
func (s *Store) Grism(id string) (Grism, error) {
	g, ok := s.grisms[id]
	if !ok {
		return Grism{}, &MissingCurveError{Kind: KindGrism, ID: id}
	}
	return g, nil
}

// Model returns the model-library template name.
func (s *Store) Model(name string) (Curve, error) {
	c, ok := s.models[name]
	if !ok {
		return Curve{}, &MissingCurveError{Kind: KindModel, ID: name}
	}
	return c, nil
}

// LoadModelFile reads a user spectrum through the store's loader. A missing
// file is reported as a MissingCurveError.
func (s *Store) LoadModelFile(path string) (Curve, error) {
	c, err := s.loader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Curve{}, &MissingCurveError{Kind: KindModelFile, ID: path, Err: err}
		}
		return Curve{}, fmt.Errorf("curve: load model file %q: %w", path, err)
	}
	return c, nil
}

// SkyMagnitude returns the sky magnitude of band id, falling back to the
// catch-all magnitude.
func (s *Store) SkyMagnitude(id string) (float64, error) {
	if m, ok := s.skyMags[id]; ok {
		return m, nil
	}
	if s.catchAll != nil {
		return *s.catchAll, nil
	}
	return 0, &MissingCurveError{Kind: KindSkyMagnitude, ID: id}
}

// Filters lists the registered filter ids in sorted order.
func (s *Store) Filters() []string { return sortedKeys(s.filters) }

// Grisms lists the registered grism ids in sorted order.
func (s *Store) Grisms() []string { return sortedKeys(s.grisms) }

// Models lists the registered model-library names in sorted order.
func (s *Store) Models() []string { return sortedKeys(s.models) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

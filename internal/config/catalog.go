package config

import (
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-etc/calib/curve"
)

// Catalog lists the calibration curve files of an instrument. Relative
// paths are resolved against Dir.
type Catalog struct {
	Dir       string `koanf:"dir"`
	QE        string `koanf:"qe"`
	Optics    string `koanf:"optics"`
	Telescope string `koanf:"telescope"`
	Vega      string `koanf:"vega"`

	Filters map[string]string     `koanf:"filters"`
	Grisms  map[string]GrismEntry `koanf:"grisms"`
	Models  map[string]string     `koanf:"models"`
	Sky     []SkyEntry            `koanf:"sky"`

	// ModelDir holds the spectra that requests may name as model files.
	// Empty disables model files for served requests.
	ModelDir string `koanf:"model_dir"`

	SkyMagnitudes map[string]float64 `koanf:"sky_magnitudes"`
	// DefaultSkyMagnitude applies to bands missing from SkyMagnitudes.
	DefaultSkyMagnitude *float64 `koanf:"default_sky_magnitude"`
}

// GrismEntry describes one grism.
type GrismEntry struct {
	File       string  `koanf:"file"`
	Resolution float64 `koanf:"resolution"`
	Filter     string  `koanf:"filter"`
}

// SkyEntry holds the sky curves measured at one airmass.
type SkyEntry struct {
	Airmass      float64 `koanf:"airmass"`
	Transmission string  `koanf:"transmission"`
	Emission     string  `koanf:"emission"`
}

func (c Catalog) path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

func (c Catalog) read(what, p string) (curve.Curve, error) {
	if p == "" {
		return curve.Curve{}, fmt.Errorf("%w: %s: no file configured", ErrCatalog, what)
	}
	cv, err := curve.ReadFile(c.path(p))
	if err != nil {
		return curve.Curve{}, fmt.Errorf("%w: %s: %w", ErrCatalog, what, err)
	}
	return cv, nil
}

// ModelLoader returns a loader confined to ModelDir, or one refusing every
// path when ModelDir is empty.
func (c Catalog) ModelLoader() (curve.Loader, error) {
	if c.ModelDir == "" {
		return curve.NoModelFiles, nil
	}
	l, err := curve.DirLoader(c.path(c.ModelDir))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	return l, nil
}

// Open reads every configured curve and assembles the store. extra is
// applied after the catalog's own options.
func (c Catalog) Open(extra ...curve.Option) (*curve.Store, error) {
	var (
		fixed curve.Fixed
		err   error
	)
	if fixed.QE, err = c.read("qe", c.QE); err != nil {
		return nil, err
	}
	if fixed.Optics, err = c.read("optics", c.Optics); err != nil {
		return nil, err
	}
	if fixed.Telescope, err = c.read("telescope", c.Telescope); err != nil {
		return nil, err
	}
	if fixed.Vega, err = c.read("vega", c.Vega); err != nil {
		return nil, err
	}

	samples := make([]curve.SkySample, 0, len(c.Sky))
	for _, e := range c.Sky {
		trans, err := c.read(fmt.Sprintf("sky transmission at airmass %g", e.Airmass), e.Transmission)
		if err != nil {
			return nil, err
		}
		emis, err := c.read(fmt.Sprintf("sky emission at airmass %g", e.Airmass), e.Emission)
		if err != nil {
			return nil, err
		}
		samples = append(samples, curve.SkySample{Airmass: e.Airmass, Transmission: trans, Emission: emis})
	}
	sky, err := curve.NewSkyModel(samples...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}

	var opts []curve.Option
	for id, p := range c.Filters {
		cv, err := c.read("filter "+id, p)
		if err != nil {
			return nil, err
		}
		opts = append(opts, curve.WithFilter(id, cv))
	}
	for id, g := range c.Grisms {
		cv, err := c.read("grism "+id, g.File)
		if err != nil {
			return nil, err
		}
		opts = append(opts, curve.WithGrism(id, curve.Grism{Resolution: g.Resolution, Dispersive: cv, Filter: g.Filter}))
	}
	for name, p := range c.Models {
		cv, err := c.read("model "+name, p)
		if err != nil {
			return nil, err
		}
		opts = append(opts, curve.WithModel(name, cv))
	}
	for id, m := range c.SkyMagnitudes {
		opts = append(opts, curve.WithSkyMagnitude(id, m))
	}
	if c.DefaultSkyMagnitude != nil {
		opts = append(opts, curve.WithCatchAllSkyMagnitude(*c.DefaultSkyMagnitude))
	}

	store, err := curve.NewStore(fixed, sky, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	return store, nil
}

// Package config loads the calculator's configuration: instrument constants,
// the calibration curve catalog, sky magnitudes, logging, the HTTP address
// and sweep limits.
//
// Values are layered (low to high precedence): defaults, a YAML file named
// by the caller or by ETC_CONFIG, and ETC_* environment variables. Nested
// keys use a double underscore in the environment, e.g.
// ETC_INSTRUMENT__GAIN=4.2 or ETC_LOG__LEVEL=debug.
package config

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/observe/request"
)

// Config is the process configuration.
type Config struct {
	Addr string `koanf:"addr"`
	// CORSOrigins lists the origins allowed by the HTTP API; empty allows all.
	CORSOrigins []string       `koanf:"cors_origins"`
	Log         logging.Config `koanf:"log"`
	Instrument  Instrument     `koanf:"instrument"`
	Catalog     Catalog        `koanf:"catalog"`
	Sweep       Sweep          `koanf:"sweep"`
}

// Instrument holds the detector and telescope constants.
type Instrument struct {
	Gain        float64 `koanf:"gain"`
	ReadNoise   float64 `koanf:"read_noise"`
	DarkCurrent float64 `koanf:"dark_current"`
	WellDepth   float64 `koanf:"well_depth"`
	PlateScale  float64 `koanf:"plate_scale"`
	Area        float64 `koanf:"area"`
}

// Params converts to the engine's instrument type.
func (i Instrument) Params() request.Instrument {
	return request.Instrument{
		Gain:        i.Gain,
		ReadNoise:   i.ReadNoise,
		DarkCurrent: i.DarkCurrent,
		WellDepth:   i.WellDepth,
		PlateScale:  i.PlateScale,
		Area:        i.Area,
	}
}

// Sweep bounds exposure sweeps.
type Sweep struct {
	// Workers evaluating samples in parallel; 0 or 1 is sequential.
	Workers int `koanf:"workers"`
	// Timeout of a whole sweep; 0 disables it.
	Timeout time.Duration `koanf:"timeout"`
}

// New returns the defaults: an 8 m class telescope with a HAWAII-2 type
// detector.
func New() *Config {
	return &Config{
		Addr: ":8080",
		Log:  logging.Config{Level: "info", Format: "text"},
		Instrument: Instrument{
			Gain:        4.0,
			ReadNoise:   10,
			DarkCurrent: 0.05,
			WellDepth:   1.5e5,
			PlateScale:  0.2,
			Area:        73,
		},
		Sweep: Sweep{Workers: 4, Timeout: 30 * time.Second},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Instrument.Params().Validate(); err != nil {
		return fmt.Errorf("%w: instrument: %w", ErrInvalidConfig, err)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("%w: sweep.workers must be >= 0", ErrInvalidConfig)
	}
	if c.Sweep.Timeout < 0 {
		return fmt.Errorf("%w: sweep.timeout must be >= 0", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cwbudde/algo-etc/observe/request"
)

// Environment keys.
const (
	EnvConfig = "ETC_CONFIG"
	EnvPrefix = "ETC_"
)

// Load builds a Config by layering defaults, the YAML file at path (or
// ETC_CONFIG when path is empty) and ETC_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// ETC_INSTRUMENT__READ_NOISE -> instrument.read_noise
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	// Catalog paths in a file are relative to that file.
	if path != "" && !filepath.IsAbs(cfg.Catalog.Dir) {
		cfg.Catalog.Dir = filepath.Join(filepath.Dir(path), cfg.Catalog.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRequest reads an observation request from a YAML file.
func LoadRequest(path string) (request.Request, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return request.Request{}, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	var doc request.Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return request.Request{}, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}
	return doc.Request()
}

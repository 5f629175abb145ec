package curve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrModelFileRefused is returned for model files a loader does not serve.
var ErrModelFileRefused = errors.New("curve: model file refused")

// NoModelFiles is a Loader that refuses every path.
func NoModelFiles(path string) (Curve, error) {
	return Curve{}, fmt.Errorf("%w: %q: model files are disabled", ErrModelFileRefused, path)
}

// DirLoader returns a Loader confined to dir. Paths are taken relative to
// dir; absolute paths and paths leaving dir, through ".." or a symlink, are
// refused.
func DirLoader(dir string) (Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("curve: model directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("curve: model directory %q is not a directory", dir)
	}

	return func(path string) (Curve, error) {
		if !filepath.IsLocal(path) {
			return Curve{}, fmt.Errorf("%w: %q is outside the model directory", ErrModelFileRefused, path)
		}

		root, err := os.OpenRoot(dir)
		if err != nil {
			return Curve{}, fmt.Errorf("curve: model directory: %w", err)
		}
		defer func() { _ = root.Close() }()

		f, err := root.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Curve{}, err
			}
			return Curve{}, fmt.Errorf("%w: %v", ErrModelFileRefused, err)
		}
		defer func() { _ = f.Close() }()

		c, err := Parse(f)
		if err != nil {
			return Curve{}, fmt.Errorf("%s: %w", path, err)
		}
		return c, nil
	}, nil
}

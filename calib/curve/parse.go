package curve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a two-column ASCII table of wavelength (micron) and value.
// Lines starting with '#' are comments; a "# unit: <unit>" comment sets the
// curve unit, which otherwise defaults to UnitNormalPhoton. Extra columns
// are ignored.
func Parse(r io.Reader) (Curve, error) {
	unit := UnitNormalPhoton
	var wl, val []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			body := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			if key, value, ok := strings.Cut(body, ":"); ok && strings.EqualFold(strings.TrimSpace(key), "unit") {
				unit = Unit(strings.TrimSpace(value))
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return Curve{}, fmt.Errorf("curve: line %d: expected 2 columns, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("curve: line %d: invalid wavelength: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("curve: line %d: invalid value: %w", line, err)
		}
		wl = append(wl, x)
		val = append(val, y)
	}
	if err := sc.Err(); err != nil {
		return Curve{}, fmt.Errorf("curve: read: %w", err)
	}

	return New(wl, val, unit)
}

// ReadFile parses the curve file at path.
func ReadFile(path string) (Curve, error) {
	//nolint:gosec // G304: calibration paths come from the operator's configuration.
	f, err := os.Open(path)
	if err != nil {
		return Curve{}, err
	}
	defer func() { _ = f.Close() }()

	c, err := Parse(f)
	if err != nil {
		return Curve{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

package request

import (
	"math"
	"strconv"
	"strings"
)

// Exposure is a single exposure time (Min == Max) or a range to sweep, in
// seconds per frame.
type Exposure struct {
	Min float64
	Max float64
}

// Single returns a scalar exposure of t seconds.
func Single(t float64) Exposure { return Exposure{Min: t, Max: t} }

// Range returns an exposure range from lo to hi seconds.
func Range(lo, hi float64) Exposure { return Exposure{Min: lo, Max: hi} }

// IsRange reports whether the exposure spans more than one time.
func (e Exposure) IsRange() bool { return e.Max != e.Min }

// Validate checks that both ends are positive, finite and ordered.
func (e Exposure) Validate() error {
	if !(e.Min > 0) || math.IsInf(e.Min, 0) {
		return Invalid("exposure time", e.Min, "must be > 0")
	}
	if math.IsInf(e.Max, 0) {
		return Invalid("exposure time", e.Max, "must be finite")
	}
	if !(e.Max >= e.Min) {
		return Invalid("exposure time", e.Max, "range end must not precede its start")
	}
	return nil
}

// ParseExposure reads "30" or "10-100".
func ParseExposure(s string) (Exposure, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) > 2 {
		return Exposure{}, Invalid("exposure time", s, `want "t" or "min-max"`)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Exposure{}, Invalid("exposure time", s, `want "t" or "min-max"`)
		}
		vals[i] = v
	}

	e := Single(vals[0])
	if len(vals) == 2 {
		e = Range(vals[0], vals[1])
	}
	if err := e.Validate(); err != nil {
		return Exposure{}, err
	}
	return e, nil
}

func (e Exposure) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	if e.IsRange() {
		return f(e.Min) + "-" + f(e.Max)
	}
	return f(e.Min)
}

package request

import (
	"strconv"
	"strings"
)

// Template is the closed set of source spectrum variants.
// Implementations: ModelLibrary, ModelFile, BlackBody, EmissionLines.
type Template interface {
	// Name returns a short label for reports.
	Name() string
	validate() error
}

// ModelLibrary selects a stellar template configured in the curve store.
type ModelLibrary struct {
	Model string
}

// ModelFile reads the source spectrum from a user file.
type ModelFile struct {
	Path string
}

// BlackBody is a Planck spectrum at Temperature kelvin.
type BlackBody struct {
	Temperature float64
}

// Line is one Gaussian emission line.
type Line struct {
	Center float64 // micron
	FWHM   float64 // micron
	Flux   float64 // erg/s/cm²
}

// EmissionLines is a sum of Gaussian lines in absolute flux units.
type EmissionLines struct {
	Lines []Line
}

func (ModelLibrary) Name() string  { return "Model library" }
func (ModelFile) Name() string     { return "Model file" }
func (BlackBody) Name() string     { return "Black body" }
func (EmissionLines) Name() string { return "Emission line" }

func (t ModelLibrary) validate() error {
	if t.Model == "" {
		return Invalid("model", nil, "model name is required")
	}
	return nil
}

func (t ModelFile) validate() error {
	if t.Path == "" {
		return Invalid("model file", nil, "path is required")
	}
	return nil
}

func (t BlackBody) validate() error {
	if !(t.Temperature > 0) {
		return Invalid("temperature", t.Temperature, "must be > 0")
	}
	return nil
}

func (t EmissionLines) validate() error {
	if len(t.Lines) == 0 {
		return Invalid("emission lines", nil, "at least one line is required")
	}
	for _, l := range t.Lines {
		if !(l.Center > 0) {
			return Invalid("line center", l.Center, "must be > 0")
		}
		if !(l.FWHM > 0) {
			return Invalid("line FWHM", l.FWHM, "must be > 0")
		}
		if !(l.Flux >= 0) {
			return Invalid("line flux", l.Flux, "must be >= 0")
		}
	}
	return nil
}

// Input units of ParseEmissionLines.
const (
	angstromToMicron = 1e-4
	lineFluxUnit     = 1e-16 // erg/s/cm²
)

// ParseEmissionLines zips comma-separated lists of line centres (micron),
// FWHMs (Å) and integrated fluxes (1e-16 erg/s/cm²) into an EmissionLines
// template. Lists of different lengths are truncated to the shortest one.
func ParseEmissionLines(centers, fwhms, fluxes string) (EmissionLines, error) {
	c, err := parseList("line center", centers)
	if err != nil {
		return EmissionLines{}, err
	}
	w, err := parseList("line FWHM", fwhms)
	if err != nil {
		return EmissionLines{}, err
	}
	f, err := parseList("line flux", fluxes)
	if err != nil {
		return EmissionLines{}, err
	}

	n := min(len(c), len(w), len(f))
	lines := make([]Line, n)
	for i := range lines {
		lines[i] = Line{
			Center: c[i],
			FWHM:   w[i] * angstromToMicron,
			Flux:   f[i] * lineFluxUnit,
		}
	}

	t := EmissionLines{Lines: lines}
	if err := t.validate(); err != nil {
		return EmissionLines{}, err
	}
	return t, nil
}

func parseList(field, s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, Invalid(field, p, "not a number")
		}
		out = append(out, v)
	}
	return out, nil
}

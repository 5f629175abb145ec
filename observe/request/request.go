package request

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-etc/calib/curve"
)

// Operation selects the observing mode.
type Operation int

const (
	Photometry Operation = iota
	Spectroscopy
)

func (o Operation) String() string {
	switch o {
	case Photometry:
		return "Photometry"
	case Spectroscopy:
		return "Spectroscopy"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// ParseOperation maps "photometry"/"spectroscopy" (any case) to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "photometry":
		return Photometry, nil
	case "spectroscopy":
		return Spectroscopy, nil
	default:
		return 0, Invalid("operation", s, "want Photometry or Spectroscopy")
	}
}

// SourceType selects the source geometry.
type SourceType int

const (
	Point SourceType = iota
	Extended
)

func (s SourceType) String() string {
	switch s {
	case Point:
		return "Point"
	case Extended:
		return "Extended"
	default:
		return fmt.Sprintf("SourceType(%d)", int(s))
	}
}

// ParseSourceType maps "point"/"extended" (any case) to a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return Point, nil
	case "extended":
		return Extended, nil
	default:
		return 0, Invalid("source type", s, "want Point or Extended")
	}
}

// Request is one observation to simulate.
type Request struct {
	Operation Operation
	Source    SourceType

	// Magnitude is the Vega magnitude of the source through the band
	// (per arcsec² for extended sources).
	Magnitude float64
	// Seeing is the FWHM of the seeing disk in arcsec.
	Seeing  float64
	Airmass float64

	Exposure     Exposure
	ObjectFrames int
	// SkyFrames of 0 is computed as a single sky frame.
	SkyFrames int

	// Band is the filter id (photometry) or grism id (spectroscopy).
	Band string
	// SlitWidth in arcsec, spectroscopy only.
	SlitWidth float64

	Template Template
	// UnitOverride, when set, replaces the unit declared by the template.
	UnitOverride curve.Unit
}

// Validate checks the fields every stage relies on.
func (r Request) Validate() error {
	switch r.Operation {
	case Photometry, Spectroscopy:
	default:
		return Invalid("operation", int(r.Operation), "unknown operation")
	}
	switch r.Source {
	case Point, Extended:
	default:
		return Invalid("source type", int(r.Source), "unknown source type")
	}
	if math.IsNaN(r.Magnitude) || math.IsInf(r.Magnitude, 0) {
		return Invalid("magnitude", r.Magnitude, "must be finite")
	}
	if !(r.Seeing > 0) || math.IsInf(r.Seeing, 0) {
		return Invalid("seeing", r.Seeing, "must be > 0")
	}
	if !(r.Airmass >= 1) || math.IsInf(r.Airmass, 0) {
		return Invalid("airmass", r.Airmass, "must be >= 1")
	}
	if err := r.Exposure.Validate(); err != nil {
		return err
	}
	if r.ObjectFrames < 1 {
		return Invalid("object frames", r.ObjectFrames, "must be >= 1")
	}
	if r.SkyFrames < 0 {
		return Invalid("sky frames", r.SkyFrames, "must be >= 0")
	}
	if r.Band == "" {
		return Invalid("band", nil, "filter or grism id is required")
	}
	if r.Operation == Spectroscopy && (!(r.SlitWidth > 0) || math.IsInf(r.SlitWidth, 0)) {
		return Invalid("slit width", r.SlitWidth, "must be > 0")
	}
	if r.Template == nil {
		return Invalid("template", nil, "template is required")
	}
	return r.Template.validate()
}

// EffectiveSkyFrames returns the frame count used for the sky noise term.
// A request without sky frames is reduced as well as one with a single one.
func (r Request) EffectiveSkyFrames() int {
	if r.SkyFrames == 0 {
		return 1
	}
	return r.SkyFrames
}

package request

import (
	"strings"

	"github.com/cwbudde/algo-etc/calib/curve"
)

// Template kinds accepted by Document.
const (
	KindModel         = "model"
	KindFile          = "file"
	KindBlackBody     = "blackbody"
	KindEmissionLines = "emission_lines"
)

// TemplateDocument is the wire form of a Template.
type TemplateDocument struct {
	Kind        string  `json:"kind" koanf:"kind"`
	Model       string  `json:"model,omitempty" koanf:"model"`
	Path        string  `json:"path,omitempty" koanf:"path"`
	Temperature float64 `json:"temperature,omitempty" koanf:"temperature"`
	// Comma-separated lists: centres in micron, FWHMs in Å, fluxes in
	// 1e-16 erg/s/cm².
	Centers string `json:"centers,omitempty" koanf:"centers"`
	FWHMs   string `json:"fwhms,omitempty" koanf:"fwhms"`
	Fluxes  string `json:"fluxes,omitempty" koanf:"fluxes"`
}

// Document is the wire form of a Request as read from YAML files and JSON
// bodies. An absent object_frames means one frame; an explicit value is
// passed through to validation.
type Document struct {
	Operation    string           `json:"operation" koanf:"operation"`
	Source       string           `json:"source" koanf:"source"`
	Magnitude    float64          `json:"magnitude" koanf:"magnitude"`
	Seeing       float64          `json:"seeing" koanf:"seeing"`
	Airmass      float64          `json:"airmass" koanf:"airmass"`
	Exposure     string           `json:"exposure" koanf:"exposure"`
	ObjectFrames *int             `json:"object_frames,omitempty" koanf:"object_frames"`
	SkyFrames    int              `json:"sky_frames" koanf:"sky_frames"`
	Band         string           `json:"band" koanf:"band"`
	SlitWidth    float64          `json:"slit_width,omitempty" koanf:"slit_width"`
	Template     TemplateDocument `json:"template" koanf:"template"`
	Unit         string           `json:"unit,omitempty" koanf:"unit"`
}

// Request converts and validates the document.
func (d Document) Request() (Request, error) {
	op, err := ParseOperation(d.Operation)
	if err != nil {
		return Request{}, err
	}
	src, err := ParseSourceType(d.Source)
	if err != nil {
		return Request{}, err
	}
	exp, err := ParseExposure(d.Exposure)
	if err != nil {
		return Request{}, err
	}
	tpl, err := d.Template.Template()
	if err != nil {
		return Request{}, err
	}

	frames := 1
	if d.ObjectFrames != nil {
		frames = *d.ObjectFrames
	}

	r := Request{
		Operation:    op,
		Source:       src,
		Magnitude:    d.Magnitude,
		Seeing:       d.Seeing,
		Airmass:      d.Airmass,
		Exposure:     exp,
		ObjectFrames: frames,
		SkyFrames:    d.SkyFrames,
		Band:         d.Band,
		SlitWidth:    d.SlitWidth,
		Template:     tpl,
		UnitOverride: curve.Unit(d.Unit),
	}
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Template converts the document into a Template variant.
func (t TemplateDocument) Template() (Template, error) {
	switch strings.ToLower(strings.TrimSpace(t.Kind)) {
	case KindModel:
		return ModelLibrary{Model: t.Model}, nil
	case KindFile:
		return ModelFile{Path: t.Path}, nil
	case KindBlackBody:
		return BlackBody{Temperature: t.Temperature}, nil
	case KindEmissionLines:
		return ParseEmissionLines(t.Centers, t.FWHMs, t.Fluxes)
	default:
		return nil, Invalid("template kind", t.Kind, "want model, file, blackbody or emission_lines")
	}
}

package request

import (
	"errors"
	"math"
	"testing"
)

func validRequest() Request {
	return Request{
		Operation:    Photometry,
		Source:       Point,
		Magnitude:    18,
		Seeing:       0.8,
		Airmass:      1.2,
		Exposure:     Single(30),
		ObjectFrames: 1,
		Band:         "J",
		Template:     BlackBody{Temperature: 5800},
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"ok", func(*Request) {}, ""},
		{"seeing", func(r *Request) { r.Seeing = 0 }, "seeing"},
		{"airmass", func(r *Request) { r.Airmass = 0.9 }, "airmass"},
		{"seeing NaN", func(r *Request) { r.Seeing = math.NaN() }, "seeing"},
		{"seeing Inf", func(r *Request) { r.Seeing = math.Inf(1) }, "seeing"},
		{"airmass NaN", func(r *Request) { r.Airmass = math.NaN() }, "airmass"},
		{"airmass Inf", func(r *Request) { r.Airmass = math.Inf(1) }, "airmass"},
		{"magnitude NaN", func(r *Request) { r.Magnitude = math.NaN() }, "magnitude"},
		{"exposure NaN", func(r *Request) { r.Exposure = Single(math.NaN()) }, "exposure time"},
		{"exposure end NaN", func(r *Request) { r.Exposure = Range(10, math.NaN()) }, "exposure time"},
		{"slit NaN", func(r *Request) {
			r.Operation = Spectroscopy
			r.SlitWidth = math.NaN()
		}, "slit width"},
		{"exposure", func(r *Request) { r.Exposure = Single(-1) }, "exposure time"},
		{"object frames", func(r *Request) { r.ObjectFrames = 0 }, "object frames"},
		{"sky frames", func(r *Request) { r.SkyFrames = -1 }, "sky frames"},
		{"band", func(r *Request) { r.Band = "" }, "band"},
		{"template", func(r *Request) { r.Template = nil }, "template"},
		{"temperature", func(r *Request) { r.Template = BlackBody{} }, "temperature"},
		{"temperature NaN", func(r *Request) { r.Template = BlackBody{Temperature: math.NaN()} }, "temperature"},
		{"slit", func(r *Request) { r.Operation = Spectroscopy }, "slit width"},
		{"operation", func(r *Request) { r.Operation = Operation(7) }, "operation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			err := r.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("want InvalidParameterError, got %v", err)
			}
			if ipe.Field != tt.field {
				t.Fatalf("field = %q, want %q", ipe.Field, tt.field)
			}
		})
	}
}

func TestEffectiveSkyFrames(t *testing.T) {
	r := validRequest()
	if got := r.EffectiveSkyFrames(); got != 1 {
		t.Fatalf("SkyFrames 0: got %d, want 1", got)
	}
	r.SkyFrames = 4
	if got := r.EffectiveSkyFrames(); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestParseOperationAndSource(t *testing.T) {
	if op, err := ParseOperation(" spectroscopy "); err != nil || op != Spectroscopy {
		t.Fatalf("ParseOperation: %v %v", op, err)
	}
	if _, err := ParseOperation("imaging"); err == nil {
		t.Fatal("expected error")
	}
	if st, err := ParseSourceType("Extended"); err != nil || st != Extended {
		t.Fatalf("ParseSourceType: %v %v", st, err)
	}
	if _, err := ParseSourceType("galaxy"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseExposure(t *testing.T) {
	tests := []struct {
		in      string
		want    Exposure
		wantErr bool
	}{
		{"30", Single(30), false},
		{"10-100", Range(10, 100), false},
		{" 5 - 6 ", Range(5, 6), false},
		{"100-10", Exposure{}, true},
		{"0", Exposure{}, true},
		{"1-2-3", Exposure{}, true},
		{"abc", Exposure{}, true},
		{"NaN", Exposure{}, true},
		{"Inf", Exposure{}, true},
		{"10-Inf", Exposure{}, true},
		{"", Exposure{}, true},
	}
	for _, tt := range tests {
		got, err := ParseExposure(tt.in)
		if tt.wantErr {
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Errorf("%q: want InvalidParameterError, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if Single(30).IsRange() || !Range(10, 100).IsRange() {
		t.Fatal("IsRange mismatch")
	}
	if s := Range(10, 100).String(); s != "10-100" {
		t.Fatalf("String = %q", s)
	}
}

func TestParseEmissionLines(t *testing.T) {
	tpl, err := ParseEmissionLines("1.0, 1.2", "10,20,30", "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(tpl.Lines) != 1 {
		t.Fatalf("got %d lines, want 1 (shortest list)", len(tpl.Lines))
	}
	l := tpl.Lines[0]
	if l.Center != 1.0 {
		t.Fatalf("center = %v", l.Center)
	}
	if math.Abs(l.FWHM-1e-3) > 1e-15 {
		t.Fatalf("FWHM = %v, want 1e-3 micron", l.FWHM)
	}
	if math.Abs(l.Flux-1e-16) > 1e-30 {
		t.Fatalf("flux = %v, want 1e-16", l.Flux)
	}

	for _, bad := range [][3]string{
		{"1.0,x", "10,10", "1,1"},
		{"1.0", "", "1"},
		{"1.0", "-5", "1"},
	} {
		_, err := ParseEmissionLines(bad[0], bad[1], bad[2])
		var ipe *InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Errorf("%v: want InvalidParameterError, got %v", bad, err)
		}
	}
}

func TestInstrumentValidate(t *testing.T) {
	ok := Instrument{Gain: 4, ReadNoise: 12, DarkCurrent: 0.1, WellDepth: 1.5e5, PlateScale: 0.2, Area: 73}
	if err := ok.Validate(); err != nil {
		t.Fatal(err)
	}
	for field, mutate := range map[string]func(*Instrument){
		"plate scale":  func(in *Instrument) { in.PlateScale = 0 },
		"gain":         func(in *Instrument) { in.Gain = math.NaN() },
		"dark current": func(in *Instrument) { in.DarkCurrent = math.NaN() },
		"well depth":   func(in *Instrument) { in.WellDepth = math.NaN() },
	} {
		bad := ok
		mutate(&bad)
		var ipe *InvalidParameterError
		if err := bad.Validate(); !errors.As(err, &ipe) || ipe.Field != field {
			t.Errorf("%s: got %v", field, err)
		}
	}
}

func TestInvalidParameterErrorMessage(t *testing.T) {
	err := Invalid("slit width", 0.0, "must be > 0")
	if got, want := err.Error(), "invalid slit width 0: must be > 0"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	err = Invalid("band", nil, "required")
	if got, want := err.Error(), "invalid band: required"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

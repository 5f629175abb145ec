package throughput

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/testutil"
)

func flat(t *testing.T, v float64) curve.Curve {
	t.Helper()
	c, err := curve.New([]float64{0.5, 3.0}, []float64{v, v}, curve.UnitTransmission)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newStore(t *testing.T) *curve.Store {
	t.Helper()
	sky, err := curve.NewSkyModel(curve.SkySample{Airmass: 1, Transmission: flat(t, 1), Emission: flat(t, 1)})
	if err != nil {
		t.Fatal(err)
	}
	s, err := curve.NewStore(curve.Fixed{
		QE: flat(t, 0.8), Optics: flat(t, 0.5), Telescope: flat(t, 0.9), Vega: flat(t, 1),
	}, sky,
		curve.WithFilter("J", flat(t, 0.7)),
		curve.WithFilter("OS", flat(t, 0.9)),
		curve.WithGrism("G1", curve.Grism{Resolution: 500, Dispersive: flat(t, 0.5), Filter: "OS"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPhotometry(t *testing.T) {
	s := newStore(t)
	g, _ := curve.UniformGrid(1, 0.1, 5)

	tp, err := Photometry(s, "J", g)
	if err != nil {
		t.Fatal(err)
	}
	want := testutil.DC(0.9*0.5*0.8*0.7, 5)
	testutil.RequireSliceNearlyEqual(t, tp.End, want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, tp.Passband, want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, tp.Filter, testutil.DC(0.7, 5), 1e-12)
	if tp.Dispersive != nil || tp.Resolution != 0 {
		t.Fatal("photometry must not carry dispersive data")
	}
}

func TestSpectroscopy(t *testing.T) {
	s := newStore(t)
	g, _ := curve.UniformGrid(1, 0.1, 5)

	tp, err := Spectroscopy(s, "G1", g)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, tp.Dispersive, testutil.DC(0.9*0.5, 5), 1e-12)
	testutil.RequireSliceNearlyEqual(t, tp.End, testutil.DC(0.9*0.5*0.9*0.5*0.8, 5), 1e-12)
	testutil.RequireSliceNearlyEqual(t, tp.Passband, testutil.DC(0.9, 5), 1e-12)
	testutil.RequireSliceNearlyEqual(t, tp.Filter, testutil.DC(0.9, 5), 1e-12)
	if tp.Resolution != 500 {
		t.Fatalf("resolution = %v", tp.Resolution)
	}
}

func TestMissingBand(t *testing.T) {
	s := newStore(t)
	g, _ := curve.UniformGrid(1, 0.1, 5)

	var mce *curve.MissingCurveError
	if _, err := Photometry(s, "K", g); !errors.As(err, &mce) || mce.Kind != curve.KindFilter {
		t.Fatalf("Photometry: got %v", err)
	}
	if _, err := Spectroscopy(s, "G9", g); !errors.As(err, &mce) || mce.Kind != curve.KindGrism {
		t.Fatalf("Spectroscopy: got %v", err)
	}
}

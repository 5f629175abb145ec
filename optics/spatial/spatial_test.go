package spatial

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/internal/testutil"
	"github.com/cwbudde/algo-etc/observe/request"
)

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

func TestProfile1D(t *testing.T) {
	p := Profile1D(4, 1000)
	if len(p) != Size {
		t.Fatalf("len = %d", len(p))
	}
	testutil.RequireRelativelyEqual(t, "sum", sum(p), 1000, 1e-12)
	if _, idx := numeric.Max(p); idx != Center {
		t.Fatalf("peak at %d", idx)
	}
	// Bins two pixels off centre sit at half maximum for FWHM 4.
	testutil.RequireRelativelyEqual(t, "half max", p[Center+2]/p[Center], 0.5, 1e-12)
	testutil.RequireRelativelyEqual(t, "symmetry", p[Center-7], p[Center+7], 1e-12)
}

func TestProfile2D(t *testing.T) {
	p := Profile2D(4, 5e4)
	if len(p) != Size*Size {
		t.Fatalf("len = %d", len(p))
	}
	testutil.RequireRelativelyEqual(t, "sum", sum(p), 5e4, 1e-12)
	if _, idx := numeric.Max(p); idx != Center*Size+Center {
		t.Fatalf("peak at %d", idx)
	}
	testutil.RequireRelativelyEqual(t, "half max", p[(Center+2)*Size+Center]/p[Center*Size+Center], 0.5, 1e-12)
	testutil.RequireRelativelyEqual(t, "circular", p[(Center+3)*Size+Center], p[Center*Size+Center-3], 1e-12)
}

func TestProfileDegenerate(t *testing.T) {
	p := Profile2D(0, 7)
	if p[Center*Size+Center] != 7 || sum(p) != 7 {
		t.Fatal("zero FWHM must put all flux in the centre bin")
	}
	if q := Profile1D(-1, 3); q[Center] != 3 {
		t.Fatal("negative FWHM must put all flux in the centre bin")
	}
}

func TestMasks(t *testing.T) {
	tests := []struct {
		r      float64
		want1D int
		want2D int
	}{
		{0, 1, 1},
		{1, 3, 5},
		{1.5, 3, 9},
		{2.4, 5, 21},
	}
	for _, tt := range tests {
		if got := len(Mask1D(tt.r)); got != tt.want1D {
			t.Errorf("Mask1D(%v) = %d bins, want %d", tt.r, got, tt.want1D)
		}
		if got := len(Mask2D(tt.r)); got != tt.want2D {
			t.Errorf("Mask2D(%v) = %d bins, want %d", tt.r, got, tt.want2D)
		}
	}
	if n := len(Mask2D(1000)); n != Size*Size {
		t.Fatalf("huge radius selects %d bins", n)
	}
}

func TestApertureRadius(t *testing.T) {
	phot := ApertureRadius(request.Photometry, 0.8, 0.2)
	spec := ApertureRadius(request.Spectroscopy, 0.8, 0.2)
	if math.Abs(phot-2.4) > 1e-12 || math.Abs(spec-4.8) > 1e-12 {
		t.Fatalf("radii %v %v", phot, spec)
	}
}

func TestModels(t *testing.T) {
	m := New(request.Point, 0.8, 0.2)
	if _, ok := m.(Point); !ok {
		t.Fatalf("got %T", m)
	}
	if n := len(m.Bins(request.Photometry, 1)); n != Size*Size {
		t.Fatalf("photometry bins = %d", n)
	}
	if n := len(m.Bins(request.Spectroscopy, 1)); n != Size {
		t.Fatalf("spectroscopy bins = %d", n)
	}
	if got := len(m.Aperture(request.Photometry)); got != len(Mask2D(2.4)) {
		t.Fatalf("photometry aperture = %d bins", got)
	}
	if got := len(m.Aperture(request.Spectroscopy)); got != len(Mask1D(4.8)) {
		t.Fatalf("spectroscopy aperture = %d bins", got)
	}

	e := New(request.Extended, 0.8, 0.2)
	if b := e.Bins(request.Photometry, 42); len(b) != 1 || b[0] != 42 {
		t.Fatalf("extended bins = %v", b)
	}
	if a := e.Aperture(request.Spectroscopy); len(a) != 1 || a[0] != 0 {
		t.Fatalf("extended aperture = %v", a)
	}
}

package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-etc/internal/testutil"
)

func TestInterpolateOntoNativeGridIsIdentity(t *testing.T) {
	g, err := UniformGrid(1.0, 1e-3, 501)
	if err != nil {
		t.Fatalf("UniformGrid: %v", err)
	}
	values := make([]float64, g.Len())
	for i := range values {
		values[i] = 0.5 + 0.4*math.Sin(float64(i)/13)
	}

	c, err := New(g.Lambda(), values, UnitTransmission)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, c.Interpolate(g), values, 0)
}

func TestInterpolateClampsAtEdges(t *testing.T) {
	c, err := New([]float64{1.2, 1.3}, []float64{0.2, 0.6}, UnitTransmission)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := NewGrid([]float64{1.0, 1.2, 1.25, 1.3, 1.5})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	got := Interpolate(c, g)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.2, 0.2, 0.4, 0.6, 0.6}, 1e-12)
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		wl   []float64
		val  []float64
		want error
	}{
		{name: "empty", want: ErrEmptyCurve},
		{name: "length", wl: []float64{1, 2}, val: []float64{1}, want: ErrLengthMismatch},
		{name: "order", wl: []float64{2, 1}, val: []float64{1, 1}, want: ErrNotIncreasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.wl, tt.val, UnitTransmission); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCurveIsImmutable(t *testing.T) {
	wl := []float64{1, 2}
	val := []float64{3, 4}
	c, err := New(wl, val, UnitPhotonFlux)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wl[0], val[0] = 0, 0
	c.Values()[1] = 100

	if got := c.Values(); got[0] != 3 || got[1] != 4 {
		t.Fatalf("curve mutated: %v", got)
	}
	if lo, hi := c.Range(); lo != 1 || hi != 2 {
		t.Fatalf("Range = %v, %v", lo, hi)
	}
	if c.WithUnit(UnitNormalPhoton).Unit() != UnitNormalPhoton || c.Unit() != UnitPhotonFlux {
		t.Fatal("WithUnit must not change the receiver")
	}
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Len() != 100001 {
		t.Fatalf("Len = %d, want 100001", g.Len())
	}
	if math.Abs(g.At(0)-0.8) > 1e-12 || math.Abs(g.At(g.Len()-1)-2.8) > 1e-9 {
		t.Fatalf("range = %v..%v", g.At(0), g.At(g.Len()-1))
	}
	if math.Abs(g.Step()-2e-5) > 1e-15 {
		t.Fatalf("Step = %v", g.Step())
	}
	if _, err := NewGrid([]float64{1, 1}); !errors.Is(err, ErrNotIncreasing) {
		t.Fatalf("expected ErrNotIncreasing, got %v", err)
	}
}

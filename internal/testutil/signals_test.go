package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3)
	for i, v := range x {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}
	if out := Impulse(4, 9); out[0]+out[1]+out[2]+out[3] != 0 {
		t.Fatalf("out-of-range impulse not empty: %v", out)
	}
}

func TestTopHat(t *testing.T) {
	x := Ramp(0, 0.5, 7) // 0 .. 3
	got := TopHat(x, 1, 2, 0.8)
	want := []float64{0, 0, 0.8, 0.8, 0.8, 0, 0}
	RequireSliceNearlyEqual(t, got, want, 0)
}

func TestGaussianHalfMaximum(t *testing.T) {
	g := Gaussian([]float64{-1, 0, 1}, 0, 2)
	if g[1] != 1 {
		t.Fatalf("peak = %v, want 1", g[1])
	}
	if math.Abs(g[0]-0.5) > 1e-12 || math.Abs(g[2]-0.5) > 1e-12 {
		t.Fatalf("half maximum = %v, %v, want 0.5", g[0], g[2])
	}
}

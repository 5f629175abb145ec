package numeric

import (
	"math"
	"testing"
)

func TestMedianNonZero(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "all zero", in: []float64{0, 0, 0}, want: 0},
		{name: "empty", in: nil, want: 0},
		{name: "odd", in: []float64{0, 3, 0, 1, 2}, want: 2},
		{name: "even", in: []float64{4, 0, 1, 0, 3, 2}, want: 2.5},
		{name: "single line", in: []float64{0, 0, 7, 0}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MedianNonZero(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	v, i := Max([]float64{1, 5, 3, 5})
	if v != 5 || i != 1 {
		t.Errorf("Max = (%v, %d), want (5, 1)", v, i)
	}
	if _, i := Max(nil); i != -1 {
		t.Errorf("Max(nil) index = %d, want -1", i)
	}
}

func TestPow10Mag(t *testing.T) {
	if got := Pow10Mag(5); math.Abs(got-0.01) > 1e-15 {
		t.Errorf("Pow10Mag(5) = %v, want 0.01", got)
	}
	if got := Pow10Mag(0); got != 1 {
		t.Errorf("Pow10Mag(0) = %v, want 1", got)
	}
}

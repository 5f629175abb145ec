package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-etc/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"simple 3x3", []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{1, 3, 6, 5, 3}},
		{"impulse", []float64{1, 2, 3, 4, 5}, []float64{1}, []float64{1, 2, 3, 4, 5}},
		{"delayed impulse", []float64{1, 2, 3, 4, 5}, []float64{0, 0, 1}, []float64{0, 0, 1, 2, 3, 4, 5}},
		{"symmetric", []float64{1, 2, 1}, []float64{1, 2, 1}, []float64{1, 4, 6, 4, 1}},
		{"vectorised kernel", []float64{1, 0, 2}, []float64{1, 1, 1, 1, 1}, []float64{1, 1, 3, 3, 3, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, direct(tt.a, tt.b), tt.want, 1e-10)
		})
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 3000)
	// Zero a run longer than a block so empty blocks are skipped.
	for i := 1000; i < 2000; i++ {
		signal[i] = 0
	}
	kernel := testutil.DeterministicNoise(11, 1, 301)

	got, err := overlapAdd(signal, kernel)
	if err != nil {
		t.Fatalf("overlapAdd: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, direct(signal, kernel), 1e-9)
}

func TestConvolveSameKernelLongerThanSignal(t *testing.T) {
	got, err := ConvolveSame([]float64{0, 1, 0}, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	// Full result is [0 1 2 3 4 5 0]; the centred window starts at 2.
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 3, 4}, 1e-12)
}

func TestConvolveSameKeepsCentroid(t *testing.T) {
	for _, kernelLen := range []int{9, 201} {
		kernel := make([]float64, kernelLen)
		half := kernelLen / 2
		sum := 0.0
		for i := range kernel {
			x := float64(i - half)
			kernel[i] = math.Exp(-x * x / (2 * float64(half*half) / 9))
			sum += kernel[i]
		}
		for i := range kernel {
			kernel[i] /= sum
		}

		signal := testutil.Impulse(1000, 400)
		got, err := ConvolveSame(signal, kernel)
		if err != nil {
			t.Fatalf("ConvolveSame: %v", err)
		}
		if len(got) != len(signal) {
			t.Fatalf("len = %d, want %d", len(got), len(signal))
		}

		peak, pos := 0.0, -1
		total := 0.0
		for i, v := range got {
			total += v
			if v > peak {
				peak, pos = v, i
			}
		}
		if pos != 400 {
			t.Errorf("kernel %d: peak at %d, want 400", kernelLen, pos)
		}
		if math.Abs(total-1) > 1e-9 {
			t.Errorf("kernel %d: flux not conserved, total %v", kernelLen, total)
		}
	}
}

func TestConvolveSameErrors(t *testing.T) {
	if _, err := ConvolveSame(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := ConvolveSame([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

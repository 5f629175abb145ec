package curve

import "fmt"

// Default grid covers 0.8–2.8 micron in 2e-5 micron (0.2 Å) steps.
const (
	DefaultGridStart = 0.8
	DefaultGridStep  = 2e-5
	DefaultGridLen   = 100001
)

// Grid is the dense, strictly increasing wavelength axis (micron) that every
// curve and spectrum of a run is aligned to.
type Grid struct {
	lambda []float64
}

// NewGrid validates and copies lambda into a Grid.
func NewGrid(lambda []float64) (Grid, error) {
	if len(lambda) < 2 {
		return Grid{}, fmt.Errorf("%w: grid needs at least 2 points, got %d", ErrEmptyCurve, len(lambda))
	}
	for i := 1; i < len(lambda); i++ {
		if !(lambda[i] > lambda[i-1]) {
			return Grid{}, fmt.Errorf("%w: grid index %d", ErrNotIncreasing, i)
		}
	}
	return Grid{lambda: append([]float64(nil), lambda...)}, nil
}

// UniformGrid builds n points start, start+step, ... step must be > 0.
func UniformGrid(start, step float64, n int) (Grid, error) {
	if step <= 0 {
		return Grid{}, fmt.Errorf("%w: step %v", ErrNotIncreasing, step)
	}
	lambda := make([]float64, n)
	for i := range lambda {
		lambda[i] = start + float64(i)*step
	}
	return NewGrid(lambda)
}

// DefaultGrid returns the instrument's 100001-point grid from 0.8 to 2.8 micron.
func DefaultGrid() Grid {
	g, err := UniformGrid(DefaultGridStart, DefaultGridStep, DefaultGridLen)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of grid points.
func (g Grid) Len() int { return len(g.lambda) }

// At returns the i-th wavelength.
func (g Grid) At(i int) float64 { return g.lambda[i] }

// Step returns the spacing of the first two points, the integration element
// of a uniform grid.
func (g Grid) Step() float64 {
	if len(g.lambda) < 2 {
		return 0
	}
	return g.lambda[1] - g.lambda[0]
}

// Lambda returns the grid wavelengths. The slice is shared and must not be
// modified.
func (g Grid) Lambda() []float64 { return g.lambda }

// Package throughput composes the end-to-end transmission of the optical
// train onto the wavelength grid.
//
// The system response is telescope × optics × detector QE. Photometry
// multiplies it with a filter; spectroscopy multiplies it with the grism
// efficiency and its order-sorting filter. Each composite also carries the
// passband used to normalize sources to a Vega magnitude and the bare
// filter curve.
package throughput

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/calib/curve"
)

// Throughput is a composite response aligned to a grid.
type Throughput struct {
	// End is the end-to-end throughput from the top of the atmosphere to
	// detected electrons.
	End []float64
	// Passband is the response through which magnitudes are defined.
	Passband []float64
	// Filter is the filter curve alone. Broadband fluxes are integrated
	// through it once a source is normalized.
	Filter []float64
	// Dispersive is filter × grism efficiency; nil for photometry.
	Dispersive []float64
	// Resolution is the grism's nominal resolving power; 0 for photometry.
	Resolution float64
}

// System returns telescope × optics × QE on g.
func System(store *curve.Store, g curve.Grid) []float64 {
	fixed := store.Fixed()
	sys := fixed.Telescope.Interpolate(g)
	vecmath.MulBlockInPlace(sys, fixed.Optics.Interpolate(g))
	vecmath.MulBlockInPlace(sys, fixed.QE.Interpolate(g))
	return sys
}

// Photometry composes the imaging throughput through filter id.
func Photometry(store *curve.Store, id string, g curve.Grid) (Throughput, error) {
	fc, err := store.Filter(id)
	if err != nil {
		return Throughput{}, fmt.Errorf("throughput: %w", err)
	}

	filter := fc.Interpolate(g)
	end := make([]float64, g.Len())
	vecmath.MulBlock(end, filter, System(store, g))

	return Throughput{End: end, Passband: end, Filter: filter}, nil
}

// Spectroscopy composes the spectroscopic throughput of grism id. The
// passband is the grism's order-sorting filter alone.
func Spectroscopy(store *curve.Store, grism string, g curve.Grid) (Throughput, error) {
	gr, err := store.Grism(grism)
	if err != nil {
		return Throughput{}, fmt.Errorf("throughput: %w", err)
	}
	fc, err := store.Filter(gr.Filter)
	if err != nil {
		return Throughput{}, fmt.Errorf("throughput: grism %q: %w", grism, err)
	}

	filter := fc.Interpolate(g)
	disp := make([]float64, g.Len())
	vecmath.MulBlock(disp, filter, gr.Dispersive.Interpolate(g))

	end := make([]float64, g.Len())
	vecmath.MulBlock(end, disp, System(store, g))

	return Throughput{
		End:        end,
		Passband:   filter,
		Filter:     filter,
		Dispersive: disp,
		Resolution: gr.Resolution,
	}, nil
}

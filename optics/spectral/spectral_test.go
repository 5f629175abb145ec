package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/internal/testutil"
	"github.com/cwbudde/algo-etc/observe/request"
)

func testGrid(t testing.TB) curve.Grid {
	t.Helper()
	g, err := curve.UniformGrid(0.8, 2e-5, 20001) // 0.8 .. 1.2 micron
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGeometry(t *testing.T) {
	g := testGrid(t)
	disp := testutil.TopHat(g.Lambda(), 0.95, 1.05, 0.4)

	geom, err := NewGeometry(g, disp, 1000, 0.6, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(geom.Central-1.0) > 1e-4 {
		t.Fatalf("central = %v, want 1.0", geom.Central)
	}
	testutil.RequireRelativelyEqual(t, "dispersion", geom.Dispersion, geom.Central/3000, 1e-12)
	testutil.RequireRelativelyEqual(t, "resolution element", geom.ResolutionElement, geom.Dispersion*3, 1e-12)
	testutil.RequireRelativelyEqual(t, "resolving power", geom.ResolvingPower, 1000, 1e-9)

	px := geom.Pixels()
	if len(px) != NumPixels {
		t.Fatalf("pixels = %d", len(px))
	}
	if px[CenterPixel] != geom.Central {
		t.Fatalf("pixel %d = %v, want central", CenterPixel, px[CenterPixel])
	}
	lo, hi := geom.Coverage()
	if lo != px[0] || math.Abs(hi-px[NumPixels-1]) > 1e-12 {
		t.Fatalf("coverage %v..%v, pixels %v..%v", lo, hi, px[0], px[NumPixels-1])
	}
}

func TestNewGeometryErrors(t *testing.T) {
	g := testGrid(t)
	disp := testutil.Ones(g.Len())

	tests := []struct {
		name      string
		disp      []float64
		r, w, p   float64
		wantField string
	}{
		{"resolution", disp, 0, 1, 0.2, "resolution"},
		{"slit", disp, 1000, 0, 0.2, "slit width"},
		{"scale", disp, 1000, 1, -1, "plate scale"},
		{"zero throughput", make([]float64, g.Len()), 1000, 1, 0.2, "dispersive throughput"},
		{"length", disp[:10], 1000, 1, 0.2, "dispersive throughput"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(g, tt.disp, tt.r, tt.w, tt.p)
			var ipe *request.InvalidParameterError
			if !errors.As(err, &ipe) || ipe.Field != tt.wantField {
				t.Fatalf("got %v, want InvalidParameterError on %q", err, tt.wantField)
			}
		})
	}
}

func TestSlitFraction(t *testing.T) {
	testutil.RequireRelativelyEqual(t, "w = FWHM", SlitFraction(0.8, 0.8), math.Erf(fwhmToSigma/(2*math.Sqrt2)), 1e-12)
	if f := SlitFraction(0.8, 10); f < 0.999999 {
		t.Fatalf("wide slit fraction = %v", f)
	}
	if f := SlitFraction(0.8, 0.4); !(f > 0 && f < SlitFraction(0.8, 0.8)) {
		t.Fatalf("narrow slit fraction = %v", f)
	}
}

func TestGaussianKernel(t *testing.T) {
	const step = 1.0
	k := GaussianKernel(10, step)
	if len(k)%2 != 1 {
		t.Fatalf("kernel length %d is even", len(k))
	}
	sum := 0.0
	for _, v := range k {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("sum = %v", sum)
	}
	half := len(k) / 2
	if want := int(math.Ceil(4 * 10 / fwhmToSigma)); half != want {
		t.Fatalf("half width = %d, want %d", half, want)
	}
	// Samples 5 steps off centre lie on the half maximum.
	testutil.RequireRelativelyEqual(t, "half max", k[half+5]/k[half], 0.5, 1e-12)

	if k := GaussianKernel(0, step); len(k) != 1 || k[0] != 1 {
		t.Fatalf("zero FWHM kernel = %v", k)
	}
}

func TestResolveFlatSpectrum(t *testing.T) {
	g := testGrid(t)
	disp := testutil.TopHat(g.Lambda(), 0.9, 1.1, 1)

	in := Input{
		Grid:       g,
		Object:     testutil.DC(5, g.Len()),
		Sky:        testutil.DC(2, g.Len()),
		Dispersive: disp,
		Resolution: 800,
		SlitWidth:  0.5,
		PlateScale: 0.25,
	}
	out, err := Resolve(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Object) != NumPixels || len(out.Sky) != NumPixels {
		t.Fatal("output length mismatch")
	}
	d := out.Geometry.Dispersion
	// Away from the grid ends a flat density integrates to density × dispersion.
	testutil.RequireRelativelyEqual(t, "object", out.Object[CenterPixel], 5*d, 1e-9)
	testutil.RequireRelativelyEqual(t, "sky", out.Sky[CenterPixel], 2*d, 1e-9)
	testutil.RequireFinite(t, out.Object)
}

func TestResolveLinePosition(t *testing.T) {
	g := testGrid(t)
	disp := testutil.TopHat(g.Lambda(), 0.9, 1.1, 1)
	line := testutil.Gaussian(g.Lambda(), 1.01, 1e-3)

	out, err := Resolve(Input{
		Grid: g, Object: line, Sky: make([]float64, g.Len()), Dispersive: disp,
		Resolution: 1500, SlitWidth: 0.4, PlateScale: 0.2,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, idx := numeric.Max(out.Object)
	if got := out.PixelWavelengths[idx]; math.Abs(got-1.01) > out.Geometry.ResolutionElement {
		t.Fatalf("line peak at %v, want 1.01 ± %v", got, out.Geometry.ResolutionElement)
	}
}

func TestResolveInputLength(t *testing.T) {
	g := testGrid(t)
	_, err := Resolve(Input{
		Grid: g, Object: []float64{1}, Sky: []float64{1}, Dispersive: testutil.Ones(g.Len()),
		Resolution: 1000, SlitWidth: 1, PlateScale: 0.2,
	})
	var ipe *request.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("got %v", err)
	}
}

func TestNormalizedSpectrum(t *testing.T) {
	g := testGrid(t)
	geom := Geometry{Central: 1.0, Dispersion: 1e-4, ResolutionElement: 3e-4, ResolvingPower: 3333}

	v := testutil.Gaussian(g.Lambda(), 1.0, 5e-3)
	out, err := NormalizedSpectrum(g, v, geom)
	if err != nil {
		t.Fatal(err)
	}
	peak, idx := numeric.Max(out)
	if math.Abs(peak-1) > 1e-12 {
		t.Fatalf("peak = %v", peak)
	}
	if idx < CenterPixel-2 || idx > CenterPixel+2 {
		t.Fatalf("peak at pixel %d", idx)
	}

	zero, err := NormalizedSpectrum(g, make([]float64, g.Len()), geom)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, zero, make([]float64, NumPixels), 0)
}

package pipeline

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/detector/aperture"
	"github.com/cwbudde/algo-etc/detector/noise"
	"github.com/cwbudde/algo-etc/internal/numeric"
	"github.com/cwbudde/algo-etc/observe/request"
	"github.com/cwbudde/algo-etc/optics/spatial"
	"github.com/cwbudde/algo-etc/optics/spectral"
	"github.com/cwbudde/algo-etc/optics/throughput"
	"github.com/cwbudde/algo-etc/source/sed"
)

// Plan is a prepared request. Rates are per second of exposure.
type Plan struct {
	req   request.Request
	inst  request.Instrument
	model spatial.Model
	noise noise.Model
	mask  []int

	// Emission-line spectra are summarized by their peak rather than
	// the median over the continuum.
	peakSummary bool

	// photometry: total object electrons/s, sky electrons/s/pixel
	objRate float64
	skyRate float64

	// spectroscopy: electrons/s per spectral pixel
	objPixels []float64
	skyPixels []float64
	spectral  *Spectral
}

// Prepare validates req and inst and computes everything that does not
// depend on the exposure time.
func Prepare(req request.Request, store *curve.Store, inst request.Instrument, g curve.Grid) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	var (
		tp  throughput.Throughput
		err error
	)
	if req.Operation == request.Spectroscopy {
		tp, err = throughput.Spectroscopy(store, req.Band, g)
	} else {
		tp, err = throughput.Photometry(store, req.Band, g)
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	skyTrans, skyEmis := store.Sky().At(req.Airmass, g)
	vega := store.Fixed().Vega.Interpolate(g)

	src, err := sed.Build(req, store, g)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	obj, err := sed.Normalize(src, req.Magnitude, vega, tp.Passband)
	if err != nil {
		return nil, fmt.Errorf("pipeline: object: %w", err)
	}
	skyMag, err := store.SkyMagnitude(req.Band)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	sky, err := sed.Sky(skyEmis, skyMag, vega, tp.Passband)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	_, lines := req.Template.(request.EmissionLines)
	p := &Plan{
		req:   req,
		inst:  inst,
		model: spatial.New(req.Source, req.Seeing, inst.PlateScale),
		noise: noise.Model{
			ReadNoise:    inst.ReadNoise,
			DarkCurrent:  inst.DarkCurrent,
			ObjectFrames: req.ObjectFrames,
			SkyFrames:    req.EffectiveSkyFrames(),
		},
		peakSummary: lines,
	}
	p.mask = p.model.Aperture(req.Operation)

	if req.Operation == request.Spectroscopy {
		err = p.prepareSpectroscopy(g, tp, obj.Values, sky.Values, skyTrans)
	} else {
		p.preparePhotometry(g, tp, obj.Values, sky.Values, skyTrans)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plan) pixelArea() float64 { return p.inst.PlateScale * p.inst.PlateScale }

// preparePhotometry integrates the normalized spectra through the filter.
// The system response already entered through the normalization passband.
func (p *Plan) preparePhotometry(g curve.Grid, tp throughput.Throughput, obj, sky, skyTrans []float64) {
	n := g.Len()
	perBin := p.inst.Area * g.Step()

	objFilter := make([]float64, n)
	vecmath.MulBlock(objFilter, tp.Filter, skyTrans)
	p.objRate = perBin * vecmath.DotProduct(obj, objFilter)
	p.skyRate = perBin * vecmath.DotProduct(sky, tp.Filter) * p.pixelArea()
}

func (p *Plan) prepareSpectroscopy(g curve.Grid, tp throughput.Throughput, obj, sky, skyTrans []float64) error {
	geom, err := spectral.NewGeometry(g, tp.Dispersive, tp.Resolution, p.req.SlitWidth, p.inst.PlateScale)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	slit := spectral.SlitFraction(p.req.Seeing, p.req.SlitWidth)
	n := g.Len()

	objDensity := make([]float64, n)
	vecmath.MulBlock(objDensity, obj, tp.End)
	vecmath.MulBlockInPlace(objDensity, skyTrans)
	vecmath.ScaleBlockInPlace(objDensity, slit*p.inst.Area)

	skyDensity := make([]float64, n)
	vecmath.MulBlock(skyDensity, sky, tp.End)
	vecmath.ScaleBlockInPlace(skyDensity, p.inst.Area)

	out, err := spectral.ResolveWith(geom, spectral.Input{
		Grid:       g,
		Object:     objDensity,
		Sky:        skyDensity,
		Dispersive: tp.Dispersive,
		Resolution: tp.Resolution,
		SlitWidth:  p.req.SlitWidth,
		PlateScale: p.inst.PlateScale,
	})
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if p.req.Source == request.Extended {
		vecmath.ScaleBlockInPlace(out.Object, p.pixelArea())
	}
	vecmath.ScaleBlockInPlace(out.Sky, p.pixelArea())
	p.objPixels = out.Object
	p.skyPixels = out.Sky

	src := make([]float64, n)
	vecmath.ScaleBlock(src, obj, slit)
	norm, err := spectral.NormalizedSpectrum(g, src, geom)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	lo, hi := geom.Coverage()
	p.spectral = &Spectral{
		CentralWavelength:  geom.Central,
		Dispersion:         geom.Dispersion,
		ResolutionElement:  geom.ResolutionElement,
		ResolvingPower:     geom.ResolvingPower,
		SlitFraction:       slit,
		CoverageMin:        lo,
		CoverageMax:        hi,
		PixelWavelengths:   out.PixelWavelengths,
		NormalizedSpectrum: norm,
	}
	return nil
}

// Request returns the request the plan was prepared for.
func (p *Plan) Request() request.Request { return p.req }

// Spectral returns the spectral diagnostics, nil for photometry.
func (p *Plan) Spectral() *Spectral { return p.spectral }

// Evaluate computes the result of one frame of t seconds.
func (p *Plan) Evaluate(t float64) (Result, error) {
	if !(t > 0) || math.IsInf(t, 0) {
		return Result{}, request.Invalid("exposure time", t, "must be > 0")
	}

	res := Result{
		ExposureTime:  t,
		TotalTime:     t * float64(p.req.ObjectFrames),
		EffectiveGain: p.inst.Gain * float64(p.req.ObjectFrames),
	}
	if p.req.Operation == request.Spectroscopy {
		p.evaluateSpectroscopy(t, &res)
	} else {
		p.evaluatePhotometry(t, &res)
	}
	return res, nil
}

// bins spreads flux over the spatial model and adds a uniform sky level. It
// returns object-plus-sky and sky-only bins.
func (p *Plan) bins(flux, sky float64) (obj, skyBins []float64) {
	obj = p.model.Bins(p.req.Operation, flux)
	skyBins = make([]float64, len(obj))
	for i := range obj {
		obj[i] += sky
		skyBins[i] = sky
	}
	return obj, skyBins
}

func (p *Plan) evaluatePhotometry(t float64, res *Result) {
	flux := t * p.objRate
	if p.req.Source == request.Extended {
		flux *= p.pixelArea()
	}
	obj, sky := p.bins(flux, t*p.skyRate)

	snr, signal, skySignal := aperture.Aggregate(obj, sky, p.noise.Total(obj, sky, t), p.mask)
	res.SNR = snr
	res.ObjectSignal = signal / p.inst.Gain
	res.SkySignal = skySignal / p.inst.Gain
	res.Saturated = aperture.Saturated(aperture.Select(obj, p.mask), p.inst.WellDepth)
}

func (p *Plan) evaluateSpectroscopy(t float64, res *Result) {
	n := len(p.objPixels)
	res.PixelSNR = make([]float64, n)
	res.PixelObject = make([]float64, n)
	res.PixelSky = make([]float64, n)
	res.Spectral = p.spectral

	for i := range n {
		flux, skyFlux := t*p.objPixels[i], t*p.skyPixels[i]
		obj, sky := p.bins(flux, skyFlux)
		snr, _, _ := aperture.Aggregate(obj, sky, p.noise.Total(obj, sky, t), p.mask)

		// Counts are per spectral pixel, not summed over the aperture.
		res.PixelSNR[i] = snr
		res.PixelObject[i] = flux / p.inst.Gain
		res.PixelSky[i] = skyFlux / p.inst.Gain
		if !res.Saturated {
			res.Saturated = aperture.Saturated(aperture.Select(obj, p.mask), p.inst.WellDepth)
		}
	}

	if p.peakSummary {
		res.SNR, _ = numeric.Max(res.PixelSNR)
		res.ObjectSignal, _ = numeric.Max(res.PixelObject)
	} else {
		res.SNR = numeric.MedianNonZero(res.PixelSNR)
		res.ObjectSignal = numeric.MedianNonZero(res.PixelObject)
	}
	res.SkySignal = numeric.MedianNonZero(res.PixelSky)
}

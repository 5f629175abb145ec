package pipeline

// Result is the outcome of one exposure time. Counts are in ADU.
type Result struct {
	ExposureTime  float64 `json:"exposure_time"`
	TotalTime     float64 `json:"total_time"`
	EffectiveGain float64 `json:"effective_gain"`

	SNR          float64 `json:"snr"`
	ObjectSignal float64 `json:"object_signal"`
	SkySignal    float64 `json:"sky_signal"`
	Saturated    bool    `json:"saturated"`

	// Per spectral pixel, spectroscopy only.
	PixelSNR    []float64 `json:"pixel_snr,omitempty"`
	PixelObject []float64 `json:"pixel_object,omitempty"`
	PixelSky    []float64 `json:"pixel_sky,omitempty"`

	Spectral *Spectral `json:"spectral,omitempty"`
}

// Spectral holds exposure-independent diagnostics of a spectroscopic run.
// It is shared by all results of a plan and must not be modified.
type Spectral struct {
	CentralWavelength float64 `json:"central_wavelength"`
	Dispersion        float64 `json:"dispersion"`
	ResolutionElement float64 `json:"resolution_element"`
	ResolvingPower    float64 `json:"resolving_power"`
	SlitFraction      float64 `json:"slit_fraction"`
	CoverageMin       float64 `json:"coverage_min"`
	CoverageMax       float64 `json:"coverage_max"`

	PixelWavelengths   []float64 `json:"pixel_wavelengths"`
	NormalizedSpectrum []float64 `json:"normalized_spectrum"`
}

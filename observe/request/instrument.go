package request

// Instrument holds the detector and telescope constants of a run.
type Instrument struct {
	Gain        float64 // e-/ADU
	ReadNoise   float64 // e- rms per read
	DarkCurrent float64 // e-/s/pixel
	WellDepth   float64 // e-
	PlateScale  float64 // arcsec/pixel
	Area        float64 // collecting area, m²
}

// Validate checks that the constants are physical.
func (in Instrument) Validate() error {
	switch {
	case !(in.Gain > 0):
		return Invalid("gain", in.Gain, "must be > 0")
	case !(in.ReadNoise >= 0):
		return Invalid("read noise", in.ReadNoise, "must be >= 0")
	case !(in.DarkCurrent >= 0):
		return Invalid("dark current", in.DarkCurrent, "must be >= 0")
	case !(in.WellDepth > 0):
		return Invalid("well depth", in.WellDepth, "must be > 0")
	case !(in.PlateScale > 0):
		return Invalid("plate scale", in.PlateScale, "must be > 0")
	case !(in.Area > 0):
		return Invalid("collecting area", in.Area, "must be > 0")
	}
	return nil
}

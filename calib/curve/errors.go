package curve

import "fmt"

// Kinds of calibration references reported by MissingCurveError.
const (
	KindFilter       = "filter"
	KindGrism        = "grism"
	KindModel        = "model"
	KindModelFile    = "model file"
	KindSkyMagnitude = "sky magnitude"
)

// MissingCurveError reports a filter, grism, template or sky magnitude that is
// not configured in the Store.
type MissingCurveError struct {
	Kind string
	ID   string
	Err  error
}

func (e *MissingCurveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curve: %s %q not configured: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("curve: %s %q not configured", e.Kind, e.ID)
}

func (e *MissingCurveError) Unwrap() error { return e.Err }

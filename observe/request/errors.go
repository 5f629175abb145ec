package request

import "fmt"

// InvalidParameterError reports a request or instrument field whose value
// cannot be used, such as a non-positive exposure time or slit width.
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Invalid is a shorthand constructor for InvalidParameterError.
func Invalid(field string, value any, reason string) error {
	return &InvalidParameterError{Field: field, Value: value, Reason: reason}
}

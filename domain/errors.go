package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter matches every InvalidParameterError via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError identifies the input that was rejected and why.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// IsInvalidParameter returns true if err is, or wraps, an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// AsInvalidParameter extracts the InvalidParameterError from err, if any.
func AsInvalidParameter(err error) (*InvalidParameterError, bool) {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		return ipe, true
	}
	return nil, false
}

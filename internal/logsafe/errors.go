package logsafe

import (
	"errors"
	"fmt"
)

// Input validation errors. Limit classification reuses these as well.
var (
	// ErrInvalidEpsilon indicates an epsilon that is not a finite positive number.
	ErrInvalidEpsilon = errors.New("logsafe: epsilon must be finite and > 0")

	// ErrShapeMismatch indicates arrays of unequal length or an error
	// error table with neither 1 nor 2 rows.
	ErrShapeMismatch = errors.New("logsafe: shape mismatch")

	// ErrNegativeError indicates an error magnitude below zero.
	ErrNegativeError = errors.New("logsafe: negative error value")

	// ErrNonFinite indicates a NaN or Inf where a finite value is required.
	ErrNonFinite = errors.New("logsafe: NaN or Inf value")
)

// ValueError wraps an error with the offending position.
type ValueError struct {
	Field   string
	Index   int
	Value   float64
	Wrapped error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s[%d]=%g: %v", e.Field, e.Index, e.Value, e.Wrapped)
}

func (e *ValueError) Unwrap() error {
	return e.Wrapped
}

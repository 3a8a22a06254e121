package logsafe

import "math"

// Positive returns a if a > 0 and 0 otherwise. Both zeros map to +0.
func Positive(a float64) float64 {
	if a > 0 {
		return a
	}
	return 0
}

// PositiveAll applies Positive elementwise and returns a new slice.
func PositiveAll(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = Positive(v)
	}
	return out
}

// ValidateEpsilon reports ErrInvalidEpsilon unless eps is finite and positive.
func ValidateEpsilon(eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 1) {
		return ErrInvalidEpsilon
	}
	return nil
}

// CheckFinite returns a *ValueError for the first NaN or Inf in values.
func CheckFinite(field string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValueError{Field: field, Index: i, Value: v, Wrapped: ErrNonFinite}
		}
	}
	return nil
}

// CheckNonNegative returns a *ValueError for the first negative entry in values.
func CheckNonNegative(field string, values []float64) error {
	for i, v := range values {
		if v < 0 {
			return &ValueError{Field: field, Index: i, Value: v, Wrapped: ErrNegativeError}
		}
	}
	return nil
}

package logsafe

import (
	"fmt"
	"math"
)

// ErrorBars holds per-point downward and upward error magnitudes.
// A symmetric error shares the same values on both sides.
type ErrorBars struct {
	Down []float64
	Up   []float64
}

// Symmetric builds ErrorBars with the same error on both sides.
func Symmetric(err []float64) ErrorBars {
	return ErrorBars{Down: err, Up: err}
}

// Asymmetric builds ErrorBars from separate down and up errors.
func Asymmetric(down, up []float64) ErrorBars {
	return ErrorBars{Down: down, Up: up}
}

// FromRows interprets a 1xN (symmetric) or 2xN ([down, up]) error table.
func FromRows(rows [][]float64) (ErrorBars, error) {
	switch len(rows) {
	case 1:
		return Symmetric(rows[0]), nil
	case 2:
		if len(rows[0]) != len(rows[1]) {
			return ErrorBars{}, fmt.Errorf("%w: error rows have lengths %d and %d",
				ErrShapeMismatch, len(rows[0]), len(rows[1]))
		}
		return Asymmetric(rows[0], rows[1]), nil
	default:
		return ErrorBars{}, fmt.Errorf("%w: error table has %d rows, want 1 or 2",
			ErrShapeMismatch, len(rows))
	}
}

// Len returns the number of points covered by the error bars.
func (e ErrorBars) Len() int {
	return len(e.Down)
}

func (e ErrorBars) validate(n int) error {
	if len(e.Down) != n || len(e.Up) != n {
		return fmt.Errorf("%w: %d data points, %d down errors, %d up errors",
			ErrShapeMismatch, n, len(e.Down), len(e.Up))
	}
	for _, side := range []struct {
		name   string
		values []float64
	}{{"err_down", e.Down}, {"err_up", e.Up}} {
		if err := CheckFinite(side.name, side.values); err != nil {
			return err
		}
		if err := CheckNonNegative(side.name, side.values); err != nil {
			return err
		}
	}
	return nil
}

// Range is a log-safe center value with asymmetric error widths.
// Center-Low and Center+High are strictly positive.
type Range struct {
	Center []float64
	Low    []float64
	High   []float64
}

// Len returns the number of points.
func (r *Range) Len() int {
	return len(r.Center)
}

// Bounds returns the lower bound, center and upper bound of point i.
func (r *Range) Bounds(i int) (lo, mid, hi float64) {
	mid = r.Center[i]
	return mid - r.Low[i], mid, mid + r.High[i]
}

// Compute returns a Range whose lower bound, center and upper bound are
// floored at eps, 2*eps and 3*eps. Errors are widened by eps before the
// bounds are taken. data and errs are left untouched.
func Compute(data []float64, errs ErrorBars, eps float64) (*Range, error) {
	if err := ValidateEpsilon(eps); err != nil {
		return nil, err
	}
	if err := CheckFinite("data", data); err != nil {
		return nil, err
	}
	if err := errs.validate(len(data)); err != nil {
		return nil, err
	}

	n := len(data)
	rng := &Range{
		Center: make([]float64, n),
		Low:    make([]float64, n),
		High:   make([]float64, n),
	}

	for i, d := range data {
		dn := errs.Down[i] + eps
		up := errs.Up[i] + eps

		lo := Positive(d-dn-eps) + eps
		mid := Positive(d-2*eps) + 2*eps
		hi := Positive(d+up-3*eps) + 3*eps

		rng.Center[i] = mid
		rng.Low[i] = mid - lo
		rng.High[i] = hi - mid
	}

	return rng, nil
}

// resolutionULPs is how many units in the last place epsilon must span for
// the lo < mid < hi ladder to survive rounding.
const resolutionULPs = 16

// Unresolved returns the indices of data whose magnitude is too large for
// eps to separate the lower bound, center and upper bound in float64.
// Those points still get non-negative widths, but lo, mid and hi may
// collapse onto the same value.
func Unresolved(data []float64, eps float64) []int {
	var idx []int
	for i, d := range data {
		a := math.Abs(d)
		ulp := math.Nextafter(a, math.Inf(1)) - a
		if eps < resolutionULPs*ulp {
			idx = append(idx, i)
		}
	}
	return idx
}

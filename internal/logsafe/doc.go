// Package logsafe keeps values and error bars strictly positive so they can
// be drawn on a logarithmic axis.
//
//   - [Positive]: positive part of a scalar
//   - [ErrorBars]: symmetric or asymmetric per-point errors
//   - [Compute]: log-safe center value and asymmetric error widths
//
// # Epsilon Ladder
//
// Compute floors the lower bound, the center and the upper bound at 1, 2
// and 3 multiples of epsilon respectively, so the three stay ordered
// (lo < mid < hi) even when every one of them hits the floor:
//
//	rng, err := logsafe.Compute(data, logsafe.Symmetric(errs), 1e-3)
//	if err != nil {
//	    return err
//	}
//	lo, mid, hi := rng.Bounds(0)
//
// Inputs are never modified; Compute works on its own copies.
package logsafe

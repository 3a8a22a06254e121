// Package limits decides which points of a series are measurements and which
// are upper limits, and computes the arrow geometry for the limits.
//
// A point is a limit when sigma*err > y: the value cannot be told apart from
// zero at the requested significance. Limits are drawn as a downward arrow
// from y + sigma*err with a short horizontal cap, while the original point
// and its error bar are pushed to the epsilon floor.
//
//	res, err := limits.Classify(xs, ys, errs, limits.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	for _, a := range res.Arrows() {
//	    // hand a to a renderer
//	}
package limits

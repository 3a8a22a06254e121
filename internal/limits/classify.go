package limits

import (
	"fmt"

	"github.com/san-kum/logplot/internal/logsafe"
)

// Kind tells whether a point is drawn as a measurement or as an upper limit.
type Kind int

const (
	Measurement Kind = iota
	Limit
)

func (k Kind) String() string {
	switch k {
	case Measurement:
		return "measurement"
	case Limit:
		return "limit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "measurement":
		*k = Measurement
	case "limit":
		*k = Limit
	default:
		return fmt.Errorf("limits: unknown kind %q", text)
	}
	return nil
}

// Segment is a straight line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Arrow is a downward upper-limit marker anchored at (X, Y).
// The tip sits at (X, Y-Length).
type Arrow struct {
	Index      int     `json:"index"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Length     float64 `json:"length"`
	HeadWidth  float64 `json:"head_width"`
	HeadLength float64 `json:"head_length"`
	Cap        Segment `json:"cap"`
}

// Tip returns the end point of the shaft.
func (a Arrow) Tip() (x, y float64) {
	return a.X, a.Y - a.Length
}

// Point is one classified sample. Y and Err are what a renderer draws as
// the error-bar series; for a limit both are the epsilon floor.
type Point struct {
	Index      int     `json:"index"`
	Kind       Kind    `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Err        float64 `json:"err"`
	UpperLimit float64 `json:"upper_limit"`
	Arrow      *Arrow  `json:"arrow,omitempty"`
}

// Result holds the classified points in input order.
type Result struct {
	Options Options `json:"options"`
	Points  []Point `json:"points"`
}

// Classify splits the series into measurements and upper limits.
//
// Point i is a limit when ferrs[i]*sigma > fs[i]; equality stays a
// measurement. Both comparisons use the caller's fs, and none of the input
// slices are modified. Errors must be non-negative. An upper limit below epsilon (a negative value with
// a small error) is raised to epsilon so the arrow stays on a log axis.
func Classify(xs, fs, ferrs []float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(fs) != len(xs) || len(ferrs) != len(xs) {
		return nil, fmt.Errorf("%w: %d xs, %d values, %d errors",
			logsafe.ErrShapeMismatch, len(xs), len(fs), len(ferrs))
	}
	for _, in := range []struct {
		name   string
		values []float64
	}{{"x", xs}, {"y", fs}, {"err", ferrs}} {
		if err := logsafe.CheckFinite(in.name, in.values); err != nil {
			return nil, err
		}
	}
	if err := logsafe.CheckNonNegative("err", ferrs); err != nil {
		return nil, err
	}

	res := &Result{
		Options: opts,
		Points:  make([]Point, len(xs)),
	}
	for i := range xs {
		res.Points[i] = classifyPoint(i, xs[i], fs[i], ferrs[i], opts)
	}
	return res, nil
}

func classifyPoint(i int, x, f, ferr float64, opts Options) Point {
	spread := ferr * opts.Sigma
	if spread <= f {
		return Point{
			Index:      i,
			Kind:       Measurement,
			X:          x,
			Y:          f,
			Err:        ferr,
			UpperLimit: opts.Epsilon,
		}
	}

	ul := f + spread
	if ul < opts.Epsilon {
		ul = opts.Epsilon
	}
	arrow := newArrow(i, x, ul, opts)
	return Point{
		Index:      i,
		Kind:       Limit,
		X:          x,
		Y:          opts.Epsilon,
		Err:        opts.Epsilon,
		UpperLimit: ul,
		Arrow:      &arrow,
	}
}

func newArrow(i int, x, ul float64, opts Options) Arrow {
	dy := ul * opts.ArrowLength
	half := 0.5 * opts.HeadWidth
	return Arrow{
		Index:      i,
		X:          x,
		Y:          ul,
		Length:     dy,
		HeadWidth:  x * opts.HeadWidth,
		HeadLength: dy * opts.HeadWidth,
		Cap: Segment{
			X0: x * (1 - half), Y0: ul,
			X1: x * (1 + half), Y1: ul,
		},
	}
}

// Len returns the number of points.
func (r *Result) Len() int {
	return len(r.Points)
}

// Limits returns how many points were turned into upper limits.
func (r *Result) Limits() int {
	n := 0
	for _, p := range r.Points {
		if p.Kind == Limit {
			n++
		}
	}
	return n
}

func (r *Result) Xs() []float64 {
	return r.column(func(p Point) float64 { return p.X })
}

func (r *Result) Ys() []float64 {
	return r.column(func(p Point) float64 { return p.Y })
}

func (r *Result) Errs() []float64 {
	return r.column(func(p Point) float64 { return p.Err })
}

// UpperLimits returns the per-point upper limits, epsilon for measurements.
func (r *Result) UpperLimits() []float64 {
	return r.column(func(p Point) float64 { return p.UpperLimit })
}

// Arrows returns the arrows of all limit points in index order.
func (r *Result) Arrows() []Arrow {
	arrows := make([]Arrow, 0, r.Limits())
	for _, p := range r.Points {
		if p.Arrow != nil {
			arrows = append(arrows, *p.Arrow)
		}
	}
	return arrows
}

func (r *Result) column(get func(Point) float64) []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = get(p)
	}
	return out
}

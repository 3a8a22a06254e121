package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/logplot/internal/limits"
	"github.com/san-kum/logplot/internal/logsafe"
)

// Style identifies the color group of a drawn series.
type Style struct {
	Series int
	Color  lipgloss.Color
}

// Series is an error-bar series. Low and High are error widths below and
// above Y.
type Series struct {
	X    []float64
	Y    []float64
	Low  []float64
	High []float64
}

// Renderer accepts drawing primitives. Implementations are not safe for
// concurrent use.
type Renderer interface {
	ErrorBars(s Series) Style
	Arrow(a limits.Arrow, st Style)
	Line(seg limits.Segment, st Style)
}

// DrawLimits draws the error-bar series of res, then an arrow and a cap
// for every upper limit in the series' style.
func DrawLimits(r Renderer, res *limits.Result) Style {
	errs := res.Errs()
	st := r.ErrorBars(Series{X: res.Xs(), Y: res.Ys(), Low: errs, High: errs})
	for _, a := range res.Arrows() {
		r.Arrow(a, st)
		r.Line(a.Cap, st)
	}
	return st
}

// DrawRange draws a log-safe range as asymmetric error bars at xs.
func DrawRange(r Renderer, xs []float64, rng *logsafe.Range) (Style, error) {
	if len(xs) != rng.Len() {
		return Style{}, fmt.Errorf("%w: %d xs for %d range points",
			logsafe.ErrShapeMismatch, len(xs), rng.Len())
	}
	return r.ErrorBars(Series{X: xs, Y: rng.Center, Low: rng.Low, High: rng.High}), nil
}

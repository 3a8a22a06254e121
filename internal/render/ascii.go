package render

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/logplot/internal/limits"
)

var asciiColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Orange,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// ASCII plots log10(y) against point index in the terminal. Each error-bar
// series becomes one line and its upper limits a second line in the same
// color. Caps have no terminal representation and are ignored.
//
// Points are widened by repetition rather than interpolated so gaps
// (measurements on one line, limits on the other) stay gaps.
type ASCII struct {
	Width, Height int
	Floor         float64
	Caption       string
	Theme         Theme

	values [][]float64
	limits map[int][]float64
}

func NewASCII(width, height int, theme Theme) *ASCII {
	return &ASCII{
		Width:  width,
		Height: height,
		Theme:  theme,
		limits: make(map[int][]float64),
	}
}

func (p *ASCII) logValue(y float64) float64 {
	if y <= p.Floor || y <= 0 {
		return math.NaN()
	}
	return math.Log10(y)
}

func (p *ASCII) ErrorBars(s Series) Style {
	st := p.Theme.StyleFor(len(p.values))
	row := make([]float64, len(s.Y))
	for i, y := range s.Y {
		row[i] = p.logValue(y)
	}
	p.values = append(p.values, row)
	return st
}

func (p *ASCII) Arrow(a limits.Arrow, st Style) {
	if st.Series >= len(p.values) {
		return
	}
	if p.limits == nil {
		p.limits = make(map[int][]float64)
	}
	lims, ok := p.limits[st.Series]
	if !ok {
		lims = nanSlice(len(p.values[st.Series]))
		p.limits[st.Series] = lims
	}
	if a.Index < len(lims) {
		lims[a.Index] = p.logValue(a.Y)
	}
}

func (p *ASCII) Line(limits.Segment, Style) {}

// String returns the plot, or "" when no series has a drawable value.
func (p *ASCII) String() string {
	var data [][]float64
	var colors []asciigraph.AnsiColor
	for i, row := range p.values {
		color := asciiColors[i%len(asciiColors)]
		if hasFinite(row) {
			data = append(data, p.stretch(row))
			colors = append(colors, color)
		}
		if lims, ok := p.limits[i]; ok && hasFinite(lims) {
			data = append(data, p.stretch(lims))
			colors = append(colors, color)
		}
	}
	if len(data) == 0 {
		return ""
	}

	caption := "log10(y) by point"
	if p.Caption != "" {
		caption = p.Caption
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(p.Height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)
}

func (p *ASCII) stretch(row []float64) []float64 {
	if len(row) == 0 {
		return row
	}
	factor := p.Width / len(row)
	if factor <= 1 {
		return row
	}
	out := make([]float64, 0, len(row)*factor)
	for _, v := range row {
		for k := 0; k < factor; k++ {
			out = append(out, v)
		}
	}
	return out
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

func hasFinite(s []float64) bool {
	for _, v := range s {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}

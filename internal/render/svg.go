package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/logplot/internal/limits"
)

type svgBar struct {
	x, y, lo, hi float64
	color        string
}

type svgArrow struct {
	a     limits.Arrow
	color string
}

type svgLine struct {
	seg   limits.Segment
	color string
}

// SVG renders primitives onto log-log axes. Values at or below Floor are
// not drawn, which keeps epsilon-floored points off the plot.
type SVG struct {
	Width, Height int
	Floor         float64
	Theme         Theme

	series int
	bars   []svgBar
	arrows []svgArrow
	lines  []svgLine
}

func NewSVG(width, height int, theme Theme) *SVG {
	return &SVG{Width: width, Height: height, Theme: theme}
}

func (s *SVG) ErrorBars(series Series) Style {
	st := s.Theme.StyleFor(s.series)
	s.series++
	for i := range series.X {
		s.bars = append(s.bars, svgBar{
			x:     series.X[i],
			y:     series.Y[i],
			lo:    series.Y[i] - series.Low[i],
			hi:    series.Y[i] + series.High[i],
			color: string(st.Color),
		})
	}
	return st
}

func (s *SVG) Arrow(a limits.Arrow, st Style) {
	s.arrows = append(s.arrows, svgArrow{a: a, color: string(st.Color)})
}

func (s *SVG) Line(seg limits.Segment, st Style) {
	s.lines = append(s.lines, svgLine{seg: seg, color: string(st.Color)})
}

// logBounds tracks the extent of the drawable data in log10 space.
type logBounds struct {
	minX, maxX, minY, maxY float64
}

func newLogBounds() logBounds {
	return logBounds{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
}

func (b *logBounds) add(x, y float64) {
	lx, ly := math.Log10(x), math.Log10(y)
	b.minX = math.Min(b.minX, lx)
	b.maxX = math.Max(b.maxX, lx)
	b.minY = math.Min(b.minY, ly)
	b.maxY = math.Max(b.maxY, ly)
}

func (b logBounds) empty() bool {
	return math.IsInf(b.minX, 1)
}

// pad widens the bounds by 10% of their range on each side.
func (b *logBounds) pad() {
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
}

func (s *SVG) drawable(x, y float64) bool {
	return x > 0 && y > s.Floor && y > 0
}

func (s *SVG) bounds() logBounds {
	b := newLogBounds()
	for _, bar := range s.bars {
		if !s.drawable(bar.x, bar.y) {
			continue
		}
		b.add(bar.x, bar.y)
		if s.drawable(bar.x, bar.lo) {
			b.add(bar.x, bar.lo)
		}
		b.add(bar.x, bar.hi)
	}
	for _, ar := range s.arrows {
		if !s.drawable(ar.a.X, ar.a.Y) {
			continue
		}
		if s.drawable(ar.a.Cap.X0, ar.a.Y) && s.drawable(ar.a.Cap.X1, ar.a.Y) {
			b.add(ar.a.Cap.X0, ar.a.Y)
			b.add(ar.a.Cap.X1, ar.a.Y)
		}
		if x, y := ar.a.Tip(); s.drawable(x, y) {
			b.add(x, y)
		}
	}
	b.pad()
	return b
}

// String returns the SVG document, or "" when nothing is drawable.
func (s *SVG) String() string {
	b := s.bounds()
	if b.empty() {
		return ""
	}

	w, h := float64(s.Width), float64(s.Height)
	px := func(x float64) float64 {
		return (math.Log10(x) - b.minX) / (b.maxX - b.minX) * w
	}
	py := func(y float64) float64 {
		if y <= 0 {
			return h
		}
		return h - (math.Log10(y)-b.minY)/(b.maxY-b.minY)*h
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, s.Theme.Background))

	for _, bar := range s.bars {
		if !s.drawable(bar.x, bar.y) {
			continue
		}
		x := px(bar.x)
		lo := h
		if s.drawable(bar.x, bar.lo) {
			lo = py(bar.lo)
		}
		sb.WriteString(fmt.Sprintf(`<line class="errorbar" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
`, x, lo, x, py(bar.hi), bar.color))
		sb.WriteString(fmt.Sprintf(`<rect class="marker" x="%.1f" y="%.1f" width="6" height="6" fill="%s"/>
`, x-3, py(bar.y)-3, bar.color))
	}

	for _, ar := range s.arrows {
		a := ar.a
		if !s.drawable(a.X, a.Y) {
			continue
		}
		tipX, tipY := a.Tip()
		baseY := tipY + a.HeadLength
		half := a.HeadWidth / 2
		sb.WriteString(fmt.Sprintf(`<line class="arrow" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
`, px(a.X), py(a.Y), px(tipX), py(baseY), ar.color))
		if tipX-half <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<polygon class="arrowhead" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, px(tipX-half), py(baseY), px(tipX+half), py(baseY), px(tipX), py(tipY), ar.color))
	}

	for _, ln := range s.lines {
		if !s.drawable(ln.seg.X0, ln.seg.Y0) || !s.drawable(ln.seg.X1, ln.seg.Y1) {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<line class="cap" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
`, px(ln.seg.X0), py(ln.seg.Y0), px(ln.seg.X1), py(ln.seg.Y1), ln.color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

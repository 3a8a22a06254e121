// Package render draws classified series through a pluggable [Renderer].
//
// The numeric decisions live in the logsafe and limits packages; this
// package only turns their output into drawing calls:
//
//   - [DrawLimits]: error bars for a classified series plus arrows and caps
//   - [DrawRange]: asymmetric error bars for a log-safe range
//   - [SVG]: log-log SVG document
//   - [ASCII]: terminal plot of log10(y) built on asciigraph
//
// # Styles
//
// Every ErrorBars call returns a [Style] taken from the renderer's theme
// palette, cycling like a plotting backend's color cycle. Arrows and caps
// are drawn with the style of the series they belong to.
package render

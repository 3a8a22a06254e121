package limits

import (
	"errors"
	"math"

	"github.com/san-kum/logplot/internal/logsafe"
)

const (
	DefaultSigma       = 2.0
	DefaultEpsilon     = 1e-15
	DefaultHeadWidth   = 0.1
	DefaultArrowLength = 0.35

	// MaxHeadWidth is the exclusive upper bound on HeadWidth.
	MaxHeadWidth = 2.0
)

var (
	// ErrInvalidSigma indicates a significance multiplier that is not > 0.
	ErrInvalidSigma = errors.New("limits: sigma must be finite and > 0")

	// ErrInvalidGeometry indicates a head width or arrow length that is not > 0,
	// or a head width of MaxHeadWidth or more.
	ErrInvalidGeometry = errors.New("limits: arrow geometry ratios must be finite and > 0")
)

// Options controls classification and arrow geometry.
type Options struct {
	// Sigma is the significance multiplier applied to the error.
	Sigma float64 `json:"sigma"`
	// Epsilon is the floor used for suppressed values and as the
	// "not a limit" upper-limit sentinel.
	Epsilon float64 `json:"epsilon"`
	// HeadWidth sizes the arrow head relative to x (width) and to the
	// shaft (length). It also sets the cap width.
	HeadWidth float64 `json:"head_width"`
	// ArrowLength is the shaft length relative to the upper limit.
	ArrowLength float64 `json:"arrow_length"`
}

func DefaultOptions() Options {
	return Options{
		Sigma:       DefaultSigma,
		Epsilon:     DefaultEpsilon,
		HeadWidth:   DefaultHeadWidth,
		ArrowLength: DefaultArrowLength,
	}
}

// Validate checks the options before any classification is done.
func (o Options) Validate() error {
	if err := logsafe.ValidateEpsilon(o.Epsilon); err != nil {
		return err
	}
	if !positiveFinite(o.Sigma) {
		return ErrInvalidSigma
	}
	if !positiveFinite(o.HeadWidth) || !positiveFinite(o.ArrowLength) {
		return ErrInvalidGeometry
	}
	// the cap and arrow head span x*(1 +- HeadWidth/2) and must stay at x > 0
	if o.HeadWidth >= MaxHeadWidth {
		return ErrInvalidGeometry
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

package transform

import (
	"fmt"

	"github.com/lucidwave/somnisig/algorithms/common"
	"github.com/lucidwave/somnisig/algorithms/stats"
)

// Method selects the per-window reduction applied by MovingTransform.
type Method int

const (
	// Mean is the arithmetic mean of the window.
	Mean Method = iota

	// Min is the smallest value in the window.
	Min

	// Max is the largest value in the window.
	Max

	// PtP is the peak-to-peak amplitude (max - min) of the window.
	PtP

	// PropAboveZero is the proportion of window samples >= 0.
	PropAboveZero

	// RMS is the root-mean-square of the window.
	RMS

	// Slope is the least-squares regression slope of the window against a
	// local time axis 0, 1/sf, 2/sf, ... (units per second).
	Slope

	// Covar is the sample covariance between the two buffers' matching
	// windows. Requires a second buffer.
	Covar

	// Corr is the Pearson correlation between the two buffers' matching
	// windows. Requires a second buffer.
	Corr
)

func (m Method) String() string {
	switch m {
	case Mean:
		return "mean"
	case Min:
		return "min"
	case Max:
		return "max"
	case PtP:
		return "ptp"
	case PropAboveZero:
		return "prop_above_zero"
	case RMS:
		return "rms"
	case Slope:
		return "slope"
	case Covar:
		return "covar"
	case Corr:
		return "corr"
	default:
		return "unknown"
	}
}

// RequiresSecond reports whether the method reduces two signals at once.
func (m Method) RequiresSecond() bool {
	return m == Covar || m == Corr
}

// ParseMethod converts a method name (as accepted by the original string
// API) into a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "mean":
		return Mean, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "ptp":
		return PtP, nil
	case "prop_above_zero":
		return PropAboveZero, nil
	case "rms":
		return RMS, nil
	case "slope":
		return Slope, nil
	case "covar":
		return Covar, nil
	case "corr":
		return Corr, nil
	default:
		return 0, fmt.Errorf("%w: unsupported method %q", common.ErrInvalidArgument, name)
	}
}

// reduceFunc is the fixed reduction contract: one or two equal-length
// window slices in, one scalar out. The second slice is nil for
// single-signal methods.
type reduceFunc func(xw, yw []float64) float64

// reducer resolves a method to its reduction once, ahead of the per-window
// loop, so the loop itself carries no method dispatch.
func (m Method) reducer(sf float64) (reduceFunc, error) {
	switch m {
	case Mean:
		return func(xw, _ []float64) float64 { return stats.Mean(xw) }, nil
	case Min:
		return func(xw, _ []float64) float64 { return stats.Min(xw) }, nil
	case Max:
		return func(xw, _ []float64) float64 { return stats.Max(xw) }, nil
	case PtP:
		return func(xw, _ []float64) float64 { return stats.PtP(xw) }, nil
	case PropAboveZero:
		return func(xw, _ []float64) float64 { return stats.PropAboveZero(xw) }, nil
	case RMS:
		return func(xw, _ []float64) float64 { return stats.RMS(xw) }, nil
	case Slope:
		return func(xw, _ []float64) float64 {
			times := make([]float64, len(xw))
			for i := range times {
				times[i] = float64(i) / sf
			}
			return stats.SlopeLstsq(times, xw)
		}, nil
	case Covar:
		return func(xw, yw []float64) float64 { return stats.Covariance(xw, yw) }, nil
	case Corr:
		return func(xw, yw []float64) float64 { return stats.Correlation(xw, yw) }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported method %d", common.ErrInvalidArgument, int(m))
	}
}

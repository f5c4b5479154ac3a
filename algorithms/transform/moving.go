// Package transform implements moving-window transformations of one or two
// time-series: a reduction method is applied to a window of fixed duration
// slid across the signal, optionally re-interpolated back onto the original
// sample grid.
package transform

import (
	"fmt"
	"math"

	"github.com/lucidwave/somnisig/algorithms/common"
	"github.com/lucidwave/somnisig/logging"
)

// Params configures a MovingTransform.
type Params struct {
	// SF is the sampling frequency, in samples per second.
	SF float64

	// Window is the window duration, in seconds.
	Window float64

	// Step is the advance between window centers, in seconds. A step of 0
	// advances one sample at a time (maximum overlap, slowest); a step
	// equal to Window gives no overlap.
	Step float64

	// Method is the per-window reduction.
	Method Method

	// Interp requests cubic re-interpolation of the (sparse) output onto
	// the original sample grid 0, 1/sf, 2/sf, ... Skipped when the step is
	// already one sample.
	Interp bool
}

// DefaultParams mirrors the defaults of the original API: a 300 ms window
// advanced by 100 ms at 100 Hz, reducing with Pearson correlation.
func DefaultParams() Params {
	return Params{
		SF:     100,
		Window: 0.3,
		Step:   0.1,
		Method: Corr,
	}
}

// MovingTransform slides a window across one or two signals and reduces
// each placement to a scalar. It is stateless apart from its parameters and
// safe for concurrent use.
type MovingTransform struct {
	params Params
	logger logging.Logger
}

// New creates a MovingTransform with the given parameters.
func New(params Params) *MovingTransform {
	return &MovingTransform{
		params: params,
		logger: logging.GetGlobalLogger(),
	}
}

// Compute applies the configured reduction to every window placement of x
// (and y, for two-signal methods; pass nil otherwise). It returns the time
// vector, in seconds, of window midpoints and the reduced values, always of
// equal length.
//
// Window bounds are clamped to the signal: placements near the edges are
// truncated, never dropped, and their reported time is the midpoint of the
// clamped window rather than of the nominal grid point.
func (mt *MovingTransform) Compute(x, y []float64) ([]float64, []float64, error) {
	p := mt.params

	if p.SF <= 0 {
		return nil, nil, fmt.Errorf("%w: sf must be positive, got %g", common.ErrInvalidArgument, p.SF)
	}
	if p.Window <= 0 {
		return nil, nil, fmt.Errorf("%w: window must be positive, got %g", common.ErrInvalidArgument, p.Window)
	}
	if p.Step < 0 {
		return nil, nil, fmt.Errorf("%w: step must not be negative, got %g", common.ErrInvalidArgument, p.Step)
	}
	if p.Method.RequiresSecond() && y == nil {
		return nil, nil, fmt.Errorf("%w: method %q requires a second signal", common.ErrInvalidArgument, p.Method)
	}
	if y != nil && len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: signals must have equal length (%d != %d)",
			common.ErrInvalidArgument, len(x), len(y))
	}

	reduce, err := p.Method.reducer(p.SF)
	if err != nil {
		return nil, nil, err
	}

	step := p.Step
	if step == 0 {
		step = 1 / p.SF
	}

	n := len(x)
	halfDur := p.Window / 2
	totalDur := float64(n) / p.SF
	last := n - 1

	nOut := int(math.Ceil(totalDur / step))
	if nOut <= 0 {
		return []float64{}, []float64{}, nil
	}

	t := make([]float64, nOut)
	out := make([]float64, nOut)
	for i := 0; i < nOut; i++ {
		center := float64(i) * step

		beg := int(math.Round((center - halfDur) * p.SF))
		end := int(math.Round((center + halfDur) * p.SF))
		if beg < 0 {
			beg = 0
		}
		if beg > last {
			beg = last
		}
		if end > last {
			end = last
		}

		// Half-open window; a truncated placement reports the midpoint of
		// what it actually covered.
		t[i] = (float64(beg) + float64(end)) / 2 / p.SF
		if y != nil {
			out[i] = reduce(x[beg:end], y[beg:end])
		} else {
			out[i] = reduce(x[beg:end], nil)
		}
	}

	if p.Interp {
		if step == 1/p.SF {
			// Already at full resolution; interpolating would be a no-op.
			mt.logger.Debug("interpolation skipped: step equals one sample", logging.Fields{
				"sf":   p.SF,
				"step": step,
			})
			return t, out, nil
		}
		return mt.interpolate(t, out, n)
	}

	return t, out, nil
}

// interpolate maps the sparse (t, out) pairs onto the dense sample grid
// 0, 1/sf, ..., (n-1)/sf with a cubic interpolant, filling zeros outside
// the sparse domain.
func (mt *MovingTransform) interpolate(t, out []float64, n int) ([]float64, []float64, error) {
	interpolant, err := common.NewCubicInterpolant(t, out, 0)
	if err != nil {
		return nil, nil, err
	}

	dense := make([]float64, n)
	for i := range dense {
		dense[i] = float64(i) / mt.params.SF
	}
	return dense, interpolant.PredictAll(dense), nil
}

// Package sliding builds strided window views over sampled signals: every
// window of a fixed duration, advanced by a fixed step, exposed without
// copying the underlying samples.
package sliding

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/lucidwave/somnisig/algorithms/common"
)

// Params configures a sliding window view.
type Params struct {
	// SF is the sampling frequency of the data, in samples per second.
	// It must be a whole number.
	SF float64

	// Window is the window length, in seconds.
	Window float64

	// Step is the advance between consecutive windows, in seconds.
	// Zero selects Window, i.e. no overlap between windows.
	Step float64

	// Axis is the axis to slide over. Negative values count from the end,
	// so -1 is the last axis. For 1-D data it must be 0 or -1.
	Axis int
}

// Slide builds a window view over a 1-D signal. It returns the time vector
// of window start offsets (seconds) and a View whose shape is
// (nWindows, windowSamples).
//
// The view aliases data: it copies nothing, and writes to data while the
// view is alive are visible through it.
func Slide(data []float64, p Params) ([]float64, *View, error) {
	if p.Axis != 0 && p.Axis != -1 {
		return nil, nil, fmt.Errorf("%w: axis %d out of range for 1-D data", common.ErrInvalidArgument, p.Axis)
	}
	return newView(data, []int{len(data)}, []int{1}, 0, p)
}

// SlideMatrix builds a window view over a 2-D signal held in a Dense matrix
// (one row per channel when sliding over the last axis). Axis 1 (or -1)
// slides along each row; axis 0 (or -2) slides down each column. The
// returned time vector holds the window start offsets in seconds.
//
// The view aliases the matrix's backing storage; see View for the mutation
// hazard.
func SlideMatrix(m *mat.Dense, p Params) ([]float64, *View, error) {
	r, c := m.Dims()
	raw := m.RawMatrix()

	axis := p.Axis
	if axis < 0 {
		axis += 2
	}
	if axis != 0 && axis != 1 {
		return nil, nil, fmt.Errorf("%w: axis %d out of range for 2-D data", common.ErrInvalidArgument, p.Axis)
	}

	return newView(raw.Data, []int{r, c}, []int{raw.Stride, 1}, axis, p)
}

// newView validates the window geometry and assembles the strided view.
// shape and strides describe the source buffer; axis has already been
// normalized to a non-negative index.
func newView(data []float64, shape, strides []int, axis int, p Params) ([]float64, *View, error) {
	if p.SF <= 0 || p.SF != math.Trunc(p.SF) {
		return nil, nil, fmt.Errorf("%w: sf must be a positive whole number, got %g", common.ErrInvalidArgument, p.SF)
	}
	sf := p.SF

	windowSamp, err := wholeSamples(p.Window, sf, "window")
	if err != nil {
		return nil, nil, err
	}

	step := p.Step
	if step == 0 {
		step = p.Window
	}
	stepSamp, err := wholeSamples(step, sf, "step")
	if err != nil {
		return nil, nil, err
	}

	if stepSamp < 1 {
		return nil, nil, fmt.Errorf("%w: step may not be zero or negative (%d samples)", common.ErrInvalidArgument, stepSamp)
	}
	if windowSamp < 1 {
		return nil, nil, fmt.Errorf("%w: window must span at least one sample (%d samples)", common.ErrInvalidArgument, windowSamp)
	}
	extent := shape[axis]
	if windowSamp >= extent {
		return nil, nil, fmt.Errorf("%w: window of %d samples may not exceed axis extent %d", common.ErrInvalidArgument, windowSamp, extent)
	}

	// Window count via the floating-point floor formula. When the ratios
	// are inexact this can under-count by one relative to naive
	// enumeration; downstream callers depend on this exact count.
	nWindows := int(math.Floor(float64(extent)/float64(stepSamp) - float64(windowSamp)/float64(stepSamp) + 1))

	vShape := make([]int, len(shape)+1)
	vStrides := make([]int, len(strides)+1)
	copy(vShape, shape)
	copy(vStrides, strides)
	vShape[axis] = nWindows
	vStrides[axis] = strides[axis] * stepSamp
	vShape[len(shape)] = windowSamp
	vStrides[len(strides)] = strides[axis]

	times := make([]float64, nWindows)
	for i := range times {
		times[i] = float64(i) * (float64(stepSamp) / sf)
	}

	return times, &View{
		data:    data,
		shape:   vShape,
		strides: vStrides,
		axis:    axis,
	}, nil
}

// wholeSamples converts a duration in seconds to a whole sample count.
func wholeSamples(seconds, sf float64, name string) (int, error) {
	samples := seconds * sf
	if samples != math.Trunc(samples) {
		return 0, fmt.Errorf("%w: %s*sf must be a whole number of samples, got %g", common.ErrInvalidArgument, name, samples)
	}
	return int(samples), nil
}

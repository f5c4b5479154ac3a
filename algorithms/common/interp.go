package common

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// CubicInterpolant maps a sparse, ordered (x, y) sample grid back onto
// arbitrary query points, returning a fixed fill value for queries outside
// the fitted domain. It is used to re-interpolate moving-window statistics
// onto the original sample grid.
//
// Four or more knots are fitted with a not-a-knot cubic spline; two or three
// knots fall back to piecewise-linear interpolation.
type CubicInterpolant struct {
	xMin, xMax float64
	fill       float64
	pred       interp.Predictor
}

// NewCubicInterpolant fits an interpolant to the given knots. xs must be
// strictly increasing and the same length as ys, with at least two knots.
func NewCubicInterpolant(xs, ys []float64, fill float64) (*CubicInterpolant, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: xs and ys must have equal length (%d != %d)",
			ErrInvalidArgument, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: need at least two knots, got %d",
			ErrInvalidArgument, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs must be strictly increasing (xs[%d]=%g, xs[%d]=%g)",
				ErrInvalidArgument, i-1, xs[i-1], i, xs[i])
		}
	}

	var pred interp.FittablePredictor
	if len(xs) >= 4 {
		pred = &interp.NotAKnotCubic{}
	} else {
		pred = &interp.PiecewiseLinear{}
	}
	if err := pred.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: interpolant fit failed: %v", ErrInvalidArgument, err)
	}

	return &CubicInterpolant{
		xMin: xs[0],
		xMax: xs[len(xs)-1],
		fill: fill,
		pred: pred,
	}, nil
}

// Predict evaluates the interpolant at x. Queries outside the fitted domain
// return the fill value.
func (c *CubicInterpolant) Predict(x float64) float64 {
	if x < c.xMin || x > c.xMax {
		return c.fill
	}
	return c.pred.Predict(x)
}

// PredictAll evaluates the interpolant at every query point.
func (c *CubicInterpolant) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.Predict(x)
	}
	return out
}

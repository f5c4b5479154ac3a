package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicInterpolantAtKnots(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 2, 5, 4}

	c, err := NewCubicInterpolant(xs, ys, 0)
	require.NoError(t, err)

	for i, x := range xs {
		assert.InDelta(t, ys[i], c.Predict(x), 1e-12, "knot %d", i)
	}
}

func TestCubicInterpolantReproducesCubic(t *testing.T) {
	// A not-a-knot spline reproduces polynomials up to degree three.
	f := func(x float64) float64 { return x*x*x - 2*x*x + x - 1 }

	xs := make([]float64, 11)
	ys := make([]float64, 11)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = f(xs[i])
	}

	c, err := NewCubicInterpolant(xs, ys, 0)
	require.NoError(t, err)

	for x := 0.25; x < 10; x += 0.5 {
		assert.InDelta(t, f(x), c.Predict(x), 1e-8, "x=%g", x)
	}
}

func TestCubicInterpolantFillOutsideDomain(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{10, 20, 30, 40}

	c, err := NewCubicInterpolant(xs, ys, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.Predict(0.999))
	assert.Equal(t, 0.0, c.Predict(4.001))
	assert.InDelta(t, 10.0, c.Predict(1), 1e-12)
	assert.InDelta(t, 40.0, c.Predict(4), 1e-12)
}

func TestCubicInterpolantLinearFallback(t *testing.T) {
	// Two or three knots fall back to piecewise-linear interpolation.
	c, err := NewCubicInterpolant([]float64{0, 1}, []float64{0, 2}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Predict(0.5), 1e-12)

	c, err = NewCubicInterpolant([]float64{0, 1, 2}, []float64{0, 2, 0}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Predict(1.5), 1e-12)
}

func TestCubicInterpolantPredictAll(t *testing.T) {
	c, err := NewCubicInterpolant([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, -1)
	require.NoError(t, err)

	got := c.PredictAll([]float64{-1, 0.5, 3.5})
	assert.InDelta(t, -1.0, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-9)
	assert.InDelta(t, -1.0, got[2], 1e-12)
}

func TestCubicInterpolantErrors(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"length mismatch", []float64{0, 1, 2}, []float64{0, 1}},
		{"too few knots", []float64{0}, []float64{1}},
		{"duplicate xs", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 3}},
		{"decreasing xs", []float64{0, 2, 1, 3}, []float64{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCubicInterpolant(tt.xs, tt.ys, 0)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

// Package stats provides the scalar reduction kernels used by the
// moving-transform engine, plus robust variants such as the trimmed
// standard deviation. Kernels accept 1-D sample buffers and never panic:
// degenerate inputs (empty windows, single samples where a second moment is
// required) yield NaN.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x, or NaN for an empty buffer.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// Min returns the smallest value in x, or NaN for an empty buffer.
func Min(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the largest value in x, or NaN for an empty buffer.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// PtP returns the peak-to-peak amplitude (max - min) of x, or NaN for an
// empty buffer.
func PtP(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x) - floats.Min(x)
}

// PropAboveZero returns the proportion of samples in x that are greater
// than or equal to zero, or NaN for an empty buffer.
func PropAboveZero(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	count := 0
	for _, v := range x {
		if v >= 0 {
			count++
		}
	}
	return float64(count) / float64(len(x))
}

// RMS returns the root-mean-square of x, or NaN for an empty buffer.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(x)))
}

// SlopeLstsq returns the least-squares regression slope of values against
// times. Units are value-units per time-unit. Fewer than two samples yield
// NaN.
func SlopeLstsq(times, values []float64) float64 {
	if len(times) != len(values) || len(times) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(times, values, nil, false)
	return beta
}

// Covariance returns the sample covariance (n-1 denominator) between x and
// y. Mismatched lengths or fewer than two samples yield NaN.
func Covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	return stat.Covariance(x, y, nil)
}

// Correlation returns the Pearson correlation coefficient between x and y.
// Mismatched lengths or fewer than two samples yield NaN. Constant buffers
// have zero variance and also yield NaN.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

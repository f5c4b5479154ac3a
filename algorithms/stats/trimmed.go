package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lucidwave/somnisig/algorithms/common"
)

// TrimmedStd slices off the lowest and highest floor(cut*n) values of x (by
// value, not by position) and returns the sample standard deviation (n-1
// denominator) of the remainder. cut=0 yields the ordinary sample standard
// deviation. Trimming less than a whole sample trims nothing.
//
// The trim is performed on a sorted copy, so ties at the cut boundary are
// resolved deterministically and the input is never mutated.
func TrimmedStd(x []float64, cut float64) (float64, error) {
	if cut < 0 || cut >= 1 {
		return 0, fmt.Errorf("%w: cut must be in [0, 1), got %g", common.ErrInvalidArgument, cut)
	}

	n := len(x)
	lowerCut := int(cut * float64(n))
	upperCut := n - lowerCut
	if upperCut-lowerCut < 2 {
		return 0, fmt.Errorf("%w: trimming %g of each end of %d samples leaves fewer than two values",
			common.ErrDomain, cut, n)
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	return stat.StdDev(sorted[lowerCut:upperCut], nil), nil
}

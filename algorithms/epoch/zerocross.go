package epoch

// ZeroCrossings returns the indices i at which x changes sign between x[i]
// and x[i+1]. A sample is treated as positive when strictly greater than
// zero, so a touch of exactly zero counts as the non-positive side.
//
// For x = [4, 2, -1, -3, 1, 2, 3, -2, -5] the crossings are [1, 3, 6].
func ZeroCrossings(x []float64) []int {
	var idx []int
	for i := 0; i+1 < len(x); i++ {
		if (x[i] > 0) != (x[i+1] > 0) {
			idx = append(idx, i)
		}
	}
	return idx
}

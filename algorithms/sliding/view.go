package sliding

// View is a windowed, strided view over a source buffer. The axis that was
// slid over indexes window start positions, and a new trailing axis of
// length WindowLen indexes samples within a window.
//
// A View aliases the source storage: constructing it copies nothing, and a
// write to the source while the view is alive changes what the view reads.
// Callers that need stable window contents must not mutate the source (or
// must copy windows out) for the lifetime of the view. Resizing or
// reallocating the source invalidates the view.
type View struct {
	data    []float64
	shape   []int
	strides []int
	axis    int
}

// Shape returns the extent of each view axis. The slid axis holds the
// window count; the last axis holds the window length.
func (v *View) Shape() []int {
	out := make([]int, len(v.shape))
	copy(out, v.shape)
	return out
}

// NumWindows returns the number of window positions along the slid axis.
func (v *View) NumWindows() int { return v.shape[v.axis] }

// WindowLen returns the number of samples per window.
func (v *View) WindowLen() int { return v.shape[len(v.shape)-1] }

// At returns the sample at the given view coordinates. One index per view
// axis is required; the last index addresses the position inside a window.
// At panics if the coordinates are out of range, matching slice indexing.
func (v *View) At(ix ...int) float64 {
	if len(ix) != len(v.shape) {
		panic("sliding: wrong number of indices")
	}
	off := 0
	for d, i := range ix {
		if i < 0 || i >= v.shape[d] {
			panic("sliding: index out of range")
		}
		off += i * v.strides[d]
	}
	return v.data[off]
}

// Window returns one window's samples. It takes one index per view axis
// except the trailing within-window axis. When the window is contiguous in
// the source storage the returned slice aliases it; otherwise the samples
// are gathered into a fresh slice. Contiguous reports which case applies.
func (v *View) Window(ix ...int) []float64 {
	if len(ix) != len(v.shape)-1 {
		panic("sliding: wrong number of indices")
	}
	off := 0
	for d, i := range ix {
		if i < 0 || i >= v.shape[d] {
			panic("sliding: index out of range")
		}
		off += i * v.strides[d]
	}

	n := v.WindowLen()
	inner := v.strides[len(v.strides)-1]
	if inner == 1 {
		return v.data[off : off+n]
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = v.data[off+k*inner]
	}
	return out
}

// Contiguous reports whether windows are contiguous in the source storage,
// i.e. whether Window returns aliasing subslices rather than copies.
func (v *View) Contiguous() bool {
	return v.strides[len(v.strides)-1] == 1
}

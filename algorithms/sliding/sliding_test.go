package sliding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lucidwave/somnisig/algorithms/common"
)

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func TestSlideWindowCount(t *testing.T) {
	// 1000 samples at 100 Hz, 1 s windows advanced by 0.5 s:
	// floor(1000/50 - 100/50 + 1) = 19.
	data := ramp(1000)

	times, v, err := Slide(data, Params{SF: 100, Window: 1, Step: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 19, v.NumWindows())
	assert.Equal(t, 100, v.WindowLen())
	assert.Equal(t, []int{19, 100}, v.Shape())
	require.Len(t, times, 19)
	assert.Equal(t, 0.0, times[0])
	assert.Equal(t, 0.5, times[1])
	assert.Equal(t, 9.0, times[18])
}

func TestSlideWindowsMatchSubsequences(t *testing.T) {
	data := ramp(1000)

	_, v, err := Slide(data, Params{SF: 100, Window: 1, Step: 0.5})
	require.NoError(t, err)

	for i := 0; i < v.NumWindows(); i++ {
		start := i * 50
		assert.Equal(t, data[start:start+100], v.Window(i), "window %d", i)
	}
}

func TestSlideDefaultStepIsWindow(t *testing.T) {
	data := ramp(10)

	times, v, err := Slide(data, Params{SF: 1, Window: 2})
	require.NoError(t, err)

	// No overlap: floor(10/2 - 2/2 + 1) = 5 windows of 2 samples.
	assert.Equal(t, 5, v.NumWindows())
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, times)
	assert.Equal(t, []float64{4, 5}, v.Window(2))
}

func TestSlideAliasesSource(t *testing.T) {
	data := ramp(100)

	_, v, err := Slide(data, Params{SF: 10, Window: 1, Step: 0.5})
	require.NoError(t, err)
	require.True(t, v.Contiguous())

	// A write to the source must be visible through the view.
	data[5] = -123
	assert.Equal(t, -123.0, v.At(0, 5))
	assert.Equal(t, -123.0, v.Window(1)[0])
}

func TestSlideMatrixLastAxis(t *testing.T) {
	// Two channels of 10 samples, 2 s windows advanced by 1 s at 1 Hz.
	m := mat.NewDense(2, 10, nil)
	for j := 0; j < 10; j++ {
		m.Set(0, j, float64(j))
		m.Set(1, j, float64(100+j))
	}

	times, v, err := SlideMatrix(m, Params{SF: 1, Window: 2, Step: 1, Axis: -1})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 9, 2}, v.Shape())
	assert.Equal(t, 9, v.NumWindows())
	require.True(t, v.Contiguous())
	assert.Equal(t, []float64{3, 4}, v.Window(0, 3))
	assert.Equal(t, []float64{103, 104}, v.Window(1, 3))
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, times)
}

func TestSlideMatrixFirstAxis(t *testing.T) {
	// Sliding down the columns: windows gather strided samples.
	m := mat.NewDense(10, 3, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, float64(10*i+j))
		}
	}

	_, v, err := SlideMatrix(m, Params{SF: 1, Window: 2, Step: 1, Axis: 0})
	require.NoError(t, err)

	assert.Equal(t, []int{9, 3, 2}, v.Shape())
	assert.False(t, v.Contiguous())
	assert.Equal(t, []float64{m.At(4, 1), m.At(5, 1)}, v.Window(4, 1))
	assert.Equal(t, m.At(7, 2), v.At(7, 2, 0))
	assert.Equal(t, m.At(8, 2), v.At(7, 2, 1))
}

func TestSlideErrors(t *testing.T) {
	data := ramp(100)

	tests := []struct {
		name string
		p    Params
	}{
		{"fractional sf", Params{SF: 99.5, Window: 1, Step: 0.5}},
		{"negative sf", Params{SF: -100, Window: 1, Step: 0.5}},
		{"fractional window samples", Params{SF: 100, Window: 0.015, Step: 0.5}},
		{"fractional step samples", Params{SF: 100, Window: 0.5, Step: 0.015}},
		{"negative step", Params{SF: 100, Window: 0.5, Step: -0.5}},
		{"window exceeds extent", Params{SF: 100, Window: 1, Step: 0.5}},
		{"axis out of range", Params{SF: 100, Window: 0.5, Step: 0.5, Axis: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Slide(data, tt.p)
			require.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestSlideIsPure(t *testing.T) {
	data := ramp(200)

	t1, v1, err := Slide(data, Params{SF: 100, Window: 0.5, Step: 0.25})
	require.NoError(t, err)
	t2, v2, err := Slide(data, Params{SF: 100, Window: 0.5, Step: 0.25})
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Equal(t, v1.Shape(), v2.Shape())
	for i := 0; i < v1.NumWindows(); i++ {
		assert.Equal(t, v1.Window(i), v2.Window(i))
	}
}

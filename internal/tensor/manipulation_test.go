package tensor

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape(t *testing.T) {
	tests := []struct {
		name   string
		target []int
		want   []int
		reason ReshapeReason
	}{
		{"infer middle", []int{2, -1, 4}, []int{2, 3, 4}, 0},
		{"infer first", []int{-1, 6}, []int{4, 6}, 0},
		{"explicit", []int{4, 3, 2}, []int{4, 3, 2}, 0},
		{"flat", []int{-1}, []int{24}, 0},
		{"not divisible", []int{5, -1}, nil, ReshapeNotDivisible},
		{"zero extent", []int{0, 2}, nil, ReshapeZeroExtent},
		{"two inferred", []int{-1, 2, -1}, nil, ReshapeMultipleInferred},
		{"count mismatch", []int{5, 5}, nil, ReshapeCountMismatch},
		{"count wraps to match", []int{1<<62 + 3, 8}, nil, ReshapeOverflow},
		{"overflow with inferred axis", []int{1 << 32, -1, 1 << 32}, nil, ReshapeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tsr := sequence[float32](t, 24)
			err := tsr.Reshape(tt.target...)
			if tt.reason == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, tsr.Shape().Extents())
				assert.Equal(t, 24, tsr.NumElements())
				return
			}
			var reshapeErr *BadReshapeError
			require.True(t, errors.As(err, &reshapeErr))
			assert.Equal(t, tt.reason, reshapeErr.Reason)
			assert.Equal(t, 24, reshapeErr.Have)
			assert.Equal(t, []int{24}, tsr.Shape().Extents(), "failed reshape must not change the shape")
		})
	}
}

func TestReshapeKeepsData(t *testing.T) {
	tsr := sequence[int](t, 2, 3)
	require.NoError(t, tsr.Reshape(3, 2))
	assertData(t, []int{0, 1, 2, 3, 4, 5}, tsr)
	assert.Equal(t, 3, must.M1(tsr.At(1, 1)))
}

func TestResize(t *testing.T) {
	tsr := sequence[float64](t, 2, 2)

	require.NoError(t, tsr.Resize(2, 3))
	assertData(t, []float64{0, 1, 2, 3, 0, 0}, tsr)

	require.NoError(t, tsr.Resize(3))
	assertData(t, []float64{0, 1, 2}, tsr)

	// Grow past the inline capacity, then back.
	require.NoError(t, tsr.Resize(5, 5))
	assert.Equal(t, 25, len(tsr.Data()))
	assert.Equal(t, 2.0, must.M1(tsr.At(0, 2)))
	assert.Equal(t, 0.0, must.M1(tsr.At(4, 4)))
	require.NoError(t, tsr.Resize(2))
	assertData(t, []float64{0, 1}, tsr)

	assert.Equal(t, KindBadReshape, KindOf(tsr.Resize(-1, 2)))
	assert.Equal(t, KindBadReshape, KindOf(tsr.Resize(0)))
	assertData(t, []float64{0, 1}, tsr)

	var reshapeErr *BadReshapeError
	require.True(t, errors.As(tsr.Resize(3, 1<<62), &reshapeErr))
	assert.Equal(t, ReshapeOverflow, reshapeErr.Reason)
	require.True(t, errors.As(tsr.Resize(1<<32, 1<<32), &reshapeErr))
	assert.Equal(t, ReshapeOverflow, reshapeErr.Reason)
	assertData(t, []float64{0, 1}, tsr)
}

func TestReshapeErrorOwnsTarget(t *testing.T) {
	tsr := sequence[int](t, 2, 3)
	for _, target := range [][]int{{0, 6}, {-1, -1}, {4, 2}, {4, -1}} {
		err := tsr.Reshape(target...)
		var reshapeErr *BadReshapeError
		require.True(t, errors.As(err, &reshapeErr), "target %v", target)
		want := append([]int(nil), target...)
		target[0] = 99
		assert.Equal(t, want, reshapeErr.Target)
	}

	target := []int{0, 2}
	var reshapeErr *BadReshapeError
	require.True(t, errors.As(tsr.Resize(target...), &reshapeErr))
	target[0] = 99
	assert.Equal(t, []int{0, 2}, reshapeErr.Target)
}

func TestRavelAndFlatten(t *testing.T) {
	tsr := sequence[int](t, 2, 3, 2)

	flat := must.M1(tsr.Flatten())
	assert.Equal(t, []int{12}, flat.Shape().Extents())
	assert.Equal(t, []int{2, 3, 2}, tsr.Shape().Extents(), "Flatten must not touch the receiver")

	require.NoError(t, tsr.Ravel())
	assert.Equal(t, []int{12}, tsr.Shape().Extents())
	assert.True(t, tsr.Equal(flat))
}

func TestSqueeze(t *testing.T) {
	tsr := sequence[int](t, 1, 3, 1, 2)
	require.NoError(t, tsr.Squeeze())
	assert.Equal(t, []int{3, 2}, tsr.Shape().Extents())

	single := sequence[int](t, 1, 1)
	require.NoError(t, single.Squeeze())
	assert.True(t, single.Shape().IsScalar())
}

func TestSwapAxes(t *testing.T) {
	tsr := sequence[int](t, 2, 3)
	swapped := must.M1(tsr.SwapAxes(0, 1))
	assert.Equal(t, []int{3, 2}, swapped.Shape().Extents())
	assertData(t, []int{0, 3, 1, 4, 2, 5}, swapped)

	cube := sequence[int](t, 2, 3, 4)
	swapped = must.M1(cube.SwapAxes(0, 2))
	assert.Equal(t, []int{4, 3, 2}, swapped.Shape().Extents())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				assert.Equal(t, must.M1(cube.At(i, j, k)), must.M1(swapped.At(k, j, i)))
			}
		}
	}

	_, err := tsr.SwapAxes(0, 2)
	var axisErr *AxisError
	require.True(t, errors.As(err, &axisErr))
	assert.Equal(t, 1, axisErr.Max)
	assert.Equal(t, 2, axisErr.Axis)
}

func TestSlice(t *testing.T) {
	tsr := sequence[int](t, 4, 5)

	s := must.M1(NewSlicer(tsr.Shape(), []int{1, 1}, []int{3, 4}, 1))
	sub := must.M1(tsr.Slice(s))
	assert.Equal(t, []int{2, 3}, sub.Shape().Extents())
	assertData(t, []int{6, 7, 8, 11, 12, 13}, sub)

	s = must.M1(SliceToEnd(tsr.Shape(), []int{0, 1}, 2))
	sub = must.M1(tsr.Slice(s))
	assert.Equal(t, []int{2, 2}, sub.Shape().Extents())
	assertData(t, []int{1, 3, 11, 13}, sub)

	// The source is untouched and the result is independent.
	require.NoError(t, sub.Set(-1, 0, 0))
	assert.Equal(t, 1, must.M1(tsr.At(0, 1)))
}

func TestSliceErrors(t *testing.T) {
	tsr := sequence[int](t, 4, 5)

	_, err := NewSlicer(tsr.Shape(), []int{0, 0}, []int{5, 5}, 1)
	assert.Equal(t, KindBadSlice, KindOf(err), "stop exceeds extent 4 on axis 0")

	// A slicer validated against a larger shape is re-checked against the tensor.
	big := must.M1(NewSlicer(shapeOf(10, 10), []int{0, 0}, []int{5, 5}, 1))
	_, err = tsr.Slice(big)
	var sliceErr *BadSliceError
	require.True(t, errors.As(err, &sliceErr))
	assert.Equal(t, SliceStopBeyondExtent, sliceErr.Reason)
	assert.Equal(t, 0, sliceErr.Axis)

	empty := must.M1(NewSlicer(tsr.Shape(), []int{2, 0}, []int{2, 5}, 1))
	_, err = tsr.Slice(empty)
	require.True(t, errors.As(err, &sliceErr))
	assert.Equal(t, SliceEmptyRange, sliceErr.Reason)
}

func TestSwapAxesWorkersAgree(t *testing.T) {
	serial := must.M1(New[int32](shapeOf(200, 300), InitSequence, NewConfig(WithWorkers(1))))
	split := must.M1(New[int32](shapeOf(200, 300), InitSequence, NewConfig(WithWorkers(8))))

	a := must.M1(serial.SwapAxes(0, 1))
	b := must.M1(split.SwapAxes(0, 1))
	assert.True(t, a.Equal(b))
	assert.Equal(t, int32(301), must.M1(b.At(1, 1)))
}

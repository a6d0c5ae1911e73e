package tensor

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeRank(t *testing.T) {
	assert.Equal(t, 4, must.M1(NewShape(3, 2, 4, 5)).Rank())
	assert.Equal(t, 3, must.M1(NewShape(3, 2, 4)).Rank())
	assert.Equal(t, 0, must.M1(NewShape()).Rank())
	assert.Equal(t, 0, ScalarShape().Rank())
}

func TestShapeDim(t *testing.T) {
	s := must.M1(NewShape(4, 6, 4, 46, 8, 3))
	assert.Equal(t, 4, s.Dim(0))
	assert.Equal(t, 6, s.Dim(1))
	assert.Equal(t, 46, s.Dim(3))
	assert.Equal(t, 3, s.Dim(5))
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		extents []int
		want    int
	}{
		{[]int{5, 3, 6}, 90},
		{[]int{7}, 7},
		{[]int{1, 1, 1}, 1},
		{nil, 1},
	}
	for _, tt := range tests {
		s := must.M1(NewShape(tt.extents...))
		assert.Equal(t, tt.want, s.NumElements(), "shape %v", tt.extents)
	}
	assert.Equal(t, 0, Shape{}.NumElements(), "zero value shape is empty")
}

func TestShapeCumulative(t *testing.T) {
	s := must.M1(NewShape(4, 1, 7, 1))
	assert.Equal(t, []int{4, 4, 28, 28}, s.CumulativeShape())
	assert.Equal(t, s.NumElements(), s.CumulativeShape()[s.Rank()-1])

	s = must.M1(NewShape(2, 3, 4))
	assert.Equal(t, []int{2, 6, 24}, s.CumulativeShape())
	assert.Equal(t, []int{4, 12, 24}, s.ReverseCumulativeShape())
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		extents []int
		want    []int
	}{
		{[]int{2, 3, 4}, []int{12, 4, 1}},
		{[]int{5}, []int{1}},
		{[]int{3, 1, 2}, []int{2, 2, 1}},
		{nil, []int{}},
	}
	for _, tt := range tests {
		s := must.M1(NewShape(tt.extents...))
		assert.Equal(t, tt.want, s.Strides(), "shape %v", tt.extents)
	}
}

func TestShapeEqual(t *testing.T) {
	a := must.M1(NewShape(5, 6, 4))
	assert.True(t, a.Equal(must.M1(NewShape(5, 6, 4))))
	assert.False(t, a.Equal(must.M1(NewShape(4, 5, 6))))
	assert.False(t, a.Equal(must.M1(NewShape(5, 6))))
	assert.False(t, ScalarShape().Equal(Shape{}))
}

func TestShapeValidation(t *testing.T) {
	for _, extents := range [][]int{{4, -1, 9, -2}, {0}, {3, 0, 2}} {
		_, err := NewShape(extents...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBadInitShape), "extents %v", extents)

		var shapeErr *BadInitShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.LessOrEqual(t, extents[shapeErr.Axis], 0)
		assert.False(t, shapeErr.Overflow)
	}
}

func TestShapeCountOverflow(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
		axis    int
	}{
		{"negative wrap", []int{3, 1 << 62}, 1},
		{"zero wrap", []int{1 << 32, 1 << 32}, 1},
		{"late axis", []int{2, 3, math.MaxInt / 8, 5}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShape(tt.extents...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadInitShape))

			var shapeErr *BadInitShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.True(t, shapeErr.Overflow)
			assert.Equal(t, tt.axis, shapeErr.Axis)
			assert.Contains(t, shapeErr.Error(), "overflows")

			_, err = Zeros[float32](tt.extents...)
			assert.Equal(t, KindBadInitShape, KindOf(err))
		})
	}

	_, err := NewShape(math.MaxInt)
	assert.NoError(t, err)
	_, err = NewShape(1, math.MaxInt, 1)
	assert.NoError(t, err)
}

func TestBroadcastCountOverflow(t *testing.T) {
	a, b := must.M1(NewShape(1<<40, 1)), must.M1(NewShape(1, 1<<40))
	_, _, err := BroadcastShapes(a, b)
	var bErr *BroadcastError
	require.True(t, errors.As(err, &bErr))
	assert.True(t, bErr.Overflow)
	assert.Equal(t, 1, bErr.Axis)
	assert.False(t, IsBroadcastable(b, a))
}

func TestShapeIsImmutable(t *testing.T) {
	extents := []int{2, 3}
	s := must.M1(NewShape(extents...))
	extents[0] = 99
	got := s.Extents()
	got[1] = 99
	assert.Equal(t, []int{2, 3}, s.Extents())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(4, 5, 3)", must.M1(NewShape(4, 5, 3)).String())
	assert.Equal(t, "(9, 5, 6, 7, 6)", must.M1(NewShape(9, 5, 6, 7, 6)).String())
	assert.Equal(t, "(7)", must.M1(NewShape(7)).String())
	assert.Equal(t, "()", ScalarShape().String())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []int
		want      []int
		broadcast bool
		wantErr   bool
	}{
		{"identical", []int{3, 5}, []int{3, 5}, []int{3, 5}, false, false},
		{"column", []int{3, 1}, []int{3, 5}, []int{3, 5}, true, false},
		{"row", []int{1, 5}, []int{3, 5}, []int{3, 5}, true, false},
		{"missing leading", []int{5}, []int{4, 3, 5}, []int{4, 3, 5}, true, false},
		{"both sides", []int{4, 1}, []int{1, 6}, []int{4, 6}, true, false},
		{"ones", []int{1, 1}, []int{1}, []int{1, 1}, true, false},
		{"scalar", nil, []int{2, 2}, []int{2, 2}, true, false},
		{"incompatible", []int{3, 4}, []int{3, 5}, nil, false, true},
		{"incompatible leading", []int{2, 3}, []int{4, 3}, nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := must.M1(NewShape(tt.a...)), must.M1(NewShape(tt.b...))
			for _, pair := range [][2]Shape{{a, b}, {b, a}} {
				got, broadcast, err := BroadcastShapes(pair[0], pair[1])
				assert.Equal(t, !tt.wantErr, IsBroadcastable(pair[0], pair[1]))
				if tt.wantErr {
					require.Error(t, err)
					assert.Equal(t, KindBroadcast, KindOf(err))
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Extents())
				assert.Equal(t, tt.broadcast, broadcast)
			}
		})
	}
}

func TestBroadcastStrides(t *testing.T) {
	out := must.M1(NewShape(2, 3, 4))
	assert.Equal(t, []int{0, 1, 0}, broadcastStrides(must.M1(NewShape(3, 1)), out))
	assert.Equal(t, []int{0, 0, 1}, broadcastStrides(must.M1(NewShape(4)), out))
	assert.Equal(t, []int{12, 4, 1}, broadcastStrides(out, out))
}

package tensor

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicerValidate(t *testing.T) {
	shape := must.M1(NewShape(4, 5))
	tests := []struct {
		name   string
		start  []int
		stop   []int
		step   int
		reason SliceReason
		axis   int
	}{
		{"rank mismatch", []int{0}, []int{4, 5}, 1, SliceRankMismatch, -1},
		{"zero step", []int{0, 0}, []int{4, 5}, 0, SliceNonPositiveStep, -1},
		{"negative step", []int{0, 0}, []int{4, 5}, -2, SliceNonPositiveStep, -1},
		{"negative bound", []int{0, -1}, []int{4, 5}, 1, SliceNegativeBound, 1},
		{"start after stop", []int{3, 0}, []int{2, 5}, 1, SliceStartAfterStop, 0},
		{"stop beyond extent", []int{0, 0}, []int{5, 5}, 1, SliceStopBeyondExtent, 0},
		{"first violation wins", []int{0, 4}, []int{5, 2}, 1, SliceStopBeyondExtent, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlicer(shape, tt.start, tt.stop, tt.step)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadSlice))

			var sliceErr *BadSliceError
			require.True(t, errors.As(err, &sliceErr))
			assert.Equal(t, tt.reason, sliceErr.Reason)
			assert.Equal(t, tt.axis, sliceErr.Axis)
		})
	}
}

func TestSlicerSentinels(t *testing.T) {
	shape := must.M1(NewShape(4, 5))

	s := must.M1(SliceFromBegin(shape, []int{2, 3}, 1))
	assert.Equal(t, []int{0, 0}, s.Start())
	assert.Equal(t, []int{2, 3}, s.Stop())

	s = must.M1(SliceToEnd(shape, []int{1, 2}, 2))
	assert.Equal(t, []int{1, 2}, s.Start())
	assert.Equal(t, []int{4, 5}, s.Stop())
	assert.Equal(t, 2, s.Step())

	_, err := SliceToEnd(shape, []int{5, 0}, 1)
	assert.Equal(t, KindBadSlice, KindOf(err), "start after the implied stop")
}

func TestSlicerCounts(t *testing.T) {
	shape := must.M1(NewShape(10, 7))
	s := must.M1(NewSlicer(shape, []int{1, 0}, []int{10, 7}, 3))
	// Axis 0: 1, 4, 7. Axis 1: 0, 3, 6.
	assert.Equal(t, []int{3, 3}, s.counts())
}

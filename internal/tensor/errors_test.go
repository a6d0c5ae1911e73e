package tensor

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err      error
		kind     ErrorKind
		sentinel error
	}{
		{&BadInitShapeError{Extents: []int{2, 0}, Axis: 1}, KindBadInitShape, ErrBadInitShape},
		{&BadReshapeError{Reason: ReshapeCountMismatch, Target: []int{5}, Have: 6, Want: 5}, KindBadReshape, ErrBadReshape},
		{&BadSliceError{Reason: SliceNonPositiveStep, Axis: -1}, KindBadSlice, ErrBadSlice},
		{&BadIndexerError{Axis: -1, Rank: 2, Got: 3}, KindBadIndexer, ErrBadIndexer},
		{&AxisError{Max: 1, Axis: 4}, KindAxis, ErrAxis},
		{&BroadcastError{A: []int{3}, B: []int{4}}, KindBroadcast, ErrBroadcast},
		{&OperationUndefinedError{Op: "Add", Reason: UndefinedEmpty}, KindOperationUndefined, ErrOperationUndefined},
		{&FreezeError{Extents: []int{2}}, KindFreeze, ErrFreeze},
		{&InitializerError{Initializer: InitRandn, DataType: Int8, cause: errors.New("boom")}, KindInitializer, ErrInitializer},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.NotEmpty(t, tt.err.Error())

			// Kinds survive wrapping.
			wrapped := errors.Wrap(tt.err, "while testing")
			assert.Equal(t, tt.kind, KindOf(wrapped))
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			wrapped = fmt.Errorf("outer: %w", tt.err)
			assert.Equal(t, tt.kind, KindOf(wrapped))
		})
	}

	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestFreezeErrorIsOperationUndefined(t *testing.T) {
	err := error(&FreezeError{Extents: []int{2, 2}})
	assert.True(t, errors.Is(err, ErrOperationUndefined))
	assert.False(t, errors.Is(err, ErrBroadcast))
}

func TestInitializerErrorCause(t *testing.T) {
	cause := errors.New("negative value for unsigned type")
	err := error(&InitializerError{Initializer: InitRandn, DataType: Uint8, Index: 3, cause: cause})
	assert.Equal(t, cause, errors.Cause(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "randn initializer failed for uint8 at element 3: negative value for unsigned type", err.Error())
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "invalid shape (2, 0): extent 0 at axis 1 must be > 0",
		(&BadInitShapeError{Extents: []int{2, 0}, Axis: 1}).Error())
	require.Equal(t, "shape (2, 3) requires 6 elements, but got 5",
		(&BadInitShapeError{Extents: []int{2, 3}, Axis: -1, DataLen: 5}).Error())
	require.Equal(t, "axis 4 out of range, valid axes are 0..1",
		(&AxisError{Max: 1, Axis: 4}).Error())
	require.Equal(t, "shapes (3, 4) and (3, 5) are not broadcast-compatible at axis 1",
		(&BroadcastError{A: []int{3, 4}, B: []int{3, 5}, Axis: 1}).Error())
	require.Equal(t, "AddInPlace: shape (2, 2) does not match (1, 2)",
		(&OperationUndefinedError{Op: "AddInPlace", Reason: UndefinedShapeMismatch, Self: []int{2, 2}, Other: []int{1, 2}}).Error())
}

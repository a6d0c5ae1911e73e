package tensor

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Shape is the immutable rank/extent descriptor of a tensor.
//
// The extents are copied on construction and never exposed by reference, so a Shape can
// be shared freely. Reshaping a tensor builds a new Shape.
//
// The zero value is the empty shape of a tensor whose data has been moved out: it has
// rank 0 and no elements. Use ScalarShape for a rank 0 shape holding one element.
type Shape struct {
	extents    []int
	count      int
	cumulative []int
}

// NewShape validates the extents and builds a Shape.
// A call with no extents yields the scalar shape.
func NewShape(extents ...int) (Shape, error) {
	if err := ValidateExtents(extents); err != nil {
		return Shape{}, err
	}
	return makeShape(slices.Clone(extents)), nil
}

// ScalarShape returns the rank 0 shape, which holds exactly one element.
func ScalarShape() Shape {
	return makeShape(nil)
}

// ValidateExtents fails with a BadInitShapeError when any extent is <= 0 or when the
// element count does not fit in an int.
func ValidateExtents(extents []int) error {
	for i, dim := range extents {
		if dim <= 0 {
			return &BadInitShapeError{Extents: slices.Clone(extents), Axis: i}
		}
	}
	if axis := overflowAxis(extents); axis >= 0 {
		return &BadInitShapeError{Extents: slices.Clone(extents), Axis: axis, Overflow: true}
	}
	return nil
}

// overflowAxis returns the first axis at which the running product of the positive
// extents exceeds math.MaxInt, or -1.
func overflowAxis(extents []int) int {
	running := 1
	for i, dim := range extents {
		if dim > math.MaxInt/running {
			return i
		}
		running *= dim
	}
	return -1
}

// makeShape takes ownership of already validated extents.
func makeShape(extents []int) Shape {
	s := Shape{extents: extents, count: 1}
	s.cumulative = cumulativeProducts(extents)
	for _, dim := range extents {
		s.count *= dim
	}
	return s
}

func cumulativeProducts(extents []int) []int {
	res := make([]int, len(extents))
	running := 1
	for i, dim := range extents {
		running *= dim
		res[i] = running
	}
	return res
}

// Extents returns a copy of the per-axis sizes.
func (s Shape) Extents() []int {
	return slices.Clone(s.extents)
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s.extents)
}

// Dim returns the extent of the given axis. It panics if the axis is out of range,
// like indexing a slice.
func (s Shape) Dim(axis int) int {
	return s.extents[axis]
}

// NumElements returns the product of the extents (1 for a scalar, 0 for the empty shape).
func (s Shape) NumElements() int {
	return s.count
}

// IsScalar reports whether this is the one-element rank 0 shape.
func (s Shape) IsScalar() bool {
	return len(s.extents) == 0 && s.count == 1
}

// IsEmpty reports whether this is the zero value shape with no elements.
func (s Shape) IsEmpty() bool {
	return s.count == 0
}

// CumulativeShape returns the prefix products of the extents: position i holds the number
// of elements spanned by axes 0..i inclusive, so the last value equals NumElements.
func (s Shape) CumulativeShape() []int {
	return slices.Clone(s.cumulative)
}

// ReverseCumulativeShape returns the prefix products of the extents taken from the last
// axis backwards: position i holds the product of extents[rank-1-i..rank-1].
func (s Shape) ReverseCumulativeShape() []int {
	reversed := slices.Clone(s.extents)
	slices.Reverse(reversed)
	return cumulativeProducts(reversed)
}

// Strides returns the row-major element strides. The stride of axis i is
// NumElements / CumulativeShape[i], so the last axis varies fastest.
func (s Shape) Strides() []int {
	strides := make([]int, len(s.extents))
	for i := range s.extents {
		strides[i] = s.count / s.cumulative[i]
	}
	return strides
}

// Equal reports structural equality. Rank mismatch is inequality, not an error.
func (s Shape) Equal(other Shape) bool {
	return s.count == other.count && slices.Equal(s.extents, other.extents)
}

// String renders the shape as "(e0, e1, ..., en)".
func (s Shape) String() string {
	return formatExtents(s.extents)
}

// withoutAxis returns the shape with one axis removed.
func (s Shape) withoutAxis(axis int) Shape {
	extents := make([]int, 0, len(s.extents)-1)
	extents = append(extents, s.extents[:axis]...)
	extents = append(extents, s.extents[axis+1:]...)
	return makeShape(extents)
}

// checkAxis fails with an AxisError when axis is not in [0, rank).
func (s Shape) checkAxis(axis int) error {
	if axis < 0 || axis >= len(s.extents) {
		return &AxisError{Max: len(s.extents) - 1, Axis: axis}
	}
	return nil
}

func formatExtents(extents []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, dim := range extents {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(')')
	return sb.String()
}

func product(extents []int) int {
	n := 1
	for _, dim := range extents {
		n *= dim
	}
	return n
}

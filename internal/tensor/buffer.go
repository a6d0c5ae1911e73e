package tensor

// inlineCapacity is the number of elements a buffer can hold without a heap allocation.
const inlineCapacity = 16

// tensorBuffer is the owned backing store of a tensor.
//
// Small buffers (up to min(limit, inlineCapacity) elements) live in the inline array,
// larger ones in a heap slice. data always views whichever backing is active.
// A tensorBuffer is owned by exactly one tensor and must not be copied by value,
// since data may point into its own inline array.
type tensorBuffer[T Scalar] struct {
	inline   [inlineCapacity]T
	data     []T
	limit    int
	isInline bool
}

// newTensorBuffer allocates a zeroed buffer of n elements.
func newTensorBuffer[T Scalar](n, limit int) *tensorBuffer[T] {
	b := &tensorBuffer[T]{limit: min(limit, inlineCapacity)}
	b.data = b.alloc(n)
	return b
}

// alloc returns zeroed storage for n elements and records which backing it uses.
func (b *tensorBuffer[T]) alloc(n int) []T {
	if n <= b.limit {
		b.isInline = true
		clear(b.inline[:n])
		return b.inline[:n:n]
	}
	b.isInline = false
	return make([]T, n)
}

// resize grows the buffer with zero values or truncates it from the end.
func (b *tensorBuffer[T]) resize(n int) {
	old := len(b.data)
	switch {
	case n == old:
		return
	case n <= b.limit:
		// Both old and new contents fit inline, or the data moves inline.
		if !b.isInline {
			copy(b.inline[:], b.data[:min(n, old)])
			b.isInline = true
		}
		if n > old {
			clear(b.inline[old:n])
		}
		b.data = b.inline[:n:n]
	case n < old:
		b.data = b.data[:n]
	default:
		grown := make([]T, n)
		copy(grown, b.data)
		b.isInline = false
		b.data = grown
	}
}

// clone returns a deep copy with the same allocation policy.
func (b *tensorBuffer[T]) clone() *tensorBuffer[T] {
	c := &tensorBuffer[T]{limit: b.limit}
	c.data = c.alloc(len(b.data))
	copy(c.data, b.data)
	return c
}

// compact drops unused heap capacity left over from truncation.
func (b *tensorBuffer[T]) compact() {
	if b.isInline || cap(b.data) == len(b.data) {
		return
	}
	trimmed := make([]T, len(b.data))
	copy(trimmed, b.data)
	b.data = trimmed
}

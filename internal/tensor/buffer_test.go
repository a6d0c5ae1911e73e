package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferInline(t *testing.T) {
	b := newTensorBuffer[float32](4, inlineCapacity)
	assert.True(t, b.isInline)
	assert.Len(t, b.data, 4)
	assert.Same(t, &b.inline[0], &b.data[0])

	heap := newTensorBuffer[float32](inlineCapacity+1, inlineCapacity)
	assert.False(t, heap.isInline)

	// A zero limit disables the inline store.
	b = newTensorBuffer[float32](1, 0)
	assert.False(t, b.isInline)

	// Limits above the inline capacity are clamped.
	b = newTensorBuffer[float32](inlineCapacity+1, 1000)
	assert.False(t, b.isInline)
}

func TestBufferResize(t *testing.T) {
	b := newTensorBuffer[int](3, inlineCapacity)
	copy(b.data, []int{1, 2, 3})

	b.resize(5)
	assert.True(t, b.isInline)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, b.data)

	b.resize(20)
	assert.False(t, b.isInline)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, b.data[:5])
	assert.Len(t, b.data, 20)

	b.data[19] = 7
	b.resize(18)
	assert.False(t, b.isInline)
	assert.Len(t, b.data, 18)

	b.resize(2)
	assert.True(t, b.isInline)
	assert.Equal(t, []int{1, 2}, b.data)

	// Growing inline again must not resurrect stale values.
	b.resize(4)
	assert.Equal(t, []int{1, 2, 0, 0}, b.data)
}

func TestBufferClone(t *testing.T) {
	for _, n := range []int{4, 40} {
		b := newTensorBuffer[int](n, inlineCapacity)
		for i := range b.data {
			b.data[i] = i
		}
		c := b.clone()
		assert.Equal(t, b.data, c.data)
		assert.Equal(t, b.isInline, c.isInline)

		c.data[0] = -1
		assert.Equal(t, 0, b.data[0], "clone of %d elements must not share storage", n)
	}
}

func TestBufferCompact(t *testing.T) {
	b := newTensorBuffer[int](40, inlineCapacity)
	b.resize(20)
	assert.Equal(t, 40, cap(b.data))

	b.compact()
	assert.Equal(t, 20, cap(b.data))
	assert.Len(t, b.data, 20)
}

package tensor

import (
	"math"
	"slices"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensors/internal/parallel"
)

// resolveReshape resolves a reshape target against the current element count.
//
// At most one target extent may be negative: that axis is inferred as count divided by
// the product of the explicit extents. Zero extents are rejected.
func resolveReshape(count int, target []int) (Shape, error) {
	extents := slices.Clone(target)
	inferred := -1
	explicit := 1
	for i, dim := range extents {
		switch {
		case dim == 0:
			return Shape{}, &BadReshapeError{Reason: ReshapeZeroExtent, Target: extents, Have: count}
		case dim < 0:
			if inferred >= 0 {
				return Shape{}, &BadReshapeError{Reason: ReshapeMultipleInferred, Target: extents, Have: count}
			}
			inferred = i
		default:
			if dim > math.MaxInt/explicit {
				return Shape{}, &BadReshapeError{Reason: ReshapeOverflow, Target: extents, Have: count}
			}
			explicit *= dim
		}
	}

	if inferred < 0 {
		if explicit != count {
			return Shape{}, &BadReshapeError{Reason: ReshapeCountMismatch, Target: extents, Have: count, Want: explicit}
		}
		return makeShape(extents), nil
	}
	if count%explicit != 0 {
		return Shape{}, &BadReshapeError{Reason: ReshapeNotDivisible, Target: extents, Have: count, Want: explicit}
	}
	extents[inferred] = count / explicit
	return makeShape(extents), nil
}

// Reshape changes the shape in place, keeping the buffer unchanged.
//
// One extent may be negative, meaning "infer this axis". The element count never changes:
// targets that would change it fail with a BadReshapeError.
//
// Example:
//
//	t, _ := tensor.Arange[float32](24)
//	_ = t.Reshape(2, -1, 4) // (2, 3, 4)
func (t *Tensor[T]) Reshape(extents ...int) error {
	if err := t.checkMutable("Reshape"); err != nil {
		return err
	}
	shape, err := resolveReshape(t.NumElements(), extents)
	if err != nil {
		return err
	}
	klog.V(2).Infof("tensor: reshape %s -> %s", t.shape, shape)
	t.shape = shape
	return nil
}

// Resize changes the shape in place to explicit extents, growing the buffer with zero
// values or truncating it from the end. Unlike Reshape, no axis is inferred.
func (t *Tensor[T]) Resize(extents ...int) error {
	if err := t.checkMutable("Resize"); err != nil {
		return err
	}
	extents = slices.Clone(extents)
	for _, dim := range extents {
		switch {
		case dim == 0:
			return &BadReshapeError{Reason: ReshapeZeroExtent, Target: extents, Have: t.NumElements()}
		case dim < 0:
			return &BadReshapeError{Reason: ReshapeNegativeExtent, Target: extents, Have: t.NumElements()}
		}
	}
	if overflowAxis(extents) >= 0 {
		return &BadReshapeError{Reason: ReshapeOverflow, Target: extents, Have: t.NumElements()}
	}
	shape := makeShape(extents)
	klog.V(2).Infof("tensor: resize %s -> %s", t.shape, shape)
	t.buf.resize(shape.NumElements())
	t.shape = shape
	return nil
}

// Ravel reshapes the tensor in place to rank 1.
func (t *Tensor[T]) Ravel() error {
	return t.Reshape(t.NumElements())
}

// Flatten returns a rank 1 copy of the tensor. The copy is not frozen.
func (t *Tensor[T]) Flatten() (*Tensor[T], error) {
	if err := t.checkReadable("Flatten"); err != nil {
		return nil, err
	}
	c := t.Copy()
	c.frozen = false
	c.shape = makeShape([]int{t.NumElements()})
	return c, nil
}

// Squeeze removes every axis of extent 1 in place. A tensor with a single element
// becomes a scalar.
func (t *Tensor[T]) Squeeze() error {
	if err := t.checkMutable("Squeeze"); err != nil {
		return err
	}
	extents := make([]int, 0, t.Rank())
	for _, dim := range t.shape.extents {
		if dim != 1 {
			extents = append(extents, dim)
		}
	}
	t.shape = makeShape(extents)
	return nil
}

// SwapAxes returns a new tensor with axes a and b exchanged and the elements moved
// accordingly, so that out[..., j, ..., i, ...] == t[..., i, ..., j, ...].
func (t *Tensor[T]) SwapAxes(a, b int) (*Tensor[T], error) {
	if err := t.checkReadable("SwapAxes"); err != nil {
		return nil, err
	}
	if err := t.shape.checkAxis(a); err != nil {
		return nil, err
	}
	if err := t.shape.checkAxis(b); err != nil {
		return nil, err
	}
	extents := t.shape.Extents()
	extents[a], extents[b] = extents[b], extents[a]
	outShape := makeShape(extents)

	// Reading the source through its strides with a and b exchanged walks it in the
	// order of the swapped layout.
	inStrides := t.shape.Strides()
	inStrides[a], inStrides[b] = inStrides[b], inStrides[a]
	outStrides := outShape.Strides()

	out := newTensor[T](outShape, t.config)
	src, dst := t.buf.data, out.buf.data
	parallel.Ranges(len(dst), t.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[sourceIndex(i, outStrides, inStrides)]
		}
	})
	return out, nil
}

// Slice returns a new tensor holding the elements selected by s, in row-major order
// of the result shape. The receiver is never modified.
func (t *Tensor[T]) Slice(s Slicer) (*Tensor[T], error) {
	if err := t.checkReadable("Slice"); err != nil {
		return nil, err
	}
	s.shape = t.shape
	if err := s.Validate(); err != nil {
		return nil, err
	}
	counts := s.counts()
	for axis, n := range counts {
		if n == 0 {
			return nil, &BadSliceError{Reason: SliceEmptyRange, Axis: axis,
				Start: s.start[axis], Stop: s.stop[axis], Extent: t.shape.extents[axis], Step: s.step}
		}
	}
	outShape := makeShape(counts)

	// Source strides scaled by the step, starting at the offset of the start corner.
	inStrides := t.shape.Strides()
	base := 0
	for axis, stride := range inStrides {
		base += s.start[axis] * stride
		inStrides[axis] = stride * s.step
	}
	outStrides := outShape.Strides()

	out := newTensor[T](outShape, t.config)
	src, dst := t.buf.data, out.buf.data
	parallel.Ranges(len(dst), t.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[base+sourceIndex(i, outStrides, inStrides)]
		}
	})
	return out, nil
}

package tensor

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/tensors/internal/parallel"
)

// resolveBinaryShape returns the common shape of two operands and whether either one
// must be broadcast. Identical shapes skip broadcasting entirely; otherwise both
// configurations must allow it and the shapes must be compatible.
func resolveBinaryShape[A, B Scalar](a *Tensor[A], b *Tensor[B]) (Shape, bool, error) {
	if a.shape.Equal(b.shape) {
		return a.shape, false, nil
	}
	if !a.config.Broadcastable() || !b.config.Broadcastable() {
		return Shape{}, false, &BroadcastError{A: a.shape.Extents(), B: b.shape.Extents(), Axis: -1}
	}
	return BroadcastShapes(a.shape, b.shape)
}

// binaryOp allocates the result of combining a and b element by element, reading size-1
// and missing axes with stride 0. Nothing is allocated when validation fails.
func binaryOp[T, R Scalar](op string, a, b *Tensor[T], fn func(x, y T) R) (*Tensor[R], error) {
	if err := a.checkReadable(op); err != nil {
		return nil, err
	}
	if err := b.checkReadable(op); err != nil {
		return nil, err
	}
	outShape, needsBroadcast, err := resolveBinaryShape(a, b)
	if err != nil {
		return nil, err
	}

	out := newTensor[R](outShape, a.config)
	dst, x, y := out.buf.data, a.buf.data, b.buf.data
	if !needsBroadcast {
		parallel.Ranges(len(dst), a.config.parallel, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = fn(x[i], y[i])
			}
		})
		return out, nil
	}

	klog.V(3).Infof("tensor: %s broadcasting %s and %s to %s", op, a.shape, b.shape, outShape)
	outStrides := outShape.Strides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)
	parallel.Ranges(len(dst), a.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(x[sourceIndex(i, outStrides, aStrides)], y[sourceIndex(i, outStrides, bStrides)])
		}
	})
	return out, nil
}

// inPlaceOp combines b into a; b must have exactly a's shape.
func inPlaceOp[T Scalar](op string, a, b *Tensor[T], fn func(x, y T) T) error {
	if err := a.checkMutable(op); err != nil {
		return err
	}
	if err := b.checkReadable(op); err != nil {
		return err
	}
	if !a.shape.Equal(b.shape) {
		return errShapeMismatch(op, a.shape, b.shape)
	}
	x, y := a.buf.data, b.buf.data
	parallel.Ranges(len(x), a.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			x[i] = fn(x[i], y[i])
		}
	})
	return nil
}

// scalarOp returns a new tensor holding fn(x, s) for every element x.
func scalarOp[T Scalar](op string, a *Tensor[T], s T, fn func(x, y T) T) (*Tensor[T], error) {
	if err := a.checkReadable(op); err != nil {
		return nil, err
	}
	out := newTensor[T](a.shape, a.config)
	src, dst := a.buf.data, out.buf.data
	parallel.Ranges(len(dst), a.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i], s)
		}
	})
	return out, nil
}

// scalarInPlaceOp replaces every element x of a with fn(x, s).
func scalarInPlaceOp[T Scalar](op string, a *Tensor[T], s T, fn func(x, y T) T) error {
	if err := a.checkMutable(op); err != nil {
		return err
	}
	x := a.buf.data
	parallel.Ranges(len(x), a.config.parallel, func(start, end int) {
		for i := start; i < end; i++ {
			x[i] = fn(x[i], s)
		}
	})
	return nil
}

func add[T Numeric](x, y T) T { return x + y }
func sub[T Numeric](x, y T) T { return x - y }
func mul[T Numeric](x, y T) T { return x * y }

// div follows T's own division: NaN or ±Inf for floats, a run-time panic for integer
// division by zero.
func div[T Numeric](x, y T) T { return x / y }

// Add returns a + b with broadcasting.
func Add[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return binaryOp("Add", a, b, add[T]) }

// Sub returns a - b with broadcasting.
func Sub[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return binaryOp("Sub", a, b, sub[T]) }

// Mul returns the element-wise product a * b with broadcasting.
func Mul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return binaryOp("Mul", a, b, mul[T]) }

// Div returns the element-wise quotient a / b with broadcasting.
func Div[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return binaryOp("Div", a, b, div[T]) }

// AddInPlace computes a += b. The shapes must be identical.
func AddInPlace[T Numeric](a, b *Tensor[T]) error { return inPlaceOp("AddInPlace", a, b, add[T]) }

// SubInPlace computes a -= b. The shapes must be identical.
func SubInPlace[T Numeric](a, b *Tensor[T]) error { return inPlaceOp("SubInPlace", a, b, sub[T]) }

// MulInPlace computes a *= b. The shapes must be identical.
func MulInPlace[T Numeric](a, b *Tensor[T]) error { return inPlaceOp("MulInPlace", a, b, mul[T]) }

// DivInPlace computes a /= b. The shapes must be identical.
func DivInPlace[T Numeric](a, b *Tensor[T]) error { return inPlaceOp("DivInPlace", a, b, div[T]) }

// AddScalar returns a + s.
func AddScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) {
	return scalarOp("AddScalar", a, s, add[T])
}

// SubScalar returns a - s.
func SubScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) {
	return scalarOp("SubScalar", a, s, sub[T])
}

// MulScalar returns a * s.
func MulScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) {
	return scalarOp("MulScalar", a, s, mul[T])
}

// DivScalar returns a / s.
func DivScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) {
	return scalarOp("DivScalar", a, s, div[T])
}

// AddScalarInPlace computes a += s.
func AddScalarInPlace[T Numeric](a *Tensor[T], s T) error {
	return scalarInPlaceOp("AddScalarInPlace", a, s, add[T])
}

// SubScalarInPlace computes a -= s.
func SubScalarInPlace[T Numeric](a *Tensor[T], s T) error {
	return scalarInPlaceOp("SubScalarInPlace", a, s, sub[T])
}

// MulScalarInPlace computes a *= s.
func MulScalarInPlace[T Numeric](a *Tensor[T], s T) error {
	return scalarInPlaceOp("MulScalarInPlace", a, s, mul[T])
}

// DivScalarInPlace computes a /= s.
func DivScalarInPlace[T Numeric](a *Tensor[T], s T) error {
	return scalarInPlaceOp("DivScalarInPlace", a, s, div[T])
}

// Greater returns a > b element-wise, with broadcasting.
func Greater[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("Greater", a, b, func(x, y T) bool { return x > y })
}

// Lower returns a < b element-wise, with broadcasting.
func Lower[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("Lower", a, b, func(x, y T) bool { return x < y })
}

// GreaterEqual returns a >= b element-wise, with broadcasting.
func GreaterEqual[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("GreaterEqual", a, b, func(x, y T) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise, with broadcasting.
func LowerEqual[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("LowerEqual", a, b, func(x, y T) bool { return x <= y })
}

// Equal returns a == b element-wise, with broadcasting.
// See Tensor.Equal for whole-tensor equality.
func Equal[T Scalar](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("Equal", a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a != b element-wise, with broadcasting.
func NotEqual[T Scalar](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binaryOp("NotEqual", a, b, func(x, y T) bool { return x != y })
}

// Clip limits every element of t to [lo, hi] in place.
func Clip[T Numeric](t *Tensor[T], lo, hi T) error {
	if err := t.checkMutable("Clip"); err != nil {
		return err
	}
	for i, v := range t.buf.data {
		t.buf.data[i] = min(max(v, lo), hi)
	}
	return nil
}

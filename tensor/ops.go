// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensors/internal/tensor"

// Element-wise arithmetic

// Add returns a + b with broadcasting.
func Add[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Sub(a, b) }

// Mul returns a * b element-wise with broadcasting.
func Mul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Mul(a, b) }

// Div returns a / b element-wise with broadcasting.
// Float division by zero gives ±Inf or NaN; integer division by zero panics.
func Div[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Div(a, b) }

// AddInPlace computes a += b. The shapes must be identical.
func AddInPlace[T Numeric](a, b *Tensor[T]) error { return tensor.AddInPlace(a, b) }

// SubInPlace computes a -= b. The shapes must be identical.
func SubInPlace[T Numeric](a, b *Tensor[T]) error { return tensor.SubInPlace(a, b) }

// MulInPlace computes a *= b. The shapes must be identical.
func MulInPlace[T Numeric](a, b *Tensor[T]) error { return tensor.MulInPlace(a, b) }

// DivInPlace computes a /= b. The shapes must be identical.
func DivInPlace[T Numeric](a, b *Tensor[T]) error { return tensor.DivInPlace(a, b) }

// Scalar operations

// AddScalar returns a + s.
func AddScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.AddScalar(a, s) }

// SubScalar returns a - s.
func SubScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.SubScalar(a, s) }

// MulScalar returns a * s.
func MulScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.MulScalar(a, s) }

// DivScalar returns a / s.
func DivScalar[T Numeric](a *Tensor[T], s T) (*Tensor[T], error) { return tensor.DivScalar(a, s) }

// AddScalarInPlace computes a += s.
func AddScalarInPlace[T Numeric](a *Tensor[T], s T) error { return tensor.AddScalarInPlace(a, s) }

// SubScalarInPlace computes a -= s.
func SubScalarInPlace[T Numeric](a *Tensor[T], s T) error { return tensor.SubScalarInPlace(a, s) }

// MulScalarInPlace computes a *= s.
func MulScalarInPlace[T Numeric](a *Tensor[T], s T) error { return tensor.MulScalarInPlace(a, s) }

// DivScalarInPlace computes a /= s.
func DivScalarInPlace[T Numeric](a *Tensor[T], s T) error { return tensor.DivScalarInPlace(a, s) }

// Clip limits every element of t to [lo, hi] in place.
func Clip[T Numeric](t *Tensor[T], lo, hi T) error { return tensor.Clip(t, lo, hi) }

// Comparison operations (return Tensor[bool])

// Greater returns a > b element-wise.
func Greater[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Greater(a, b) }

// Lower returns a < b element-wise.
func Lower[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Lower(a, b) }

// GreaterEqual returns a >= b element-wise.
func GreaterEqual[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return tensor.GreaterEqual(a, b)
}

// LowerEqual returns a <= b element-wise.
func LowerEqual[T Numeric](a, b *Tensor[T]) (*Tensor[bool], error) {
	return tensor.LowerEqual(a, b)
}

// Equal returns a == b element-wise.
func Equal[T Scalar](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Equal(a, b) }

// NotEqual returns a != b element-wise.
func NotEqual[T Scalar](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.NotEqual(a, b) }

// Reductions

// Sum returns the sum of all elements.
func Sum[T Numeric](t *Tensor[T]) (T, error) { return tensor.Sum(t) }

// SumAxis sums the lanes along axis; the result has one axis fewer.
func SumAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) { return tensor.SumAxis(t, axis) }

// Mean returns the arithmetic mean of all elements.
func Mean[T Numeric](t *Tensor[T]) (float64, error) { return tensor.Mean(t) }

// MeanAxis averages the lanes along axis.
func MeanAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[float64], error) {
	return tensor.MeanAxis(t, axis)
}

// Variance returns the population variance of all elements.
func Variance[T Numeric](t *Tensor[T]) (float64, error) { return tensor.Variance(t) }

// VarianceAxis computes the population variance of the lanes along axis.
func VarianceAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[float64], error) {
	return tensor.VarianceAxis(t, axis)
}

// Min returns the smallest element.
func Min[T Numeric](t *Tensor[T]) (T, error) { return tensor.Min(t) }

// MinAxis returns the smallest element of each lane along axis.
func MinAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) { return tensor.MinAxis(t, axis) }

// Max returns the largest element.
func Max[T Numeric](t *Tensor[T]) (T, error) { return tensor.Max(t) }

// MaxAxis returns the largest element of each lane along axis.
func MaxAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) { return tensor.MaxAxis(t, axis) }

// ArgMin returns the flat index of the first smallest element.
func ArgMin[T Numeric](t *Tensor[T]) (int, error) { return tensor.ArgMin(t) }

// ArgMinAxis returns the position of the first smallest element of each lane along axis.
func ArgMinAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[int], error) {
	return tensor.ArgMinAxis(t, axis)
}

// ArgMax returns the flat index of the first largest element.
func ArgMax[T Numeric](t *Tensor[T]) (int, error) { return tensor.ArgMax(t) }

// ArgMaxAxis returns the position of the first largest element of each lane along axis.
func ArgMaxAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[int], error) {
	return tensor.ArgMaxAxis(t, axis)
}

// PeakToPeak returns max - min over all elements.
func PeakToPeak[T Numeric](t *Tensor[T]) (T, error) { return tensor.PeakToPeak(t) }

// PeakToPeakAxis returns max - min of each lane along axis.
func PeakToPeakAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return tensor.PeakToPeakAxis(t, axis)
}

// CumSum returns the running sums of all elements, in row-major order, as a 1D tensor.
func CumSum[T Numeric](t *Tensor[T]) (*Tensor[T], error) { return tensor.CumSum(t) }

// CumSumAxis returns the running sums along axis, keeping the shape.
func CumSumAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return tensor.CumSumAxis(t, axis)
}

// CumProd returns the running products of all elements, in row-major order, as a 1D tensor.
func CumProd[T Numeric](t *Tensor[T]) (*Tensor[T], error) { return tensor.CumProd(t) }

// CumProdAxis returns the running products along axis, keeping the shape.
func CumProdAxis[T Numeric](t *Tensor[T], axis int) (*Tensor[T], error) {
	return tensor.CumProdAxis(t, axis)
}

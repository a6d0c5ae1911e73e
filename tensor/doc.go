// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense, row-major N-dimensional arrays.
//
// # Overview
//
// A Tensor[T] owns a contiguous buffer of elements of one Go scalar type and an
// immutable Shape describing how the buffer is laid out. This package provides:
//   - Construction from a shape and a fill strategy (zeros, ones, sequence, rand, randn)
//     or from caller supplied data
//   - Multi-dimensional indexing, slicing with a Slicer, reshaping and resizing
//   - Element-wise arithmetic and comparisons with NumPy-style broadcasting
//   - Whole-tensor and per-axis reductions
//   - Freezing, copying and moving of buffers
//
// # Basic Usage
//
//	import "github.com/born-ml/tensors/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.MustShape(2, 2), nil)
//	    y, _ := tensor.FromSlice([]float64{10, 20}, tensor.MustShape(2), nil)
//
//	    z, _ := tensor.Add(x, y)       // [[11 22] [13 24]]
//	    s, _ := tensor.SumAxis(z, 0)   // [24 46]
//	    _ = s
//	}
//
// # Supported Data Types
//
// Any type whose underlying type is a Go integer, float or bool can be used as T:
//   - float32, float64
//   - int, int8, int16, int32, int64
//   - uint, uint8, uint16, uint32, uint64, uintptr
//   - bool (construction, indexing, comparison results and predicates only)
//
// Arithmetic and numeric reductions require the Numeric constraint.
//
// # Broadcasting
//
// Binary operations align shapes from the trailing axis. Two extents are
// compatible when they are equal or one of them is 1; a missing leading axis counts
// as 1:
//
//	a, _ := tensor.Zeros[float32](3, 1)   // (3, 1)
//	b, _ := tensor.Ones[float32](4)       // (4)
//	c, _ := tensor.Add(a, b)              // (3, 4)
//
// Broadcasting can be disabled per tensor with WithBroadcastable(false). In-place
// operations never broadcast.
//
// # Errors
//
// Every fallible operation returns an error carrying an ErrorKind. Use KindOf, or
// errors.Is with the Err sentinels, or errors.As with the typed errors to inspect
// them. Failed operations leave their operands unchanged.
package tensor

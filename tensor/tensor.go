// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/janpfeifer/must"
	"github.com/x448/float16"

	"github.com/born-ml/tensors/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for element types that support arithmetic.
type Numeric = tensor.Numeric

// Scalar is the constraint for every supported element type: Numeric types and bool.
type Scalar = tensor.Scalar

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	InvalidDataType DataType = tensor.InvalidDataType
	Float32         DataType = tensor.Float32
	Float64         DataType = tensor.Float64
	Int             DataType = tensor.Int
	Int8            DataType = tensor.Int8
	Int16           DataType = tensor.Int16
	Int32           DataType = tensor.Int32
	Int64           DataType = tensor.Int64
	Uint            DataType = tensor.Uint
	Uint8           DataType = tensor.Uint8
	Uint16          DataType = tensor.Uint16
	Uint32          DataType = tensor.Uint32
	Uint64          DataType = tensor.Uint64
	Uintptr         DataType = tensor.Uintptr
	Bool            DataType = tensor.Bool
)

// Shape is the immutable list of extents of a tensor.
// Example: MustShape(2, 3, 4) describes a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Slicer selects a strided sub-box of a tensor.
type Slicer = tensor.Slicer

// Config holds the per-tensor policy flags. A nil *Config means DefaultConfig().
type Config = tensor.Config

// ConfigOption configures a Config.
type ConfigOption = tensor.ConfigOption

// Initializer selects the fill strategy used at construction.
type Initializer = tensor.Initializer

// Fill strategies.
const (
	InitZeros    Initializer = tensor.InitZeros
	InitOnes     Initializer = tensor.InitOnes
	InitRandn    Initializer = tensor.InitRandn
	InitRand     Initializer = tensor.InitRand
	InitSequence Initializer = tensor.InitSequence
	InitNone     Initializer = tensor.InitNone
)

// FillFunc computes the value of the element at a flat index.
type FillFunc[T Scalar] = tensor.FillFunc[T]

// Tensor is a dense, row-major N-dimensional array of T.
//
// Example:
//
//	x, _ := tensor.New[float32](tensor.MustShape(2, 3), tensor.InitSequence, nil)
//	v, _ := x.At(1, 2)  // 5
type Tensor[T Scalar] = tensor.Tensor[T]

// Shapes

// NewShape validates extents and returns the shape. No extents gives the scalar shape.
func NewShape(extents ...int) (Shape, error) {
	return tensor.NewShape(extents...)
}

// MustShape is like NewShape but panics on invalid extents. Intended for literals.
func MustShape(extents ...int) Shape {
	return must.M1(tensor.NewShape(extents...))
}

// ScalarShape returns the rank 0 shape holding one element.
func ScalarShape() Shape {
	return tensor.ScalarShape()
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag indicating whether broadcasting is needed.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.MustShape(3, 1),
//	    tensor.MustShape(3, 4),
//	)
//	// resultShape = (3, 4), needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// IsBroadcastable reports whether two shapes are broadcast-compatible.
func IsBroadcastable(a, b Shape) bool {
	return tensor.IsBroadcastable(a, b)
}

// NewSlicer validates a slicer selecting [start, stop) with step along every axis of shape.
func NewSlicer(shape Shape, start, stop []int, step int) (Slicer, error) {
	return tensor.NewSlicer(shape, start, stop, step)
}

// SliceFromBegin is NewSlicer with start at the origin.
func SliceFromBegin(shape Shape, stop []int, step int) (Slicer, error) {
	return tensor.SliceFromBegin(shape, stop, step)
}

// SliceToEnd is NewSlicer with stop at the full extents.
func SliceToEnd(shape Shape, start []int, step int) (Slicer, error) {
	return tensor.SliceToEnd(shape, start, step)
}

// Configuration

// NewConfig returns a configuration with the defaults overridden by opts.
func NewConfig(opts ...ConfigOption) *Config { return tensor.NewConfig(opts...) }

// DefaultConfig returns the shared default configuration.
func DefaultConfig() *Config { return tensor.DefaultConfig() }

// WithFreezeable controls whether Freeze is allowed.
func WithFreezeable(freezeable bool) ConfigOption { return tensor.WithFreezeable(freezeable) }

// WithBroadcastable controls whether binary operations may broadcast.
func WithBroadcastable(broadcastable bool) ConfigOption {
	return tensor.WithBroadcastable(broadcastable)
}

// WithStaticAllocationLimit sets the element count up to which buffers avoid the heap.
func WithStaticAllocationLimit(limit int) ConfigOption {
	return tensor.WithStaticAllocationLimit(limit)
}

// WithSeed makes the random initializers deterministic.
func WithSeed(seed int64) ConfigOption { return tensor.WithSeed(seed) }

// WithWorkers bounds the goroutines used by element-wise loops over large buffers.
func WithWorkers(workers int) ConfigOption { return tensor.WithWorkers(workers) }

// ParseInitializer maps a strategy name ("zeros", "ones", "randn", "rand", "sequence", "none")
// to its Initializer.
func ParseInitializer(name string) (Initializer, error) {
	return tensor.ParseInitializer(name)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Scalar]() DataType { return tensor.DataTypeOf[T]() }

// Creation functions

// New creates a tensor of the given shape filled by init.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.MustShape(2, 3), tensor.InitRandn, nil)
func New[T Scalar](shape Shape, init Initializer, cfg *Config) (*Tensor[T], error) {
	return tensor.New[T](shape, init, cfg)
}

// NewWithFill creates a tensor whose elements are computed by fn from their flat index.
func NewWithFill[T Scalar](shape Shape, fn FillFunc[T], cfg *Config) (*Tensor[T], error) {
	return tensor.NewWithFill(shape, fn, cfg)
}

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.MustShape(2, 3), nil)
func FromSlice[T Scalar](data []T, shape Shape, cfg *Config) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, cfg)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Scalar](extents ...int) (*Tensor[T], error) { return tensor.Zeros[T](extents...) }

// Ones creates a tensor filled with ones.
func Ones[T Scalar](extents ...int) (*Tensor[T], error) { return tensor.Ones[T](extents...) }

// Arange creates the 1D tensor [0, 1, ..., n-1].
func Arange[T Scalar](n int) (*Tensor[T], error) { return tensor.Arange[T](n) }

// Full creates a tensor with every element set to value.
func Full[T Scalar](value T, extents ...int) (*Tensor[T], error) {
	return tensor.Full(value, extents...)
}

// ToFloat16 exports a float tensor as IEEE 754 half precision values in row-major order.
func ToFloat16[T ~float32 | ~float64](t *Tensor[T]) ([]float16.Float16, error) {
	return tensor.ToFloat16(t)
}

// FromFloat16 creates a float32 tensor from half precision values.
func FromFloat16(data []float16.Float16, shape Shape, cfg *Config) (*Tensor[float32], error) {
	return tensor.FromFloat16(data, shape, cfg)
}

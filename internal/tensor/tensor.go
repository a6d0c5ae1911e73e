package tensor

import (
	"fmt"
	"slices"

	"k8s.io/klog/v2"
)

// Tensor is a dense, row-major N-dimensional array of T.
//
// A Tensor exclusively owns its buffer and shares its Config read-only with every
// tensor built from the same Config. It is not safe for concurrent mutation: callers
// that touch one Tensor from several goroutines must serialize access themselves.
//
// Every fallible operation validates first and only then mutates, so a failed call
// leaves the tensor untouched.
//
// Example:
//
//	shape, _ := tensor.NewShape(2, 3)
//	t, _ := tensor.New[float64](shape, tensor.InitSequence, nil)
//	v, _ := t.At(1, 2) // 5
type Tensor[T Scalar] struct {
	shape  Shape
	buf    *tensorBuffer[T]
	config *Config
	frozen bool
}

// newTensor allocates a zeroed tensor; shape must already be valid.
func newTensor[T Scalar](shape Shape, cfg *Config) *Tensor[T] {
	cfg = orDefault(cfg)
	return &Tensor[T]{
		shape:  shape,
		buf:    newTensorBuffer[T](shape.NumElements(), cfg.StaticAllocationLimit()),
		config: cfg,
	}
}

// New creates a tensor of the given shape filled by the selected strategy.
// A nil cfg means DefaultConfig().
func New[T Scalar](shape Shape, init Initializer, cfg *Config) (*Tensor[T], error) {
	if shape.IsEmpty() {
		return nil, &OperationUndefinedError{Op: "New", Reason: UndefinedEmpty}
	}
	t := newTensor[T](shape, cfg)
	if err := fill(t.buf.data, init, t.config); err != nil {
		return nil, err
	}
	klog.V(2).Infof("tensor: created %s %s with %s initializer", DataTypeOf[T](), shape, init)
	return t, nil
}

// NewWithFill creates a tensor whose elements are computed by fn.
func NewWithFill[T Scalar](shape Shape, fn FillFunc[T], cfg *Config) (*Tensor[T], error) {
	if shape.IsEmpty() {
		return nil, &OperationUndefinedError{Op: "NewWithFill", Reason: UndefinedEmpty}
	}
	t := newTensor[T](shape, cfg)
	if err := fillWith(t.buf.data, fn); err != nil {
		return nil, err
	}
	klog.V(2).Infof("tensor: created %s %s with custom fill", DataTypeOf[T](), shape)
	return t, nil
}

// FromSlice creates a tensor from explicit values in row-major order.
// The slice is copied; its length must equal the shape's element count.
func FromSlice[T Scalar](data []T, shape Shape, cfg *Config) (*Tensor[T], error) {
	if shape.IsEmpty() {
		return nil, &OperationUndefinedError{Op: "FromSlice", Reason: UndefinedEmpty}
	}
	if shape.NumElements() != len(data) {
		return nil, &BadInitShapeError{Extents: shape.Extents(), Axis: -1, DataLen: len(data)}
	}
	t := newTensor[T](shape, cfg)
	copy(t.buf.data, data)
	return t, nil
}

// Zeros creates a zero-filled tensor with the default configuration.
func Zeros[T Scalar](extents ...int) (*Tensor[T], error) {
	return newFromExtents[T](extents, InitZeros)
}

// Ones creates a tensor of ones with the default configuration.
func Ones[T Scalar](extents ...int) (*Tensor[T], error) {
	return newFromExtents[T](extents, InitOnes)
}

// Arange creates the rank 1 tensor 0, 1, ..., n-1.
func Arange[T Scalar](n int) (*Tensor[T], error) {
	return newFromExtents[T]([]int{n}, InitSequence)
}

// Full creates a tensor with every element set to value.
func Full[T Scalar](value T, extents ...int) (*Tensor[T], error) {
	t, err := newFromExtents[T](extents, InitNone)
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t, nil
}

func newFromExtents[T Scalar](extents []int, init Initializer) (*Tensor[T], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return nil, err
	}
	return New[T](shape, init, nil)
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Config returns the shared configuration.
func (t *Tensor[T]) Config() *Config {
	return t.config
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// DataType returns the runtime element type.
func (t *Tensor[T]) DataType() DataType {
	return DataTypeOf[T]()
}

// IsFrozen reports whether mutation is currently disallowed.
func (t *Tensor[T]) IsFrozen() bool {
	return t.frozen
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor[T]) Data() []T {
	return slices.Clone(t.buf.data)
}

// String returns a short description, without the elements.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%s", t.DataType(), t.shape)
}

// checkMutable fails when the tensor is frozen or has been moved out.
func (t *Tensor[T]) checkMutable(op string) error {
	if t.frozen {
		return errFrozen(op, t.shape)
	}
	return t.checkReadable(op)
}

// checkReadable fails when the tensor has been moved out.
func (t *Tensor[T]) checkReadable(op string) error {
	if t.shape.IsEmpty() {
		return &OperationUndefinedError{Op: op, Reason: UndefinedEmpty}
	}
	return nil
}

// FlatIndex converts a per-axis index tuple into the offset of the element in the
// row-major buffer: the sum over axes of index[i] * NumElements / CumulativeShape[i].
//
// Every indexed read and write goes through here.
func (t *Tensor[T]) FlatIndex(indices ...int) (int, error) {
	s := t.shape
	if len(indices) != s.Rank() {
		return 0, &BadIndexerError{Axis: -1, Rank: s.Rank(), Got: len(indices)}
	}
	flat := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= s.extents[axis] {
			return 0, &BadIndexerError{Axis: axis, Extent: s.extents[axis], Index: idx, Rank: s.Rank(), Got: len(indices)}
		}
		flat += idx * (s.count / s.cumulative[axis])
	}
	return flat, nil
}

// At returns the element at the given indices.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	var zero T
	if err := t.checkReadable("At"); err != nil {
		return zero, err
	}
	flat, err := t.FlatIndex(indices...)
	if err != nil {
		return zero, err
	}
	return t.buf.data[flat], nil
}

// Set stores value at the given indices.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	if err := t.checkMutable("Set"); err != nil {
		return err
	}
	flat, err := t.FlatIndex(indices...)
	if err != nil {
		return err
	}
	t.buf.data[flat] = value
	return nil
}

// Take gathers the elements at the given flat indices.
func (t *Tensor[T]) Take(flatIndices []int) ([]T, error) {
	if err := t.checkReadable("Take"); err != nil {
		return nil, err
	}
	n := t.NumElements()
	res := make([]T, len(flatIndices))
	for i, idx := range flatIndices {
		if idx < 0 || idx >= n {
			return nil, &BadIndexerError{Axis: 0, Extent: n, Index: idx, Rank: 1, Got: 1}
		}
		res[i] = t.buf.data[idx]
	}
	return res, nil
}

// Apply replaces every element x with fn(x).
func (t *Tensor[T]) Apply(fn func(T) T) error {
	if err := t.checkMutable("Apply"); err != nil {
		return err
	}
	for i, v := range t.buf.data {
		t.buf.data[i] = fn(v)
	}
	return nil
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	return t.shape.Equal(other.shape) && slices.Equal(t.buf.data, other.buf.data)
}

// Freeze disallows further mutation. It fails with a FreezeError, changing nothing,
// when the configuration is not freezeable.
func (t *Tensor[T]) Freeze() error {
	if !t.config.Freezeable() {
		return &FreezeError{Extents: t.shape.Extents()}
	}
	t.frozen = true
	t.buf.compact()
	klog.V(2).Infof("tensor: froze %s", t)
	return nil
}

// Unfreeze allows mutation again and reports whether the tensor was frozen.
func (t *Tensor[T]) Unfreeze() bool {
	changed := t.frozen
	t.frozen = false
	return changed
}

// Copy returns a deep clone: same shape, configuration and frozen state, separate buffer.
func (t *Tensor[T]) Copy() *Tensor[T] {
	return &Tensor[T]{
		shape:  t.shape,
		buf:    t.buf.clone(),
		config: t.config,
		frozen: t.frozen,
	}
}

// CopyTo copies this tensor's shape and elements into target.
//
// Without explicitResize the element counts must match. With it, target is first resized
// to this tensor's element count (zero padding or truncation, then overwritten).
func (t *Tensor[T]) CopyTo(target *Tensor[T], explicitResize bool) error {
	if err := t.checkReadable("CopyTo"); err != nil {
		return err
	}
	if target.frozen {
		return errFrozen("CopyTo", target.shape)
	}
	if !explicitResize && target.NumElements() != t.NumElements() {
		return &OperationUndefinedError{Op: "CopyTo", Reason: UndefinedSizeMismatch,
			Self: t.shape.Extents(), Other: target.shape.Extents()}
	}
	target.buf.resize(t.NumElements())
	target.shape = t.shape
	copy(target.buf.data, t.buf.data)
	return nil
}

// Move transfers the buffer to a new tensor and leaves t empty: every later operation
// on t fails with OperationUndefinedError until data is copied into it again with
// an explicit resize.
func (t *Tensor[T]) Move() *Tensor[T] {
	moved := &Tensor[T]{
		shape:  t.shape,
		buf:    t.buf,
		config: t.config,
		frozen: t.frozen,
	}
	t.buf = newTensorBuffer[T](0, t.config.StaticAllocationLimit())
	t.shape = Shape{}
	t.frozen = false
	return moved
}

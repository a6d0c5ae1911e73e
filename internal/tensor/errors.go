package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind enumerates the failure conditions raised by the engine.
type ErrorKind int

// Error kinds. The zero value means "not an engine error".
const (
	KindUnknown ErrorKind = iota
	KindBadInitShape
	KindBadReshape
	KindBadSlice
	KindBadIndexer
	KindAxis
	KindBroadcast
	KindOperationUndefined
	KindFreeze
	KindInitializer
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindBadInitShape:
		return "BadInitShape"
	case KindBadReshape:
		return "BadReshape"
	case KindBadSlice:
		return "BadSlice"
	case KindBadIndexer:
		return "BadIndexer"
	case KindAxis:
		return "AxisError"
	case KindBroadcast:
		return "BroadcastError"
	case KindOperationUndefined:
		return "OperationUndefined"
	case KindFreeze:
		return "Freeze"
	case KindInitializer:
		return "Initializer"
	default:
		return "Unknown"
	}
}

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrBadInitShape       = errors.New("bad init shape")
	ErrBadReshape         = errors.New("bad reshape")
	ErrBadSlice           = errors.New("bad slice")
	ErrBadIndexer         = errors.New("bad indexer")
	ErrAxis               = errors.New("axis out of range")
	ErrBroadcast          = errors.New("cannot broadcast")
	ErrOperationUndefined = errors.New("operation undefined")
	ErrFreeze             = errors.New("tensor is not freezeable")
	ErrInitializer        = errors.New("initializer failed")
)

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// BadInitShapeError reports a shape with a non-positive extent, a shape whose element
// count overflows int, or explicit data whose length does not match the shape's element
// count.
type BadInitShapeError struct {
	Extents []int
	// Axis is the first offending axis, or -1 when the failure is a data length mismatch.
	Axis    int
	DataLen int
	// Overflow is set when the running element count exceeds math.MaxInt at Axis.
	Overflow bool
}

func (e *BadInitShapeError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("invalid shape %s: element count overflows at axis %d",
			formatExtents(e.Extents), e.Axis)
	}
	if e.Axis >= 0 {
		return fmt.Sprintf("invalid shape %s: extent %d at axis %d must be > 0",
			formatExtents(e.Extents), e.Extents[e.Axis], e.Axis)
	}
	return fmt.Sprintf("shape %s requires %d elements, but got %d",
		formatExtents(e.Extents), product(e.Extents), e.DataLen)
}

// Kind implements the kind accessor.
func (e *BadInitShapeError) Kind() ErrorKind { return KindBadInitShape }

// Is matches ErrBadInitShape.
func (e *BadInitShapeError) Is(target error) bool { return target == ErrBadInitShape }

// ReshapeReason tells which reshape rule was broken.
type ReshapeReason int

// Reshape failure reasons.
const (
	ReshapeZeroExtent ReshapeReason = iota + 1
	ReshapeMultipleInferred
	ReshapeCountMismatch
	ReshapeNotDivisible
	ReshapeNegativeExtent
	ReshapeOverflow
)

// BadReshapeError reports an impossible reshape or resize target.
type BadReshapeError struct {
	Reason ReshapeReason
	Target []int
	// Have is the current element count, Want the count implied by Target's explicit extents.
	Have, Want int
}

func (e *BadReshapeError) Error() string {
	switch e.Reason {
	case ReshapeZeroExtent:
		return fmt.Sprintf("reshape target %v has a zero extent", e.Target)
	case ReshapeMultipleInferred:
		return fmt.Sprintf("reshape target %v has more than one inferred axis", e.Target)
	case ReshapeNegativeExtent:
		return fmt.Sprintf("resize target %v has a negative extent", e.Target)
	case ReshapeOverflow:
		return fmt.Sprintf("target %v overflows the element count", e.Target)
	case ReshapeNotDivisible:
		return fmt.Sprintf("cannot infer axis of %v: %d elements are not divisible by %d", e.Target, e.Have, e.Want)
	default:
		return fmt.Sprintf("cannot reshape %d elements to %v (%d elements)", e.Have, e.Target, e.Want)
	}
}

// Kind implements the kind accessor.
func (e *BadReshapeError) Kind() ErrorKind { return KindBadReshape }

// Is matches ErrBadReshape.
func (e *BadReshapeError) Is(target error) bool { return target == ErrBadReshape }

// SliceReason tells which slicer invariant was broken.
type SliceReason int

// Slice failure reasons.
const (
	SliceRankMismatch SliceReason = iota + 1
	SliceNonPositiveStep
	SliceNegativeBound
	SliceStartAfterStop
	SliceStopBeyondExtent
	SliceEmptyRange
)

// BadSliceError reports an invalid Slicer.
type BadSliceError struct {
	Reason SliceReason
	// Axis is the first offending axis; -1 for rank and step failures.
	Axis   int
	Start  int
	Stop   int
	Extent int
	Step   int
}

func (e *BadSliceError) Error() string {
	switch e.Reason {
	case SliceRankMismatch:
		return fmt.Sprintf("slicer bounds do not match the tensor rank %d", e.Extent)
	case SliceNonPositiveStep:
		return fmt.Sprintf("slice step must be positive, got %d", e.Step)
	case SliceNegativeBound:
		return fmt.Sprintf("negative slice bound at axis %d: [%d, %d)", e.Axis, e.Start, e.Stop)
	case SliceStartAfterStop:
		return fmt.Sprintf("slice start %d is after stop %d at axis %d", e.Start, e.Stop, e.Axis)
	case SliceEmptyRange:
		return fmt.Sprintf("slice [%d, %d) selects nothing at axis %d", e.Start, e.Stop, e.Axis)
	default:
		return fmt.Sprintf("slice stop %d exceeds extent %d at axis %d", e.Stop, e.Extent, e.Axis)
	}
}

// Kind implements the kind accessor.
func (e *BadSliceError) Kind() ErrorKind { return KindBadSlice }

// Is matches ErrBadSlice.
func (e *BadSliceError) Is(target error) bool { return target == ErrBadSlice }

// BadIndexerError reports an index tuple of the wrong rank or out of range.
type BadIndexerError struct {
	// Axis is the offending axis, or -1 for a rank mismatch.
	Axis   int
	Extent int
	Index  int
	Rank   int
	Got    int
}

func (e *BadIndexerError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("indexer has %d indices, tensor has rank %d", e.Got, e.Rank)
	}
	return fmt.Sprintf("index %d out of range for axis %d (extent %d)", e.Index, e.Axis, e.Extent)
}

// Kind implements the kind accessor.
func (e *BadIndexerError) Kind() ErrorKind { return KindBadIndexer }

// Is matches ErrBadIndexer.
func (e *BadIndexerError) Is(target error) bool { return target == ErrBadIndexer }

// AxisError reports a requested axis outside [0, Max].
type AxisError struct {
	Max  int
	Axis int
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("axis %d out of range, valid axes are 0..%d", e.Axis, e.Max)
}

// Kind implements the kind accessor.
func (e *AxisError) Kind() ErrorKind { return KindAxis }

// Is matches ErrAxis.
func (e *AxisError) Is(target error) bool { return target == ErrAxis }

// BroadcastError reports incompatible shapes, or an operand whose configuration forbids broadcasting.
type BroadcastError struct {
	A, B []int
	// Axis is the first incompatible axis of the aligned result, or -1 when a
	// configuration forbids broadcasting.
	Axis int
	// Overflow is set when the broadcast element count exceeds math.MaxInt at Axis.
	Overflow bool
}

func (e *BroadcastError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("broadcasting %s and %s overflows the element count at axis %d",
			formatExtents(e.A), formatExtents(e.B), e.Axis)
	}
	if e.Axis < 0 {
		return fmt.Sprintf("cannot broadcast %s and %s: tensor is configured non-broadcastable",
			formatExtents(e.A), formatExtents(e.B))
	}
	return fmt.Sprintf("shapes %s and %s are not broadcast-compatible at axis %d",
		formatExtents(e.A), formatExtents(e.B), e.Axis)
}

// Kind implements the kind accessor.
func (e *BroadcastError) Kind() ErrorKind { return KindBroadcast }

// Is matches ErrBroadcast.
func (e *BroadcastError) Is(target error) bool { return target == ErrBroadcast }

// UndefinedReason tells why an operation is undefined.
type UndefinedReason int

// Operation failure reasons.
const (
	UndefinedShapeMismatch UndefinedReason = iota + 1
	UndefinedSizeMismatch
	UndefinedFrozen
	UndefinedEmpty
)

// OperationUndefinedError reports an operation that cannot run on the given operands.
type OperationUndefinedError struct {
	Op     string
	Reason UndefinedReason
	Self   []int
	Other  []int
}

func (e *OperationUndefinedError) Error() string {
	switch e.Reason {
	case UndefinedShapeMismatch:
		return fmt.Sprintf("%s: shape %s does not match %s", e.Op, formatExtents(e.Self), formatExtents(e.Other))
	case UndefinedSizeMismatch:
		return fmt.Sprintf("%s: %d elements do not match %d elements", e.Op, product(e.Self), product(e.Other))
	case UndefinedFrozen:
		return fmt.Sprintf("%s: tensor is frozen", e.Op)
	default:
		return fmt.Sprintf("%s: tensor has no data", e.Op)
	}
}

// Kind implements the kind accessor.
func (e *OperationUndefinedError) Kind() ErrorKind { return KindOperationUndefined }

// Is matches ErrOperationUndefined.
func (e *OperationUndefinedError) Is(target error) bool { return target == ErrOperationUndefined }

// FreezeError reports a freeze request on a non-freezeable configuration.
type FreezeError struct {
	Extents []int
}

func (e *FreezeError) Error() string {
	return fmt.Sprintf("cannot freeze tensor of shape %s: configuration is not freezeable", formatExtents(e.Extents))
}

// Kind implements the kind accessor.
func (e *FreezeError) Kind() ErrorKind { return KindFreeze }

// Is matches ErrFreeze and ErrOperationUndefined, since freezing is an undefined operation
// on such tensors.
func (e *FreezeError) Is(target error) bool {
	return target == ErrFreeze || target == ErrOperationUndefined
}

// InitializerError wraps a failure of the fill strategy.
type InitializerError struct {
	Initializer Initializer
	DataType    DataType
	// Index is the flat position being filled when the strategy failed.
	Index int
	cause error
}

func (e *InitializerError) Error() string {
	return fmt.Sprintf("%s initializer failed for %s at element %d: %v", e.Initializer, e.DataType, e.Index, e.cause)
}

// Kind implements the kind accessor.
func (e *InitializerError) Kind() ErrorKind { return KindInitializer }

// Is matches ErrInitializer.
func (e *InitializerError) Is(target error) bool { return target == ErrInitializer }

// Unwrap returns the strategy's own error.
func (e *InitializerError) Unwrap() error { return e.cause }

// Cause returns the strategy's own error, for github.com/pkg/errors.Cause.
func (e *InitializerError) Cause() error { return e.cause }

func errFrozen(op string, s Shape) error {
	return &OperationUndefinedError{Op: op, Reason: UndefinedFrozen, Self: s.Extents()}
}

func errShapeMismatch(op string, a, b Shape) error {
	return &OperationUndefinedError{Op: op, Reason: UndefinedShapeMismatch, Self: a.Extents(), Other: b.Extents()}
}

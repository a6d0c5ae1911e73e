// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensors/internal/tensor"

// ErrorKind classifies the errors returned by this package.
type ErrorKind = tensor.ErrorKind

// Error kinds.
const (
	KindUnknown            ErrorKind = tensor.KindUnknown
	KindBadInitShape       ErrorKind = tensor.KindBadInitShape
	KindBadReshape         ErrorKind = tensor.KindBadReshape
	KindBadSlice           ErrorKind = tensor.KindBadSlice
	KindBadIndexer         ErrorKind = tensor.KindBadIndexer
	KindAxis               ErrorKind = tensor.KindAxis
	KindBroadcast          ErrorKind = tensor.KindBroadcast
	KindOperationUndefined ErrorKind = tensor.KindOperationUndefined
	KindFreeze             ErrorKind = tensor.KindFreeze
	KindInitializer        ErrorKind = tensor.KindInitializer
)

// Sentinels for errors.Is.
var (
	ErrBadInitShape       = tensor.ErrBadInitShape
	ErrBadReshape         = tensor.ErrBadReshape
	ErrBadSlice           = tensor.ErrBadSlice
	ErrBadIndexer         = tensor.ErrBadIndexer
	ErrAxis               = tensor.ErrAxis
	ErrBroadcast          = tensor.ErrBroadcast
	ErrOperationUndefined = tensor.ErrOperationUndefined
	ErrFreeze             = tensor.ErrFreeze
	ErrInitializer        = tensor.ErrInitializer
)

// Typed errors, for errors.As.
type (
	BadInitShapeError       = tensor.BadInitShapeError
	BadReshapeError         = tensor.BadReshapeError
	BadSliceError           = tensor.BadSliceError
	BadIndexerError         = tensor.BadIndexerError
	AxisError               = tensor.AxisError
	BroadcastError          = tensor.BroadcastError
	OperationUndefinedError = tensor.OperationUndefinedError
	FreezeError             = tensor.FreezeError
	InitializerError        = tensor.InitializerError
)

// Failure reasons carried by the typed errors.
type (
	ReshapeReason   = tensor.ReshapeReason
	SliceReason     = tensor.SliceReason
	UndefinedReason = tensor.UndefinedReason
)

// Reshape failure reasons.
const (
	ReshapeZeroExtent       = tensor.ReshapeZeroExtent
	ReshapeMultipleInferred = tensor.ReshapeMultipleInferred
	ReshapeCountMismatch    = tensor.ReshapeCountMismatch
	ReshapeNotDivisible     = tensor.ReshapeNotDivisible
	ReshapeNegativeExtent   = tensor.ReshapeNegativeExtent
	ReshapeOverflow         = tensor.ReshapeOverflow
)

// Slice failure reasons.
const (
	SliceRankMismatch     = tensor.SliceRankMismatch
	SliceNonPositiveStep  = tensor.SliceNonPositiveStep
	SliceNegativeBound    = tensor.SliceNegativeBound
	SliceStartAfterStop   = tensor.SliceStartAfterStop
	SliceStopBeyondExtent = tensor.SliceStopBeyondExtent
	SliceEmptyRange       = tensor.SliceEmptyRange
)

// Operation failure reasons.
const (
	UndefinedShapeMismatch = tensor.UndefinedShapeMismatch
	UndefinedSizeMismatch  = tensor.UndefinedSizeMismatch
	UndefinedFrozen        = tensor.UndefinedFrozen
	UndefinedEmpty         = tensor.UndefinedEmpty
)

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind { return tensor.KindOf(err) }

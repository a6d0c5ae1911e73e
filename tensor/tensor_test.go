// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensors/tensor"
)

// TestPublicAPI walks a tensor through construction, arithmetic and reduction using
// only the exported surface.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.New[int](tensor.MustShape(2, 3), tensor.InitSequence, nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int, x.DataType())

	sum, err := tensor.Sum(x)
	require.NoError(t, err)
	assert.Equal(t, 15, sum)

	mean, err := tensor.Mean(x)
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean)

	argmax, err := tensor.ArgMax(x)
	require.NoError(t, err)
	assert.Equal(t, 5, argmax)

	row, err := tensor.FromSlice([]int{10, 20, 30}, tensor.MustShape(3), nil)
	require.NoError(t, err)
	y, err := tensor.Add(x, row)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 21, 32, 13, 24, 35}, y.Data())

	require.NoError(t, y.Reshape(-1))
	assert.Equal(t, []int{6}, y.Shape().Extents())
}

func TestPublicErrors(t *testing.T) {
	_, err := tensor.NewShape(2, 0)
	assert.Equal(t, tensor.KindBadInitShape, tensor.KindOf(err))
	assert.True(t, errors.Is(err, tensor.ErrBadInitShape))

	a, err := tensor.Zeros[float32](3, 4)
	require.NoError(t, err)
	b, err := tensor.Zeros[float32](3, 5)
	require.NoError(t, err)
	_, err = tensor.Add(a, b)
	var bErr *tensor.BroadcastError
	require.True(t, errors.As(err, &bErr))
	assert.Equal(t, 1, bErr.Axis)

	err = a.Reshape(5, -1)
	var rErr *tensor.BadReshapeError
	require.True(t, errors.As(err, &rErr))
	assert.Equal(t, tensor.ReshapeNotDivisible, rErr.Reason)

	assert.Panics(t, func() { tensor.MustShape(-1) })
}

func TestPublicConfig(t *testing.T) {
	cfg := tensor.NewConfig(tensor.WithFreezeable(false), tensor.WithSeed(1))
	x, err := tensor.New[float64](tensor.MustShape(4), tensor.InitRand, cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, x.Config())

	err = x.Freeze()
	assert.Equal(t, tensor.KindFreeze, tensor.KindOf(err))
	assert.True(t, errors.Is(err, tensor.ErrOperationUndefined))

	init, err := tensor.ParseInitializer("randn")
	require.NoError(t, err)
	assert.Equal(t, tensor.InitRandn, init)
	_, err = tensor.ParseInitializer("gaussian")
	assert.Error(t, err)

	assert.Equal(t, tensor.Float32, tensor.DataTypeOf[float32]())
}

func ExampleAdd() {
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.MustShape(2, 2), nil)
	y, _ := tensor.FromSlice([]float64{10, 20}, tensor.MustShape(2), nil)

	z, _ := tensor.Add(x, y)
	fmt.Println(z.Shape(), z.Data())
	// Output: (2, 2) [11 22 13 24]
}

func ExampleSumAxis() {
	x, _ := tensor.New[int](tensor.MustShape(2, 3), tensor.InitSequence, nil)

	rows, _ := tensor.SumAxis(x, 1)
	cols, _ := tensor.SumAxis(x, 0)
	fmt.Println(rows.Data(), cols.Data())
	// Output: [3 12] [3 5 7]
}

func ExampleTensor_Slice() {
	x, _ := tensor.New[int](tensor.MustShape(4, 5), tensor.InitSequence, nil)

	s, _ := tensor.NewSlicer(x.Shape(), []int{1, 0}, []int{3, 5}, 2)
	sub, _ := x.Slice(s)
	fmt.Println(sub.Shape(), sub.Data())
	// Output: (1, 3) [5 7 9]
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/gblas/numeric"
	"github.com/born-ml/gblas/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTensorAPI exercises the public aliases end to end.
func TestTensorAPI(t *testing.T) {
	tn, err := tensor.New(tensor.Extents{100, 100}, tensor.Strides{1, 100}, 2, tensor.BFloat16)
	require.NoError(t, err)
	assert.Equal(t, uint64(20000), tn.FootprintBytes())

	require.NoError(t, tn.InitData(make([]byte, tn.FootprintBytes())))
	require.NoError(t, tn.SetFloat32At([]uint64{25, 25}, 2.5, numeric.NearestEven))

	v, err := tn.Float32At([]uint64{25, 25})
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)

	_, err = tn.ElementAtCoords([]uint64{100, 0})
	var ce *tensor.CoordinateError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 0, ce.Axis)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestRawBufferAPI(t *testing.T) {
	data := []byte{1, 2, 3}
	buf := tensor.WrapRawBuffer(data)
	assert.False(t, buf.Owned())

	dup := buf.Clone()
	assert.True(t, dup.Owned())
	assert.True(t, dup.Equal(buf))

	moved := buf.Move()
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 3, moved.Len())
	assert.Equal(t, 4, tensor.NewRawBuffer(4).Len())
}

func TestDenseHelpers(t *testing.T) {
	assert.Equal(t, tensor.Strides{6, 3, 1, 24, 24}, tensor.DenseStrides(tensor.Extents{4, 2, 3}, 3, tensor.RowMajor))

	tn, err := tensor.NewDense(tensor.Extents{4, 2, 3}, 3, tensor.Float8E4M3, tensor.RowMajor)
	require.NoError(t, err)
	assert.Equal(t, uint64(24), tn.FootprintBytes())

	var n int
	it := tn.Iterator()
	for it.Begin(); !it.Done(); it.Next() {
		n++
	}
	assert.Equal(t, 24, n)

	dt, err := tensor.ParseDataType("tf32")
	require.NoError(t, err)
	assert.Equal(t, tensor.TF32, dt)
	assert.Len(t, tensor.DataTypes(), 11)
	assert.Equal(t, 5, tensor.MaxDims)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for strided tensors.
package tensor

import (
	"github.com/born-ml/gblas/internal/tensor"
)

// MaxDims is the maximum tensor rank.
const MaxDims = tensor.MaxDims

// DataType represents the element type stored in a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8       DataType = tensor.Int8
	Float8E5M2 DataType = tensor.Float8E5M2
	Float8E4M3 DataType = tensor.Float8E4M3
	Int16      DataType = tensor.Int16
	Float16    DataType = tensor.Float16
	BFloat16   DataType = tensor.BFloat16
	Int32      DataType = tensor.Int32
	Float32    DataType = tensor.Float32
	TF32       DataType = tensor.TF32
	Int64      DataType = tensor.Int64
	Float64    DataType = tensor.Float64
)

// Layout is the axis ordering used for dense stride computation.
type Layout = tensor.Layout

// Layout constants.
const (
	RowMajor Layout = tensor.RowMajor
	ColMajor Layout = tensor.ColMajor
)

// Extents holds the number of elements along each axis.
// Slots at or past the rank are ignored.
type Extents = tensor.Extents

// Strides holds the signed element step along each axis.
type Strides = tensor.Strides

// Tensor is a strided view of a RawBuffer.
//
// Example:
//
//	t, _ := tensor.New(tensor.Extents{100, 100}, tensor.Strides{1, 100}, 2, tensor.BFloat16)
//	_ = t.InitData(make([]byte, t.FootprintBytes()))
//	b, _ := t.ElementAtCoords([]uint64{25, 25})
type Tensor = tensor.Tensor

// Iterator walks a tensor's linear indices.
type Iterator = tensor.Iterator

// CoordinateError reports a coordinate outside its axis extent.
type CoordinateError = tensor.CoordinateError

// Sentinel errors.
var (
	ErrInvalidArgument   = tensor.ErrInvalidArgument
	ErrOutOfRange        = tensor.ErrOutOfRange
	ErrContractViolation = tensor.ErrContractViolation
)

// New creates a row-major tensor descriptor without data.
func New(extents Extents, strides Strides, rank int, dtype DataType) (*Tensor, error) {
	return tensor.New(extents, strides, rank, dtype)
}

// NewWithLayout creates a tensor descriptor with an explicit layout tag.
func NewWithLayout(extents Extents, strides Strides, rank int, dtype DataType, layout Layout) (*Tensor, error) {
	return tensor.NewWithLayout(extents, strides, rank, dtype, layout)
}

// NewDense creates a tensor with dense strides for layout and allocates its
// buffer.
//
// Example:
//
//	t, _ := tensor.NewDense(tensor.Extents{2, 3, 4}, 3, tensor.Float16, tensor.ColMajor)
func NewDense(extents Extents, rank int, dtype DataType, layout Layout) (*Tensor, error) {
	return tensor.NewDense(extents, rank, dtype, layout)
}

// DenseStrides returns contiguous strides for extents in the given layout.
func DenseStrides(extents Extents, rank int, layout Layout) Strides {
	return tensor.DenseStrides(extents, rank, layout)
}

// DataTypes lists every supported data type.
func DataTypes() []DataType {
	return tensor.DataTypes()
}

// ParseDataType resolves a data type by name, e.g. "bf16" or "fp8_e4m3".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// ParseLayout resolves "row-major" or "col-major".
func ParseLayout(s string) (Layout, error) {
	return tensor.ParseLayout(s)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides element-wise BLAS-style operations over tensors.
//
// Example:
//
//	x, _ := tensor.NewDense(tensor.Extents{1024}, 1, tensor.BFloat16, tensor.RowMajor)
//	y, _ := tensor.NewDense(tensor.Extents{1024}, 1, tensor.BFloat16, tensor.RowMajor)
//	err := ops.Axpy(0.5, x, y, y, numeric.NearestEven) // y = 0.5*x + y
package ops

import (
	"github.com/born-ml/gblas/internal/ops"
	"github.com/born-ml/gblas/numeric"
	"github.com/born-ml/gblas/tensor"
)

// Axpy computes out = alpha*x + y element-wise.
//
// All operands must share rank, extents and a floating-point data type.
// Results are stored through the narrow-format codec with mode. Mismatched
// operands return an error wrapping tensor.ErrInvalidArgument.
func Axpy(alpha float32, x, y, out *tensor.Tensor, mode numeric.RoundingMode) error {
	return ops.Axpy(alpha, x, y, out, mode)
}

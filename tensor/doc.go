// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided N-dimensional views over raw byte buffers.
//
// # Overview
//
// A Tensor describes up to MaxDims axes with an extent and a signed element
// stride per axis, plus an element data type. It does not own its memory
// layout: strides are arbitrary, so padded rows, broadcasts (stride 0),
// reversed axes and transposes are all plain Tensors.
//
//   - RawBuffer: a fixed-size byte region, owned or wrapped
//   - Tensor: extents, strides, rank, data type and an optional RawBuffer
//   - Iterator: walks linear indices 0 .. NumElements()-1
//
// # Basic Usage
//
//	import "github.com/born-ml/gblas/tensor"
//
//	func main() {
//	    t, _ := tensor.NewDense(tensor.Extents{2, 3}, 2, tensor.BFloat16, tensor.RowMajor)
//	    _ = t.SetFloat32At([]uint64{1, 2}, 3.14, numeric.NearestEven)
//
//	    for i, b := range t.All() {
//	        fmt.Println(i, b)
//	    }
//	}
//
// # Footprint
//
// FootprintBytes is (Σ (extent-1)*|stride| + 1) * ElementSize, or 0 when any
// extent is zero. Data bound with InitData must be at least that long.
//
// # Errors
//
// Addressing failures wrap ErrInvalidArgument, ErrOutOfRange or
// ErrContractViolation and can be tested with errors.Is.
package tensor

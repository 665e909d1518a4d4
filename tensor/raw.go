// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gblas/internal/tensor"
)

// RawBuffer owns zero or one contiguous byte region of fixed size.
//
// RawBuffer provides:
//   - Explicit deep copies via Clone()
//   - Ownership transfer via Move(), which empties the source
//   - Direct byte access via Bytes(), At() and Slice()
//
// Example:
//
//	buf := tensor.NewRawBuffer(64)
//	dup := buf.Clone()   // Independent copy
//	moved := buf.Move()  // buf.Len() == 0 afterwards
type RawBuffer = tensor.RawBuffer

// NewRawBuffer allocates a zeroed, owned region of size bytes.
func NewRawBuffer(size int) *RawBuffer {
	return tensor.NewRawBuffer(size)
}

// WrapRawBuffer binds caller memory without copying it.
func WrapRawBuffer(data []byte) *RawBuffer {
	return tensor.WrapRawBuffer(data)
}

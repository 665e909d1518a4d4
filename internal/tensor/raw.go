package tensor

import (
	"bytes"
	"fmt"
)

// RawBuffer owns zero or one contiguous byte region of fixed size.
//
// Copies are explicit (Clone) and deep. Move hands the region to a new
// RawBuffer and leaves the source empty; an empty buffer has length zero and
// panics on element access.
type RawBuffer struct {
	data  []byte
	owned bool // false when the region was supplied by the caller
}

// NewRawBuffer allocates a zeroed region of size bytes.
func NewRawBuffer(size int) *RawBuffer {
	if size < 0 {
		panic(fmt.Sprintf("tensor: negative buffer size %d", size))
	}
	return &RawBuffer{
		data:  make([]byte, size),
		owned: true,
	}
}

// WrapRawBuffer binds an externally supplied region without copying it.
// Writes through the buffer are visible to the caller's slice.
func WrapRawBuffer(data []byte) *RawBuffer {
	return &RawBuffer{
		data:  data[:len(data):len(data)],
		owned: false,
	}
}

// Len returns the region size in bytes.
func (b *RawBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no region.
func (b *RawBuffer) IsEmpty() bool {
	return b == nil || b.data == nil
}

// Owned reports whether the region was allocated by NewRawBuffer or Clone.
func (b *RawBuffer) Owned() bool {
	return b != nil && b.owned
}

// Bytes returns the whole region.
// WARNING: Direct access to underlying memory.
func (b *RawBuffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// At returns a pointer to byte i. i must be in [0, Len()).
func (b *RawBuffer) At(i int) *byte {
	b.mustHoldData()
	return &b.data[i]
}

// Slice returns the n bytes starting at off, sharing memory with the buffer.
func (b *RawBuffer) Slice(off, n int) []byte {
	b.mustHoldData()
	return b.data[off : off+n : off+n]
}

// Clone returns an independent deep copy. Cloning an empty buffer returns an
// empty buffer.
func (b *RawBuffer) Clone() *RawBuffer {
	if b.IsEmpty() {
		return &RawBuffer{}
	}
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &RawBuffer{data: data, owned: true}
}

// Move transfers the region to a new RawBuffer and leaves b empty.
func (b *RawBuffer) Move() *RawBuffer {
	moved := &RawBuffer{data: b.data, owned: b.owned}
	b.data = nil
	b.owned = false
	return moved
}

// Release drops the region. Owned memory becomes garbage; caller supplied
// memory is left untouched.
func (b *RawBuffer) Release() {
	b.data = nil
	b.owned = false
}

// Equal reports whether both buffers have the same size and byte content.
func (b *RawBuffer) Equal(other *RawBuffer) bool {
	if b.Len() != other.Len() {
		return false
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// String returns a short description of the buffer.
func (b *RawBuffer) String() string {
	return fmt.Sprintf("RawBuffer(size=%d, owned=%t)", b.Len(), b.Owned())
}

func (b *RawBuffer) mustHoldData() {
	if b.IsEmpty() {
		panic("tensor: access to an empty or moved-from buffer")
	}
}

package tensor

import "fmt"

// Tensor is an N-dimensional (N <= MaxDims) strided view over a RawBuffer.
//
// Shape metadata is fixed at construction; memory is bound afterwards with
// InitData or Allocate. A Tensor is not safe for concurrent mutation.
//
// Example:
//
//	t, _ := tensor.New(tensor.Extents{100, 100, 1, 1, 1}, tensor.Strides{1, 100, 10000, 10000, 10000}, 2, tensor.Int32)
//	t.Allocate()
//	b, _ := t.ElementAtCoords([]uint64{25, 25}) // bytes of element (25, 25)
type Tensor struct {
	extents Extents
	strides Strides
	rank    int
	dtype   DataType
	layout  Layout
	buffer  *RawBuffer
}

// New creates a row-major tagged tensor without data.
func New(extents Extents, strides Strides, rank int, dtype DataType) (*Tensor, error) {
	return NewWithLayout(extents, strides, rank, dtype, RowMajor)
}

// NewWithLayout creates a tensor without data.
func NewWithLayout(extents Extents, strides Strides, rank int, dtype DataType, layout Layout) (*Tensor, error) {
	if err := validateRank(rank); err != nil {
		return nil, err
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: data type %d", ErrInvalidArgument, int(dtype))
	}
	if !layout.Valid() {
		return nil, fmt.Errorf("%w: layout %d", ErrInvalidArgument, int(layout))
	}

	return &Tensor{
		extents: extents,
		strides: strides,
		rank:    rank,
		dtype:   dtype,
		layout:  layout,
	}, nil
}

// NewDense creates a packed tensor for the given layout and allocates its
// buffer.
func NewDense(extents Extents, rank int, dtype DataType, layout Layout) (*Tensor, error) {
	if err := validateRank(rank); err != nil {
		return nil, err
	}
	t, err := NewWithLayout(extents, DenseStrides(extents, rank, layout), rank, dtype, layout)
	if err != nil {
		return nil, err
	}
	t.Allocate()
	return t, nil
}

// Rank returns the number of meaningful axes.
func (t *Tensor) Rank() int { return t.rank }

// DType returns the element data type.
func (t *Tensor) DType() DataType { return t.dtype }

// Layout returns the layout tag.
func (t *Tensor) Layout() Layout { return t.layout }

// Extents returns all extent slots, including those beyond the rank.
func (t *Tensor) Extents() Extents { return t.extents }

// Strides returns all stride slots, including those beyond the rank.
func (t *Tensor) Strides() Strides { return t.strides }

// Extent returns the extent of one axis.
func (t *Tensor) Extent(axis int) uint64 { return t.extents[axis] }

// Stride returns the stride of one axis, in elements.
func (t *Tensor) Stride(axis int) int64 { return t.strides[axis] }

// ElementSize returns the byte size of one element.
func (t *Tensor) ElementSize() int { return t.dtype.Size() }

// NumElements returns the product of the first Rank() extents.
func (t *Tensor) NumElements() uint64 {
	return t.extents.NumElements(t.rank)
}

// FootprintBytes returns the minimum buffer size that holds every element
// reachable through the strides: (sum((extent-1)*|stride|) + 1) * elementSize.
// It is zero for a tensor with an empty axis.
func (t *Tensor) FootprintBytes() uint64 {
	return footprintElements(t.extents, t.strides, t.rank) * uint64(t.dtype.Size())
}

// InitData binds caller-owned memory. data must hold at least
// FootprintBytes() bytes; only that prefix is used.
func (t *Tensor) InitData(data []byte) error {
	need := t.FootprintBytes()
	if uint64(len(data)) < need {
		return fmt.Errorf("%w: data has %d bytes, tensor needs %d", ErrInvalidArgument, len(data), need)
	}
	t.buffer = WrapRawBuffer(data[:need])
	return nil
}

// Allocate binds a zeroed, tensor-owned buffer of FootprintBytes() bytes.
func (t *Tensor) Allocate() {
	t.buffer = NewRawBuffer(int(t.FootprintBytes()))
}

// Buffer returns the bound buffer, or nil before InitData/Allocate.
func (t *Tensor) Buffer() *RawBuffer { return t.buffer }

// Release drops the bound buffer.
func (t *Tensor) Release() {
	if t.buffer != nil {
		t.buffer.Release()
		t.buffer = nil
	}
}

// ElementAt returns the bytes of the element at linear index, located at
// index*ElementSize() in the buffer. The index is trusted as a flat offset;
// it is only checked against NumElements() and the buffer length.
func (t *Tensor) ElementAt(index uint64) ([]byte, error) {
	if index >= t.NumElements() {
		return nil, fmt.Errorf("%w: linear index %d >= %d elements", ErrContractViolation, index, t.NumElements())
	}
	return t.bytesAt(index * uint64(t.dtype.Size()))
}

// OffsetOf resolves a coordinate vector to a byte offset into the buffer.
// coords must have exactly Rank() entries, each below its axis extent.
func (t *Tensor) OffsetOf(coords []uint64) (uint64, error) {
	if len(coords) != t.rank {
		return 0, fmt.Errorf("%w: %d coordinates for rank %d tensor", ErrInvalidArgument, len(coords), t.rank)
	}

	offset := int64(baseOffset(t.extents, t.strides, t.rank))
	for axis, c := range coords {
		if c >= t.extents[axis] {
			return 0, &CoordinateError{Axis: axis, Coord: c, Extent: t.extents[axis]}
		}
		offset += int64(c) * t.strides[axis]
	}
	return uint64(offset) * uint64(t.dtype.Size()), nil
}

// ElementAtCoords returns the bytes of the element at coords.
func (t *Tensor) ElementAtCoords(coords []uint64) ([]byte, error) {
	offset, err := t.OffsetOf(coords)
	if err != nil {
		return nil, err
	}
	return t.bytesAt(offset)
}

// Coordinates maps a linear index back to a coordinate vector.
//
// The index is decomposed by extent, treating the axis with the smallest
// absolute stride as the fastest varying. For any packed tensor this makes
// ElementAtCoords(Coordinates(i)) and ElementAt(i) address the same bytes.
// It fails with ErrOutOfRange when index >= NumElements().
func (t *Tensor) Coordinates(index uint64) ([]uint64, error) {
	coords := make([]uint64, t.rank)
	rest := index
	for _, axis := range axesByStride(t.strides, t.rank) {
		extent := t.extents[axis]
		if extent == 0 {
			return nil, fmt.Errorf("linear index %d: %w", index, &CoordinateError{Axis: axis, Coord: 0, Extent: 0})
		}
		coords[axis] = rest % extent
		rest /= extent
	}
	if rest != 0 {
		return nil, fmt.Errorf("%w: linear index %d exceeds %d elements", ErrOutOfRange, index, t.NumElements())
	}
	return coords, nil
}

// Equal reports structural equality: extents, strides, rank, data type,
// layout and buffer content. A nil other is never equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil {
		return false
	}
	if t.extents != other.extents || t.strides != other.strides || t.rank != other.rank ||
		t.dtype != other.dtype || t.layout != other.layout {
		return false
	}
	if t.buffer == nil || other.buffer == nil {
		return t.buffer == nil && other.buffer == nil
	}
	return t.buffer.Equal(other.buffer)
}

// Clone returns a tensor with the same metadata and a deep copy of the data.
func (t *Tensor) Clone() *Tensor {
	c := *t
	if t.buffer != nil {
		c.buffer = t.buffer.Clone()
	}
	return &c
}

// String returns a short description of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s, extents=%v, strides=%v, %s)",
		t.dtype, t.extents[:t.rank], t.strides[:t.rank], t.layout)
}

func (t *Tensor) bytesAt(offset uint64) ([]byte, error) {
	if t.buffer.IsEmpty() {
		return nil, fmt.Errorf("%w: tensor has no bound data", ErrContractViolation)
	}
	size := uint64(t.dtype.Size())
	if offset+size > uint64(t.buffer.Len()) {
		return nil, fmt.Errorf("%w: byte offset %d beyond %d-byte buffer", ErrContractViolation, offset, t.buffer.Len())
	}
	return t.buffer.Slice(int(offset), int(size)), nil
}

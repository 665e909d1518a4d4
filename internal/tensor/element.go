package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/gblas/internal/numeric"
)

// LoadFloat64 decodes one little-endian element of type dt from b.
// Narrow formats go through the numeric codec; integers convert exactly up to
// 2^53.
func (dt DataType) LoadFloat64(b []byte) float64 {
	switch dt {
	case Int8:
		return float64(int8(b[0]))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Int64:
		return float64(int64(binary.LittleEndian.Uint64(b)))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	case Float8E5M2, Float8E4M3:
		return float64(dt.Format().Decode(uint32(b[0])))
	case Float16, BFloat16:
		return float64(dt.Format().Decode(uint32(binary.LittleEndian.Uint16(b))))
	case TF32:
		return float64(dt.Format().Decode(binary.LittleEndian.Uint32(b)))
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// StoreFloat64 encodes v as one little-endian element of type dt into b.
// Narrow formats round v to float32 first and then apply mode. Integers are
// truncated toward zero and saturate at the type's limits; NaN stores 0.
func (dt DataType) StoreFloat64(b []byte, v float64, mode numeric.RoundingMode) {
	switch dt {
	case Int8:
		b[0] = byte(int8(saturate(v, math.MinInt8, math.MaxInt8)))
	case Int16:
		binary.LittleEndian.PutUint16(b, uint16(int16(saturate(v, math.MinInt16, math.MaxInt16))))
	case Int32:
		binary.LittleEndian.PutUint32(b, uint32(int32(saturate(v, math.MinInt32, math.MaxInt32))))
	case Int64:
		binary.LittleEndian.PutUint64(b, uint64(saturate(v, math.MinInt64, math.MaxInt64)))
	case Float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	case Float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	case Float8E5M2, Float8E4M3:
		b[0] = byte(dt.Format().Encode(float32(v), mode))
	case Float16, BFloat16:
		binary.LittleEndian.PutUint16(b, uint16(dt.Format().Encode(float32(v), mode)))
	case TF32:
		binary.LittleEndian.PutUint32(b, dt.Format().Encode(float32(v), mode))
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// saturate truncates v toward zero and clamps it to [lo, hi].
func saturate(v float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	default:
		return int64(v)
	}
}

// Float32At decodes the element at coords.
func (t *Tensor) Float32At(coords []uint64) (float32, error) {
	b, err := t.ElementAtCoords(coords)
	if err != nil {
		return 0, err
	}
	return float32(t.dtype.LoadFloat64(b)), nil
}

// SetFloat32At encodes v into the element at coords.
func (t *Tensor) SetFloat32At(coords []uint64, v float32, mode numeric.RoundingMode) error {
	b, err := t.ElementAtCoords(coords)
	if err != nil {
		return err
	}
	t.dtype.StoreFloat64(b, float64(v), mode)
	return nil
}

// Float64At decodes the element at coords without narrowing to float32.
func (t *Tensor) Float64At(coords []uint64) (float64, error) {
	b, err := t.ElementAtCoords(coords)
	if err != nil {
		return 0, err
	}
	return t.dtype.LoadFloat64(b), nil
}

// SetFloat64At encodes v into the element at coords.
func (t *Tensor) SetFloat64At(coords []uint64, v float64, mode numeric.RoundingMode) error {
	b, err := t.ElementAtCoords(coords)
	if err != nil {
		return err
	}
	t.dtype.StoreFloat64(b, v, mode)
	return nil
}

// viewLen is the number of whole elements in the bound buffer.
func (t *Tensor) viewLen() int {
	return t.buffer.Len() / t.dtype.Size()
}

// AsFloat32 interprets the buffer as []float32, covering the whole footprint.
// Panics if the tensor's dtype is not Float32, no data is bound, or the
// buffer is not aligned to the element size.
//
// The As* views use native byte order while Float32At and SetFloat32At use
// little-endian; the two agree only on little-endian hosts.
func (t *Tensor) AsFloat32() []float32 {
	t.mustView(Float32)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounded by the buffer length
	return unsafe.Slice((*float32)(unsafe.Pointer(t.buffer.At(0))), t.viewLen())
}

// AsInt32 interprets the buffer as []int32.
// Panics if the tensor's dtype is not Int32 or no data is bound.
func (t *Tensor) AsInt32() []int32 {
	t.mustView(Int32)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounded by the buffer length
	return unsafe.Slice((*int32)(unsafe.Pointer(t.buffer.At(0))), t.viewLen())
}

// AsBFloat16 interprets the buffer as []numeric.BFloat16.
func (t *Tensor) AsBFloat16() []numeric.BFloat16 {
	t.mustView(BFloat16)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounded by the buffer length
	return unsafe.Slice((*numeric.BFloat16)(unsafe.Pointer(t.buffer.At(0))), t.viewLen())
}

// AsFloat16 interprets the buffer as []numeric.Float16.
func (t *Tensor) AsFloat16() []numeric.Float16 {
	t.mustView(Float16)
	//nolint:gosec // unsafe.Slice for zero-copy access, bounded by the buffer length
	return unsafe.Slice((*numeric.Float16)(unsafe.Pointer(t.buffer.At(0))), t.viewLen())
}

func (t *Tensor) mustView(want DataType) {
	if t.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", t.dtype, want))
	}
	if t.buffer.IsEmpty() || t.buffer.Len() == 0 {
		panic("tensor has no bound data")
	}
	//nolint:gosec // alignment check only
	if addr := uintptr(unsafe.Pointer(t.buffer.At(0))); addr%uintptr(want.Size()) != 0 {
		panic(fmt.Sprintf("tensor data at %#x is not aligned for %s", addr, want))
	}
}

package tensor

import "fmt"

// MaxDims is the largest supported rank.
const MaxDims = 5

// Extents holds the number of elements along each axis. Slots at or beyond
// the rank are ignored and conventionally 1.
type Extents [MaxDims]uint64

// Strides holds the element step along each axis. Negative strides walk an
// axis backwards.
type Strides [MaxDims]int64

// NumElements returns the product of the first rank extents.
func (e Extents) NumElements(rank int) uint64 {
	n := uint64(1)
	for _, dim := range e[:rank] {
		n *= dim
	}
	return n
}

// DenseStrides returns the strides of a packed tensor. RowMajor makes the
// last axis contiguous (stride 1); ColMajor makes the first axis contiguous.
// Slots at or beyond the rank receive the element count, so they never alias
// an in-range offset.
func DenseStrides(e Extents, rank int, layout Layout) Strides {
	var s Strides
	step := int64(1)
	if layout == ColMajor {
		for i := 0; i < rank; i++ {
			s[i] = step
			step *= int64(e[i])
		}
	} else {
		for i := rank - 1; i >= 0; i-- {
			s[i] = step
			step *= int64(e[i])
		}
	}
	for i := rank; i < MaxDims; i++ {
		s[i] = step
	}
	return s
}

// footprintElements returns the number of elements between the lowest and
// the highest reachable offset, inclusive.
func footprintElements(e Extents, s Strides, rank int) uint64 {
	if e.NumElements(rank) == 0 {
		return 0
	}
	var span uint64
	for i := 0; i < rank; i++ {
		span += (e[i] - 1) * absInt64(s[i])
	}
	return span + 1
}

// baseOffset is the element offset of coordinate zero inside the footprint:
// axes with negative strides start at their far end.
func baseOffset(e Extents, s Strides, rank int) uint64 {
	var base uint64
	for i := 0; i < rank; i++ {
		if s[i] < 0 && e[i] > 0 {
			base += (e[i] - 1) * absInt64(s[i])
		}
	}
	return base
}

// axesByStride returns the axis indices ordered from the smallest to the
// largest absolute stride. Ties keep axis order.
func axesByStride(s Strides, rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = i
	}
	// Insertion sort: rank is at most MaxDims.
	for i := 1; i < rank; i++ {
		for j := i; j > 0 && absInt64(s[axes[j]]) < absInt64(s[axes[j-1]]); j-- {
			axes[j], axes[j-1] = axes[j-1], axes[j]
		}
	}
	return axes
}

func validateRank(rank int) error {
	if rank < 1 || rank > MaxDims {
		return fmt.Errorf("%w: rank %d (must be in [1, %d])", ErrInvalidArgument, rank, MaxDims)
	}
	return nil
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

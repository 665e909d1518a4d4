package numeric

import (
	"github.com/born-ml/gblas/internal/parallel"
	"golang.org/x/exp/constraints"
)

// EncodeSlice narrows src into dst element by element. T is the storage type
// of the target (uint8, uint16 or uint32, or one of the value types defined in
// this package). Only min(len(dst), len(src)) elements are converted; the
// count is returned.
//
// Large slices are split across goroutines; the codec holds no shared state.
func EncodeSlice[T constraints.Unsigned](f *Format, dst []T, src []float32, mode RoundingMode) int {
	n := min(len(dst), len(src))
	parallel.Range(n, parallel.DefaultConfig(), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = T(f.Encode(src[i], mode))
		}
	})
	return n
}

// DecodeSlice widens src into dst. It returns the number of converted elements.
func DecodeSlice[T constraints.Unsigned](f *Format, dst []float32, src []T) int {
	n := min(len(dst), len(src))
	parallel.Range(n, parallel.DefaultConfig(), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f.Decode(uint32(src[i]))
		}
	})
	return n
}

// ToBFloat16s encodes a float32 slice with round-to-nearest-even.
func ToBFloat16s(src []float32) []BFloat16 {
	dst := make([]BFloat16, len(src))
	EncodeSlice(FormatBF16, dst, src, NearestEven)
	return dst
}

// ToFloat16s encodes a float32 slice with round-to-nearest-even.
func ToFloat16s(src []float32) []Float16 {
	dst := make([]Float16, len(src))
	EncodeSlice(FormatFP16, dst, src, NearestEven)
	return dst
}

// Float32s decodes a slice of any narrow value type.
func Float32s[T interface {
	constraints.Unsigned
	NarrowFloat
}](src []T) []float32 {
	dst := make([]float32, len(src))
	if len(src) == 0 {
		return dst
	}
	DecodeSlice(src[0].Format(), dst, src)
	return dst
}

package numeric

import (
	"cmp"
	"fmt"
)

// NarrowFloat is implemented by every narrow value type.
type NarrowFloat interface {
	fmt.Stringer

	// Format returns the descriptor of the value's bit layout.
	Format() *Format
	// Uint32 returns the raw bit pattern widened to 32 bits.
	Uint32() uint32
	// Float32 decodes the value.
	Float32() float32

	IsZero() bool
	IsInf() bool
	IsNaN() bool
	IsNegative() bool
}

var (
	_ NarrowFloat = BFloat16(0)
	_ NarrowFloat = Float16(0)
	_ NarrowFloat = TF32(0)
	_ NarrowFloat = Float8E5M2(0)
	_ NarrowFloat = Float8E4M3(0)
)

// Compare orders two narrow values by their decoded float32 value. NaN sorts
// before every other value, and -0 equals +0, as with cmp.Compare.
func Compare(a, b NarrowFloat) int {
	return cmp.Compare(a.Float32(), b.Float32())
}

// Less reports whether x is numerically smaller than y. It is false when
// either value is NaN.
func Less[T NarrowFloat](x, y T) bool {
	return x.Float32() < y.Float32()
}

// EqualFloat reports whether x decodes to exactly f.
func EqualFloat(x NarrowFloat, f float32) bool {
	return x.Float32() == f
}

// LessFloat reports whether x decodes to a value smaller than f.
func LessFloat(x NarrowFloat, f float32) bool {
	return x.Float32() < f
}

// GreaterFloat reports whether x decodes to a value greater than f.
func GreaterFloat(x NarrowFloat, f float32) bool {
	return x.Float32() > f
}

// SameBits reports whether a and b share format and raw bit pattern.
func SameBits(a, b NarrowFloat) bool {
	return a.Format() == b.Format() && a.Uint32() == b.Uint32()
}

func formatValue(v NarrowFloat) string {
	return fmt.Sprintf("%g", v.Float32())
}

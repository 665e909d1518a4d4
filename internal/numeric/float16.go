package numeric

import "github.com/x448/float16"

// Float16 is an IEEE 754 half precision value: 1 sign, 5 exponent and 10
// mantissa bits.
type Float16 uint16

// Float16 constants.
const (
	Float16Max    Float16 = 0x7BFF // 65504
	Float16Min    Float16 = 0x0400 // Smallest positive normal, 2^-14.
	Float16Lowest Float16 = 0xFBFF
	Float16Inf    Float16 = 0x7C00
	Float16NegInf Float16 = 0xFC00
	Float16NaN    Float16 = 0x7E00
)

// Float16FromX448 converts from the github.com/x448/float16 representation.
// The bit pattern is shared, so no rounding takes place.
func Float16FromX448(v float16.Float16) Float16 {
	return Float16(v.Bits())
}

// X448 returns x as a github.com/x448/float16 value.
func (x Float16) X448() float16.Float16 {
	return float16.Frombits(uint16(x))
}

// NewFloat16 encodes v with round-to-nearest-even.
func NewFloat16(v float32) Float16 {
	return Float16(FormatFP16.Encode(v, NearestEven))
}

// NewFloat16WithMode encodes v with the given rounding mode.
func NewFloat16WithMode(v float32, mode RoundingMode) Float16 {
	return Float16(FormatFP16.Encode(v, mode))
}

// Float16FromBits wraps a raw bit pattern.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the raw bit pattern.
func (x Float16) Bits() uint16 { return uint16(x) }

// Uint32 returns the raw bit pattern widened to 32 bits.
func (x Float16) Uint32() uint32 { return uint32(x) }

// Format returns FormatFP16.
func (x Float16) Format() *Format { return FormatFP16 }

// Float32 decodes x.
func (x Float16) Float32() float32 { return FormatFP16.Decode(uint32(x)) }

// IsZero reports whether x is +0 or -0.
func (x Float16) IsZero() bool { return FormatFP16.IsZero(uint32(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x Float16) IsInf() bool { return FormatFP16.IsInf(uint32(x)) }

// IsNaN reports whether x is a NaN with any payload.
func (x Float16) IsNaN() bool { return FormatFP16.IsNaN(uint32(x)) }

// IsNegative reports whether the sign bit of x is set.
func (x Float16) IsNegative() bool { return FormatFP16.IsNegative(uint32(x)) }

// Equal reports bit identity. -0 and +0 differ; NaN equals itself.
func (x Float16) Equal(y Float16) bool { return x == y }

// String formats the decoded value.
func (x Float16) String() string { return formatValue(x) }

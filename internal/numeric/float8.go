package numeric

// Float8E5M2 is an 8-bit float with 1 sign, 5 exponent and 2 mantissa bits
// (bias 15).
type Float8E5M2 uint8

// Float8E5M2 constants.
const (
	Float8E5M2Max    Float8E5M2 = 0x7B // 57344
	Float8E5M2Min    Float8E5M2 = 0x04 // 2^-14
	Float8E5M2Lowest Float8E5M2 = 0xFB
	Float8E5M2Inf    Float8E5M2 = 0x7C
	Float8E5M2NegInf Float8E5M2 = 0xFC
	Float8E5M2NaN    Float8E5M2 = 0x7E
)

// Float8E4M3 is an 8-bit float with 1 sign, 4 exponent and 3 mantissa bits
// (bias 7). Exponent 15 is reserved for infinity and NaN.
type Float8E4M3 uint8

// Float8E4M3 constants.
const (
	Float8E4M3Max    Float8E4M3 = 0x77 // 240
	Float8E4M3Min    Float8E4M3 = 0x08 // 2^-6
	Float8E4M3Lowest Float8E4M3 = 0xF7
	Float8E4M3Inf    Float8E4M3 = 0x78
	Float8E4M3NegInf Float8E4M3 = 0xF8
	Float8E4M3NaN    Float8E4M3 = 0x7C
)

// NewFloat8E5M2 encodes v with round-to-nearest-even.
func NewFloat8E5M2(v float32) Float8E5M2 {
	return Float8E5M2(FormatE5M2.Encode(v, NearestEven))
}

// NewFloat8E5M2WithMode encodes v with the given rounding mode.
func NewFloat8E5M2WithMode(v float32, mode RoundingMode) Float8E5M2 {
	return Float8E5M2(FormatE5M2.Encode(v, mode))
}

// Float8E5M2FromBits wraps a raw bit pattern.
func Float8E5M2FromBits(bits uint8) Float8E5M2 {
	return Float8E5M2(bits)
}

// Bits returns the raw bit pattern.
func (x Float8E5M2) Bits() uint8 { return uint8(x) }

// Uint32 returns the raw bit pattern widened to 32 bits.
func (x Float8E5M2) Uint32() uint32 { return uint32(x) }

// Format returns FormatE5M2.
func (x Float8E5M2) Format() *Format { return FormatE5M2 }

// Float32 decodes x.
func (x Float8E5M2) Float32() float32 { return FormatE5M2.Decode(uint32(x)) }

// IsZero reports whether x is +0 or -0.
func (x Float8E5M2) IsZero() bool { return FormatE5M2.IsZero(uint32(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x Float8E5M2) IsInf() bool { return FormatE5M2.IsInf(uint32(x)) }

// IsNaN reports whether x is a NaN with any payload.
func (x Float8E5M2) IsNaN() bool { return FormatE5M2.IsNaN(uint32(x)) }

// IsNegative reports whether the sign bit of x is set.
func (x Float8E5M2) IsNegative() bool { return FormatE5M2.IsNegative(uint32(x)) }

// Equal reports bit identity. -0 and +0 differ; NaN equals itself.
func (x Float8E5M2) Equal(y Float8E5M2) bool { return x == y }

// String formats the decoded value.
func (x Float8E5M2) String() string { return formatValue(x) }

// NewFloat8E4M3 encodes v with round-to-nearest-even.
func NewFloat8E4M3(v float32) Float8E4M3 {
	return Float8E4M3(FormatE4M3.Encode(v, NearestEven))
}

// NewFloat8E4M3WithMode encodes v with the given rounding mode.
func NewFloat8E4M3WithMode(v float32, mode RoundingMode) Float8E4M3 {
	return Float8E4M3(FormatE4M3.Encode(v, mode))
}

// Float8E4M3FromBits wraps a raw bit pattern.
func Float8E4M3FromBits(bits uint8) Float8E4M3 {
	return Float8E4M3(bits)
}

// Bits returns the raw bit pattern.
func (x Float8E4M3) Bits() uint8 { return uint8(x) }

// Uint32 returns the raw bit pattern widened to 32 bits.
func (x Float8E4M3) Uint32() uint32 { return uint32(x) }

// Format returns FormatE4M3.
func (x Float8E4M3) Format() *Format { return FormatE4M3 }

// Float32 decodes x.
func (x Float8E4M3) Float32() float32 { return FormatE4M3.Decode(uint32(x)) }

// IsZero reports whether x is +0 or -0.
func (x Float8E4M3) IsZero() bool { return FormatE4M3.IsZero(uint32(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x Float8E4M3) IsInf() bool { return FormatE4M3.IsInf(uint32(x)) }

// IsNaN reports whether x is a NaN with any payload.
func (x Float8E4M3) IsNaN() bool { return FormatE4M3.IsNaN(uint32(x)) }

// IsNegative reports whether the sign bit of x is set.
func (x Float8E4M3) IsNegative() bool { return FormatE4M3.IsNegative(uint32(x)) }

// Equal reports bit identity. -0 and +0 differ; NaN equals itself.
func (x Float8E4M3) Equal(y Float8E4M3) bool { return x == y }

// String formats the decoded value.
func (x Float8E4M3) String() string { return formatValue(x) }

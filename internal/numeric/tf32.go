package numeric

// TF32 is a TensorFloat-32 value held in the float32 layout: 1 sign, 8
// exponent and 10 effective mantissa bits. The low 13 bits of a value built
// by encoding are always zero, so a TF32 can be reinterpreted as a float32.
type TF32 uint32

// TF32 constants.
const (
	TF32Max    TF32 = 0x7F7FE000
	TF32Min    TF32 = 0x00800000 // Smallest positive normal, 2^-126.
	TF32Lowest TF32 = 0xFF7FE000
	TF32Inf    TF32 = 0x7F800000
	TF32NegInf TF32 = 0xFF800000
	TF32NaN    TF32 = 0x7FC00000
)

// NewTF32 encodes v with round-to-nearest-even.
func NewTF32(v float32) TF32 {
	return TF32(FormatTF32.Encode(v, NearestEven))
}

// NewTF32WithMode encodes v with the given rounding mode.
func NewTF32WithMode(v float32, mode RoundingMode) TF32 {
	return TF32(FormatTF32.Encode(v, mode))
}

// TF32FromBits wraps a raw bit pattern.
func TF32FromBits(bits uint32) TF32 {
	return TF32(bits)
}

// Bits returns the raw bit pattern.
func (x TF32) Bits() uint32 { return uint32(x) }

// Uint32 returns the raw bit pattern widened to 32 bits.
func (x TF32) Uint32() uint32 { return uint32(x) }

// Format returns FormatTF32.
func (x TF32) Format() *Format { return FormatTF32 }

// Float32 decodes x.
func (x TF32) Float32() float32 { return FormatTF32.Decode(uint32(x)) }

// IsZero reports whether x is +0 or -0.
func (x TF32) IsZero() bool { return FormatTF32.IsZero(uint32(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x TF32) IsInf() bool { return FormatTF32.IsInf(uint32(x)) }

// IsNaN reports whether x is a NaN with any payload.
func (x TF32) IsNaN() bool { return FormatTF32.IsNaN(uint32(x)) }

// IsNegative reports whether the sign bit of x is set.
func (x TF32) IsNegative() bool { return FormatTF32.IsNegative(uint32(x)) }

// Equal reports bit identity. -0 and +0 differ; NaN equals itself.
func (x TF32) Equal(y TF32) bool { return x == y }

// String formats the decoded value.
func (x TF32) String() string { return formatValue(x) }

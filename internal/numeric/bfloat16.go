package numeric

// BFloat16 is a brain-float16 value: 1 sign, 8 exponent and 7 mantissa bits.
// It keeps the float32 exponent range at reduced precision.
type BFloat16 uint16

// BFloat16 constants.
const (
	BFloat16Max    BFloat16 = 0x7F7F // 3.3895314e38
	BFloat16Min    BFloat16 = 0x0080 // Smallest positive normal, 2^-126.
	BFloat16Lowest BFloat16 = 0xFF7F
	BFloat16Inf    BFloat16 = 0x7F80
	BFloat16NegInf BFloat16 = 0xFF80
	BFloat16NaN    BFloat16 = 0x7FC0
)

// NewBFloat16 encodes v with round-to-nearest-even.
func NewBFloat16(v float32) BFloat16 {
	return BFloat16(FormatBF16.Encode(v, NearestEven))
}

// NewBFloat16WithMode encodes v with the given rounding mode.
func NewBFloat16WithMode(v float32, mode RoundingMode) BFloat16 {
	return BFloat16(FormatBF16.Encode(v, mode))
}

// BFloat16FromBits wraps a raw bit pattern.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw bit pattern.
func (x BFloat16) Bits() uint16 { return uint16(x) }

// Uint32 returns the raw bit pattern widened to 32 bits.
func (x BFloat16) Uint32() uint32 { return uint32(x) }

// Format returns FormatBF16.
func (x BFloat16) Format() *Format { return FormatBF16 }

// Float32 decodes x.
func (x BFloat16) Float32() float32 { return FormatBF16.Decode(uint32(x)) }

// IsZero reports whether x is +0 or -0.
func (x BFloat16) IsZero() bool { return FormatBF16.IsZero(uint32(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x BFloat16) IsInf() bool { return FormatBF16.IsInf(uint32(x)) }

// IsNaN reports whether x is a NaN with any payload.
func (x BFloat16) IsNaN() bool { return FormatBF16.IsNaN(uint32(x)) }

// IsNegative reports whether the sign bit of x is set.
func (x BFloat16) IsNegative() bool { return FormatBF16.IsNegative(uint32(x)) }

// Equal reports bit identity. -0 and +0 differ; NaN equals itself.
func (x BFloat16) Equal(y BFloat16) bool { return x == y }

// String formats the decoded value.
func (x BFloat16) String() string { return formatValue(x) }

package numeric

import (
	"fmt"
	"strings"
)

// float32 layout.
const (
	f32MantissaBits = 23
	f32ExpMask      = 0xFF
	f32Bias         = 127
	f32Implicit     = 1 << f32MantissaBits
	f32ManMask      = f32Implicit - 1
	f32InfBits      = 0x7F800000
	f32NaNBits      = 0x7FC00000
)

// Format describes one narrow floating-point bit layout: field widths, bias
// and the fixed patterns reserved for infinity and NaN, plus the patterns of
// its extrema. Patterns are stored without the sign bit.
type Format struct {
	name     string
	width    uint // storage bits
	expBits  uint
	manBits  uint
	manShift uint // zero bits below the mantissa (tf32 keeps the fp32 layout)
	bias     int

	inf    uint32
	nan    uint32
	max    uint32
	min    uint32
	lowest uint32 // includes the sign bit
}

// Format descriptors.
var (
	FormatBF16 = &Format{
		name: "bf16", width: 16, expBits: 8, manBits: 7, bias: 127,
		inf: 0x7F80, nan: 0x7FC0, max: 0x7F7F, min: 0x0080, lowest: 0xFF7F,
	}
	FormatFP16 = &Format{
		name: "fp16", width: 16, expBits: 5, manBits: 10, bias: 15,
		inf: 0x7C00, nan: 0x7E00, max: 0x7BFF, min: 0x0400, lowest: 0xFBFF,
	}
	FormatTF32 = &Format{
		name: "tf32", width: 32, expBits: 8, manBits: 10, manShift: 13, bias: 127,
		inf: 0x7F800000, nan: 0x7FC00000, max: 0x7F7FE000, min: 0x00800000, lowest: 0xFF7FE000,
	}
	FormatE5M2 = &Format{
		name: "e5m2", width: 8, expBits: 5, manBits: 2, bias: 15,
		inf: 0x7C, nan: 0x7E, max: 0x7B, min: 0x04, lowest: 0xFB,
	}
	FormatE4M3 = &Format{
		name: "e4m3", width: 8, expBits: 4, manBits: 3, bias: 7,
		inf: 0x78, nan: 0x7C, max: 0x77, min: 0x08, lowest: 0xF7,
	}
)

// Formats returns every supported format.
func Formats() []*Format {
	return []*Format{FormatBF16, FormatFP16, FormatTF32, FormatE5M2, FormatE4M3}
}

// ParseFormat looks a format up by name. Besides the canonical names it
// accepts "bfloat16", "float16", "half", "fp8_152", "fp8-e5m2", "fp8_143"
// and "fp8-e4m3".
func ParseFormat(name string) (*Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bf16", "bfloat16":
		return FormatBF16, nil
	case "fp16", "float16", "half":
		return FormatFP16, nil
	case "tf32":
		return FormatTF32, nil
	case "e5m2", "fp8_e5m2", "fp8_152", "fp8-e5m2":
		return FormatE5M2, nil
	case "e4m3", "fp8_e4m3", "fp8_143", "fp8-e4m3":
		return FormatE4M3, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// Name returns the canonical short name of the format.
func (f *Format) Name() string { return f.name }

// String implements fmt.Stringer.
func (f *Format) String() string { return f.name }

// Width returns the storage width in bits.
func (f *Format) Width() uint { return f.width }

// ExponentBits returns the exponent field width.
func (f *Format) ExponentBits() uint { return f.expBits }

// MantissaBits returns the number of effective mantissa bits.
func (f *Format) MantissaBits() uint { return f.manBits }

// Bias returns the exponent bias.
func (f *Format) Bias() int { return f.bias }

// InfBits returns the reserved infinity pattern with the given sign.
func (f *Format) InfBits(negative bool) uint32 { return f.withSign(f.inf, negative) }

// NaNBits returns the reserved NaN pattern produced by encoding a NaN.
func (f *Format) NaNBits(negative bool) uint32 { return f.withSign(f.nan, negative) }

// MaxBits returns the pattern of the largest finite value.
func (f *Format) MaxBits() uint32 { return f.max }

// MinBits returns the pattern of the smallest positive normal value.
func (f *Format) MinBits() uint32 { return f.min }

// LowestBits returns the pattern of the most negative finite value.
func (f *Format) LowestBits() uint32 { return f.lowest }

// Max returns the largest finite value.
func (f *Format) Max() float32 { return f.Decode(f.max) }

// Min returns the smallest positive normal value.
func (f *Format) Min() float32 { return f.Decode(f.min) }

// Lowest returns the most negative finite value.
func (f *Format) Lowest() float32 { return f.Decode(f.lowest) }

// SmallestSubnormal returns the smallest positive value the format can hold.
func (f *Format) SmallestSubnormal() float32 { return f.Decode(1 << f.manShift) }

func (f *Format) signShift() uint  { return f.width - 1 }
func (f *Format) signMask() uint32 { return 1 << f.signShift() }
func (f *Format) expShift() uint   { return f.manBits + f.manShift }
func (f *Format) expMask() uint32  { return 1<<f.expBits - 1 }
func (f *Format) manMask() uint32  { return 1<<f.manBits - 1 }

// maxBiased is the largest exponent field of a finite value; the all-ones
// field is reserved for infinity and NaN.
func (f *Format) maxBiased() int { return int(f.expMask()) - 1 }

func (f *Format) withSign(bits uint32, negative bool) uint32 {
	if negative {
		return bits | f.signMask()
	}
	return bits
}

func (f *Format) fields(bits uint32) (sign, exp, man uint32) {
	sign = (bits >> f.signShift()) & 1
	exp = (bits >> f.expShift()) & f.expMask()
	man = (bits >> f.manShift) & f.manMask()
	return sign, exp, man
}

// IsZero reports whether bits encode positive or negative zero.
func (f *Format) IsZero(bits uint32) bool {
	_, exp, man := f.fields(bits)
	return exp == 0 && man == 0
}

// IsInf reports whether bits encode an infinity of either sign.
func (f *Format) IsInf(bits uint32) bool {
	_, exp, man := f.fields(bits)
	return exp == f.expMask() && man == 0
}

// IsNaN reports whether bits encode a NaN, whatever its payload.
func (f *Format) IsNaN(bits uint32) bool {
	_, exp, man := f.fields(bits)
	return exp == f.expMask() && man != 0
}

// IsNegative reports whether the sign bit is set.
func (f *Format) IsNegative(bits uint32) bool {
	return bits&f.signMask() != 0
}

package numeric

import "math"

// Encode narrows v to the format's bit pattern using the given rounding mode.
// The result occupies the low Width() bits.
//
// Zeros, infinities and NaN map to the reserved patterns regardless of mode.
// Values whose exponent exceeds the format's range become signed infinity;
// values below the smallest subnormal become signed zero. Values between the
// smallest subnormal and the smallest normal are encoded as subnormals.
func (f *Format) Encode(v float32, mode RoundingMode) uint32 {
	in := math.Float32bits(v)
	negative := in>>31 != 0
	exp := int(in>>f32MantissaBits) & f32ExpMask
	man := in & f32ManMask

	switch {
	case exp == f32ExpMask && man != 0:
		return f.NaNBits(negative)
	case exp == f32ExpMask:
		return f.InfBits(negative)
	case exp == 0 && man == 0:
		return f.withSign(0, negative)
	}

	// Normalize to sig in [2^23, 2^24) with unbiased exponent e.
	sig := man | f32Implicit
	e := exp - f32Bias
	if exp == 0 {
		sig = man
		e = 1 - f32Bias
		for sig&f32Implicit == 0 {
			sig <<= 1
			e--
		}
	}

	biased := e + f.bias
	if biased > f.maxBiased() {
		return f.InfBits(negative)
	}

	shift := f32MantissaBits - f.manBits
	if biased < 1 {
		// Subnormal target: the implicit bit moves into the mantissa field.
		shift += uint(1 - biased)
		if shift > f32MantissaBits {
			return f.withSign(0, negative)
		}
		biased = 0
	}

	kept := sig >> shift
	round := (sig>>(shift-1))&1 != 0
	sticky := sig&(1<<(shift-1)-1) != 0
	if mode.incrementMagnitude(negative, kept&1 != 0, round, sticky) {
		kept++
	}

	switch {
	case biased > 0 && kept>>(f.manBits+1) != 0:
		// Mantissa overflow: the kept bits are now exactly 2^(manBits+1).
		biased++
		if biased > f.maxBiased() {
			return f.InfBits(negative)
		}
	case biased == 0 && kept>>f.manBits != 0:
		// A subnormal rounded up into the smallest normal.
		biased = 1
	}

	out := uint32(biased)<<f.expShift() | (kept&f.manMask())<<f.manShift
	return f.withSign(out, negative)
}

// Decode widens a bit pattern of this format to float32. Bits above Width()
// and, for tf32, below the effective mantissa are ignored.
func (f *Format) Decode(bits uint32) float32 {
	sign, exp, man := f.fields(bits)
	out := sign << 31

	switch {
	case exp == f.expMask() && man != 0:
		return math.Float32frombits(f32NaNBits)
	case exp == f.expMask():
		return math.Float32frombits(out | f32InfBits)
	case exp == 0 && man == 0:
		return math.Float32frombits(out)
	}

	e := int(exp) - f.bias
	if exp == 0 {
		// Subnormal: shift until the implicit bit appears.
		e = 1 - f.bias
		for man&(1<<f.manBits) == 0 {
			man <<= 1
			e--
		}
		man &= f.manMask()
	}

	biased := e + f32Bias
	man32 := man << (f32MantissaBits - f.manBits)
	if biased < 1 {
		// Below the float32 normal range; only tf32 subnormals land here and
		// they are float32 subnormals as well.
		man32 = (man32 | f32Implicit) >> uint(1-biased)
		biased = 0
	}
	return math.Float32frombits(out | uint32(biased)<<f32MantissaBits | man32)
}

// Round narrows v to the format and widens it back, returning the nearest
// representable float32 under mode.
func (f *Format) Round(v float32, mode RoundingMode) float32 {
	return f.Decode(f.Encode(v, mode))
}

// Float32ToBF16 encodes v as brain-float16.
func Float32ToBF16(v float32, mode RoundingMode) uint16 {
	return uint16(FormatBF16.Encode(v, mode))
}

// BF16ToFloat32 decodes a brain-float16 pattern.
func BF16ToFloat32(bits uint16) float32 {
	return FormatBF16.Decode(uint32(bits))
}

// Float32ToFP16 encodes v as IEEE half precision.
func Float32ToFP16(v float32, mode RoundingMode) uint16 {
	return uint16(FormatFP16.Encode(v, mode))
}

// FP16ToFloat32 decodes an IEEE half precision pattern.
func FP16ToFloat32(bits uint16) float32 {
	return FormatFP16.Decode(uint32(bits))
}

// Float32ToTF32 encodes v as tf32 stored in the float32 layout.
func Float32ToTF32(v float32, mode RoundingMode) uint32 {
	return FormatTF32.Encode(v, mode)
}

// TF32ToFloat32 decodes a tf32 pattern.
func TF32ToFloat32(bits uint32) float32 {
	return FormatTF32.Decode(bits)
}

// Float32ToE5M2 encodes v as 8-bit float with 5 exponent and 2 mantissa bits.
func Float32ToE5M2(v float32, mode RoundingMode) uint8 {
	return uint8(FormatE5M2.Encode(v, mode))
}

// E5M2ToFloat32 decodes an e5m2 pattern.
func E5M2ToFloat32(bits uint8) float32 {
	return FormatE5M2.Decode(uint32(bits))
}

// Float32ToE4M3 encodes v as 8-bit float with 4 exponent and 3 mantissa bits.
func Float32ToE4M3(v float32, mode RoundingMode) uint8 {
	return uint8(FormatE4M3.Encode(v, mode))
}

// E4M3ToFloat32 decodes an e4m3 pattern.
func E4M3ToFloat32(bits uint8) float32 {
	return FormatE4M3.Decode(uint32(bits))
}

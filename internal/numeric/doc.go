// Package numeric converts between float32 and the narrow floating-point
// formats used by ML kernels.
//
// Supported formats:
//
//	format  width  exponent  mantissa  bias
//	bf16    16     8         7         127
//	fp16    16     5         10        15
//	tf32    32     8         10        127   (low 13 mantissa bits are zero)
//	e5m2    8      5         2         15
//	e4m3    8      4         3         7
//
// Every format is described by a *Format value. Encoding is total: NaN,
// infinities and zeros map to reserved bit patterns, magnitudes above the
// largest finite value saturate to signed infinity and magnitudes below the
// smallest subnormal flush to signed zero. Decoding is total as well; all NaN
// payloads collapse to one canonical float32 NaN.
//
// Each format also has a value type (BFloat16, Float16, TF32, Float8E5M2,
// Float8E4M3) whose storage is exactly the format's width, so slices of these
// types can be reinterpreted as raw tensor memory bit for bit.
//
// Example:
//
//	h := numeric.NewFloat16(3.14159)               // nearest-even
//	d := numeric.NewBFloat16WithMode(3.14159, numeric.TowardZero)
//	fmt.Println(h.Float32(), d.Float32())        // 3.140625 3.140625
//
// All functions are pure and safe for concurrent use.
package numeric

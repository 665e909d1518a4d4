// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numeric

import (
	"github.com/born-ml/gblas/internal/numeric"
	"golang.org/x/exp/constraints"
)

// RoundingMode selects how a value between two representable neighbours is
// resolved.
type RoundingMode = numeric.RoundingMode

// Rounding modes.
const (
	NearestEven  RoundingMode = numeric.NearestEven
	RoundUp      RoundingMode = numeric.RoundUp
	RoundDown    RoundingMode = numeric.RoundDown
	AwayFromZero RoundingMode = numeric.AwayFromZero
	TowardZero   RoundingMode = numeric.TowardZero
)

// Format describes one narrow floating-point encoding.
type Format = numeric.Format

// Format descriptors.
var (
	FormatBF16 = numeric.FormatBF16
	FormatFP16 = numeric.FormatFP16
	FormatTF32 = numeric.FormatTF32
	FormatE5M2 = numeric.FormatE5M2
	FormatE4M3 = numeric.FormatE4M3
)

// Narrow value types. Each is stored in exactly its format width.
type (
	BFloat16   = numeric.BFloat16
	Float16    = numeric.Float16
	TF32       = numeric.TF32
	Float8E5M2 = numeric.Float8E5M2
	Float8E4M3 = numeric.Float8E4M3
)

// NarrowFloat is implemented by every narrow value type.
type NarrowFloat = numeric.NarrowFloat

// Reserved and extreme values.
const (
	BFloat16Max    = numeric.BFloat16Max
	BFloat16Lowest = numeric.BFloat16Lowest
	BFloat16Inf    = numeric.BFloat16Inf
	BFloat16NaN    = numeric.BFloat16NaN

	Float16Max    = numeric.Float16Max
	Float16Lowest = numeric.Float16Lowest
	Float16Inf    = numeric.Float16Inf
	Float16NaN    = numeric.Float16NaN

	Float8E5M2Max = numeric.Float8E5M2Max
	Float8E5M2Inf = numeric.Float8E5M2Inf
	Float8E5M2NaN = numeric.Float8E5M2NaN

	Float8E4M3Max = numeric.Float8E4M3Max
	Float8E4M3Inf = numeric.Float8E4M3Inf
	Float8E4M3NaN = numeric.Float8E4M3NaN
)

// Formats lists the five format descriptors.
func Formats() []*Format { return numeric.Formats() }

// ParseFormat looks a descriptor up by name, e.g. "bf16" or "e4m3".
func ParseFormat(name string) (*Format, error) { return numeric.ParseFormat(name) }

// RoundingModes lists every rounding mode.
func RoundingModes() []RoundingMode { return numeric.RoundingModes() }

// ParseRoundingMode resolves a rounding mode by name, e.g. "nearest-even".
func ParseRoundingMode(s string) (RoundingMode, error) { return numeric.ParseRoundingMode(s) }

// Scalar conversions.

// Float32ToBF16 encodes v as bf16.
func Float32ToBF16(v float32, mode RoundingMode) uint16 { return numeric.Float32ToBF16(v, mode) }

// BF16ToFloat32 decodes a bf16 pattern.
func BF16ToFloat32(bits uint16) float32 { return numeric.BF16ToFloat32(bits) }

// Float32ToFP16 encodes v as IEEE half precision.
func Float32ToFP16(v float32, mode RoundingMode) uint16 { return numeric.Float32ToFP16(v, mode) }

// FP16ToFloat32 decodes a half precision pattern.
func FP16ToFloat32(bits uint16) float32 { return numeric.FP16ToFloat32(bits) }

// Float32ToTF32 encodes v as tf32 in a 32-bit container.
func Float32ToTF32(v float32, mode RoundingMode) uint32 { return numeric.Float32ToTF32(v, mode) }

// TF32ToFloat32 decodes a tf32 pattern.
func TF32ToFloat32(bits uint32) float32 { return numeric.TF32ToFloat32(bits) }

// Float32ToE5M2 encodes v as fp8 e5m2.
func Float32ToE5M2(v float32, mode RoundingMode) uint8 { return numeric.Float32ToE5M2(v, mode) }

// E5M2ToFloat32 decodes an fp8 e5m2 pattern.
func E5M2ToFloat32(bits uint8) float32 { return numeric.E5M2ToFloat32(bits) }

// Float32ToE4M3 encodes v as fp8 e4m3.
func Float32ToE4M3(v float32, mode RoundingMode) uint8 { return numeric.Float32ToE4M3(v, mode) }

// E4M3ToFloat32 decodes an fp8 e4m3 pattern.
func E4M3ToFloat32(bits uint8) float32 { return numeric.E4M3ToFloat32(bits) }

// Value constructors.

// NewBFloat16 encodes v with round-to-nearest-even.
func NewBFloat16(v float32) BFloat16 { return numeric.NewBFloat16(v) }

// NewFloat16 encodes v with round-to-nearest-even.
func NewFloat16(v float32) Float16 { return numeric.NewFloat16(v) }

// NewTF32 encodes v with round-to-nearest-even.
func NewTF32(v float32) TF32 { return numeric.NewTF32(v) }

// NewFloat8E5M2 encodes v with round-to-nearest-even.
func NewFloat8E5M2(v float32) Float8E5M2 { return numeric.NewFloat8E5M2(v) }

// NewFloat8E4M3 encodes v with round-to-nearest-even.
func NewFloat8E4M3(v float32) Float8E4M3 { return numeric.NewFloat8E4M3(v) }

// Compare orders two narrow values numerically.
func Compare(a, b NarrowFloat) int { return numeric.Compare(a, b) }

// Less reports whether x is numerically smaller than y.
func Less[T NarrowFloat](x, y T) bool { return numeric.Less(x, y) }

// EqualFloat reports whether x decodes to exactly f.
func EqualFloat(x NarrowFloat, f float32) bool { return numeric.EqualFloat(x, f) }

// LessFloat reports whether x decodes to a value smaller than f.
func LessFloat(x NarrowFloat, f float32) bool { return numeric.LessFloat(x, f) }

// GreaterFloat reports whether x decodes to a value greater than f.
func GreaterFloat(x NarrowFloat, f float32) bool { return numeric.GreaterFloat(x, f) }

// Bulk conversions.

// EncodeSlice encodes min(len(dst), len(src)) values and returns the count.
func EncodeSlice[T constraints.Unsigned](f *Format, dst []T, src []float32, mode RoundingMode) int {
	return numeric.EncodeSlice(f, dst, src, mode)
}

// DecodeSlice decodes min(len(dst), len(src)) patterns and returns the count.
func DecodeSlice[T constraints.Unsigned](f *Format, dst []float32, src []T) int {
	return numeric.DecodeSlice(f, dst, src)
}

// ToBFloat16s encodes src with round-to-nearest-even.
func ToBFloat16s(src []float32) []BFloat16 { return numeric.ToBFloat16s(src) }

// ToFloat16s encodes src with round-to-nearest-even.
func ToFloat16s(src []float32) []Float16 { return numeric.ToFloat16s(src) }

// Float32s decodes a slice of any narrow value type.
func Float32s[T interface {
	constraints.Unsigned
	NarrowFloat
}](src []T) []float32 {
	return numeric.Float32s(src)
}

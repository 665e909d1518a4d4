// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric converts between float32 and narrow floating-point formats.
//
// # Formats
//
//	name      width  exp  mantissa  bias
//	bf16      16     8    7         127
//	fp16      16     5    10        15
//	tf32      32     8    10        127   (19 significant bits, low 13 zero)
//	fp8_e5m2  8      5    2         15
//	fp8_e4m3  8      4    3         7     (IEEE-style; max finite 240)
//
// Every encoder takes a RoundingMode. Overflow always produces signed
// infinity, values below the smallest subnormal flush to signed zero, and NaN
// encodes to the format's canonical NaN with the input sign.
//
// # Basic Usage
//
//	h := numeric.NewBFloat16(3.14159)          // 0x4049
//	f := h.Float32()                           // 3.140625
//	b := numeric.Float32ToE4M3(1.1, numeric.RoundUp)
//
//	dst := make([]uint16, len(src))
//	numeric.EncodeSlice(numeric.FormatFP16, dst, src, numeric.NearestEven)
package numeric

// Package tensor provides strided N-dimensional views over raw byte buffers.
package tensor

import (
	"fmt"
	"strings"

	"github.com/born-ml/gblas/internal/numeric"
)

// DataType represents the element type stored in a tensor.
type DataType int

// Supported data types.
const (
	Int8 DataType = iota
	Float8E5M2
	Float8E4M3
	Int16
	Float16
	BFloat16
	Int32
	Float32
	TF32
	Int64
	Float64
)

// DataTypes lists every data type in declaration order.
func DataTypes() []DataType {
	return []DataType{Int8, Float8E5M2, Float8E4M3, Int16, Float16, BFloat16, Int32, Float32, TF32, Int64, Float64}
}

// Size returns the byte size of one element.
// It panics for a value outside the enumeration.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Float8E5M2, Float8E4M3:
		return 1
	case Int16, Float16, BFloat16:
		return 2
	case Int32, Float32, TF32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// Valid reports whether dt is one of the declared data types.
func (dt DataType) Valid() bool {
	return dt >= Int8 && dt <= Float64
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	switch dt {
	case Float8E5M2, Float8E4M3, Float16, BFloat16, Float32, TF32, Float64:
		return true
	default:
		return false
	}
}

// Format returns the narrow format descriptor backing dt, or nil when dt is
// an integer type, float32 or float64.
func (dt DataType) Format() *numeric.Format {
	switch dt {
	case Float8E5M2:
		return numeric.FormatE5M2
	case Float8E4M3:
		return numeric.FormatE4M3
	case Float16:
		return numeric.FormatFP16
	case BFloat16:
		return numeric.FormatBF16
	case TF32:
		return numeric.FormatTF32
	default:
		return nil
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Float8E5M2:
		return "fp8_e5m2"
	case Float8E4M3:
		return "fp8_e4m3"
	case Int16:
		return "int16"
	case Float16:
		return "fp16"
	case BFloat16:
		return "bf16"
	case Int32:
		return "int32"
	case Float32:
		return "fp32"
	case TF32:
		return "tf32"
	case Int64:
		return "int64"
	case Float64:
		return "fp64"
	default:
		return "unknown"
	}
}

// ParseDataType resolves a data type from its String() name. The aliases
// "float16", "bfloat16", "float32", "float64", "e5m2" and "e4m3" are
// accepted too.
func ParseDataType(s string) (DataType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "float16", "half":
		return Float16, nil
	case "bfloat16":
		return BFloat16, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "e5m2", "fp8_152":
		return Float8E5M2, nil
	case "e4m3", "fp8_143":
		return Float8E4M3, nil
	}
	for _, dt := range DataTypes() {
		if dt.String() == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown data type %q", ErrInvalidArgument, s)
}

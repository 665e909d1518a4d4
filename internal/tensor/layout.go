package tensor

import "fmt"

// Layout tags the intended memory order of a tensor. It is informational:
// offsets are always computed from the explicit strides.
type Layout int

// Supported layouts.
const (
	RowMajor Layout = iota
	ColMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Valid reports whether l is a declared layout.
func (l Layout) Valid() bool {
	return l == RowMajor || l == ColMajor
}

// ParseLayout resolves "row-major"/"row" or "col-major"/"col".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "row-major", "row", "rowmajor":
		return RowMajor, nil
	case "col-major", "col", "colmajor", "column-major":
		return ColMajor, nil
	default:
		return RowMajor, fmt.Errorf("%w: unknown layout %q", ErrInvalidArgument, s)
	}
}

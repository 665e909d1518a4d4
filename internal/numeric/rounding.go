package numeric

import (
	"fmt"
	"strings"
)

// RoundingMode selects how discarded mantissa bits are resolved when a value
// is narrowed.
type RoundingMode int

// Supported rounding modes.
const (
	NearestEven  RoundingMode = iota // Round to nearest, ties to even mantissa.
	RoundUp                          // Toward +Inf.
	RoundDown                        // Toward -Inf.
	AwayFromZero                     // Increase magnitude if anything was discarded.
	TowardZero                       // Truncate.
)

// RoundingModes lists all modes in declaration order.
func RoundingModes() []RoundingMode {
	return []RoundingMode{NearestEven, RoundUp, RoundDown, AwayFromZero, TowardZero}
}

// String returns the canonical name of the mode.
func (m RoundingMode) String() string {
	switch m {
	case NearestEven:
		return "nearest-even"
	case RoundUp:
		return "round-up"
	case RoundDown:
		return "round-down"
	case AwayFromZero:
		return "away-from-zero"
	case TowardZero:
		return "toward-zero"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode resolves a mode from its canonical name or a short alias
// ("rne", "up", "down", "away", "trunc").
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest-even", "nearest", "rne":
		return NearestEven, nil
	case "round-up", "up", "ceil":
		return RoundUp, nil
	case "round-down", "down", "floor":
		return RoundDown, nil
	case "away-from-zero", "away":
		return AwayFromZero, nil
	case "toward-zero", "towards-zero", "trunc":
		return TowardZero, nil
	default:
		return NearestEven, fmt.Errorf("unknown rounding mode %q", s)
	}
}

// incrementMagnitude reports whether the kept mantissa must be incremented.
// odd is the lowest kept bit, round the first discarded bit, sticky the OR of
// the remaining discarded bits.
func (m RoundingMode) incrementMagnitude(negative, odd, round, sticky bool) bool {
	inexact := round || sticky
	switch m {
	case NearestEven:
		return round && (sticky || odd)
	case RoundUp:
		return !negative && inexact
	case RoundDown:
		return negative && inexact
	case AwayFromZero:
		return inexact
	case TowardZero:
		return false
	default:
		panic(fmt.Sprintf("numeric: unknown rounding mode %d", int(m)))
	}
}

package conv

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MaxForWidth returns the largest value an unsigned counter of the given
// bit width can hold, clamped to math.MaxInt.
func MaxForWidth(width uint8) int {
	if width == 0 {
		return 0
	}
	if uint(width) >= bits.UintSize-1 {
		return math.MaxInt
	}
	return int(uint(1)<<width) - 1
}

// Fits reports whether v is representable as D.
func Fits[D, S constraints.Integer](v S) bool {
	d := D(v)
	if S(d) != v {
		return false
	}
	// Sign flip means the value wrapped.
	return (v < 0) == (d < 0)
}

// Narrow converts v to D, failing instead of truncating.
func Narrow[D, S constraints.Integer](v S) (D, error) {
	if !Fits[D](v) {
		var zero D
		return zero, fmt.Errorf("integer overflow: %d cannot be converted to %T", v, zero)
	}
	return D(v), nil
}

// MulFits reports whether a*b stays within [0, limit]. Both operands must
// be non-negative.
func MulFits(a, b, limit int) bool {
	if a < 0 || b < 0 || limit < 0 {
		return false
	}
	if a == 0 || b == 0 {
		return true
	}
	return a <= limit/b
}

// FitsWidth reports whether the non-negative v can be stored in an
// unsigned counter of the given bit width.
func FitsWidth(v int, width uint8) bool {
	var err error
	switch width {
	case 8:
		_, err = Narrow[uint8](v)
	case 16:
		_, err = Narrow[uint16](v)
	case 32:
		_, err = Narrow[uint32](v)
	case 64:
		_, err = Narrow[uint64](v)
	default:
		return false
	}
	return err == nil
}

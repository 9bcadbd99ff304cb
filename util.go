package huffmantree

import (
	"math"
	mathbits "math/bits"

	"golang.org/x/exp/constraints"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// saturatingAdd returns a+b, clamped to limit instead of wrapping around.
func saturatingAdd[T constraints.Unsigned](a, b, limit T) T {
	sum := a + b
	if sum < a || sum > limit {
		return limit
	}
	return sum
}

func addFrequency(a, b uint32) uint32 {
	return saturatingAdd(a, b, math.MaxUint32)
}

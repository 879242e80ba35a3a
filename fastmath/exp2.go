package fastmath

import "math"

// Exp2 returns an approximation of 2^x.
//
// x is split into n = Floor(x) and f = x - n ∈ [0, 1); 2^f comes from a
// quintic and n is added straight into the exponent bits. Results that
// would be subnormal are flushed to zero.
//
// Special cases:
//   - Exp2(x) = +Inf for x >= 128
//   - Exp2(x) = 0 for x < -126
//   - Exp2(NaN) = NaN
func Exp2(x float32) float32 {
	if x >= 128 {
		return Inf(1)
	}
	if x < -126 {
		return 0
	}
	if x != x {
		return x
	}

	n := Floor(x)
	p := exp2Poly(x - n)
	return math.Float32frombits(math.Float32bits(p) + uint32(int32(n))<<mantissaBits32)
}

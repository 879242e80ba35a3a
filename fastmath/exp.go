package fastmath

import "math"

const (
	// expThreshold bounds the float32 range of e^x; beyond it Exp saturates.
	expThreshold = 88.7228240

	// invLn2N is 32/ln(2): one unit of z is one table step.
	invLn2N = 0x1.71547652b82fep+0 * expTableSize

	// expShift is 1.5*2^52. Adding it to |z| < 2^51 leaves round(z) in the
	// low mantissa bits of the sum.
	expShift = 0x1.8p+52

	// 2^(r/32) ≈ expC0*r³ + expC1*r² + expC2*r + expC3 for r ∈ [-0.5, 0.5].
	expC0 = 5.5504596955959107902e-2 / (expTableSize * expTableSize * expTableSize)
	expC1 = 2.4022885514364502397e-1 / (expTableSize * expTableSize)
	expC2 = 6.9314718052020802757e-1 / expTableSize
	expC3 = 9.9999999992833901766e-1
)

// Exp returns an approximation of e^x.
//
// The computation runs in float64: x is scaled to z = x*32/ln2 and split as
// z = k + r, e^x = 2^(k/32) * 2^(r/32). 2^(k/32) comes from the table with
// k/32 added straight into the exponent bits; 2^(r/32) from a cubic.
//
// Special cases:
//   - Exp(x) = 0 for x < -88.7228240, including -Inf
//   - Exp(x) = +Inf for x > 88.7228240, including +Inf
//   - Exp(NaN) = NaN
func Exp(x float32) float32 {
	xd := float64(x)
	if xd < -expThreshold {
		return 0
	}
	if xd > expThreshold {
		return Inf(1)
	}

	// The conversion keeps the product rounded on its own so the shift
	// below is never fused into it.
	z := float64(xd * invLn2N)
	kd := z + expShift
	ki := math.Float64bits(kd)
	kd -= expShift
	r := z - kd

	t := expTable[ki%expTableSize] + ki<<(52-expTableBits)
	s := math.Float64frombits(t)

	p := expC0*r + expC1
	y := expC2*r + expC3
	y = p*(r*r) + y
	return float32(y * s)
}

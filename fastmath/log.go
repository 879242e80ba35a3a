package fastmath

import "math"

const (
	// ln2 split so that k*ln2Hi is exact for any float32 exponent k.
	ln2Hi float32 = 6.9313812256e-01
	ln2Lo float32 = 9.0580006145e-06

	// log((1+s)/(1-s)) = 2s + s*R(s²), s ∈ [-0.1716, 0.1716].
	logR1 float32 = 0xaaaaaa.0p-24
	logR2 float32 = 0xccce13.0p-25
	logR3 float32 = 0x91e9ee.0p-25
	logR4 float32 = 0xf89e26.0p-26

	// Bits of √½. Offsetting by it centres the mantissa on [√½, √2).
	sqrtHalfBits = 0x3f3504f3
	oneBits      = 0x3f800000

	twoPow23 float32 = 1 << 23
)

// Log returns an approximation of the natural logarithm of x.
//
// x is decomposed from its bits as 2^k * m with m ∈ [√½, √2), and
// log(m) = log((1+s)/(1-s)) with s = (m-1)/(m+1) is evaluated from a short
// even polynomial.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(±0) = -Inf
//   - Log(x < 0) = NaN
//   - Log(NaN) = NaN
func Log(x float32) float32 {
	ix := math.Float32bits(x)
	k := int32(0)

	switch {
	case x != x:
		return x
	case ix&^signMask32 == 0:
		return Inf(-1)
	case ix&signMask32 != 0:
		return NaN()
	case ix >= 0x7f800000:
		return x
	case ix < 1<<mantissaBits32:
		// subnormal, scale into the normal range
		k = -mantissaBits32
		ix = math.Float32bits(x * twoPow23)
	}

	ix += oneBits - sqrtHalfBits
	k += int32(ix>>mantissaBits32) - exponentBias32
	ix = ix&(1<<mantissaBits32-1) + sqrtHalfBits

	f := math.Float32frombits(ix) - 1
	s := f / (2 + f)
	z := s * s
	w := z * z
	r := z*(logR1+w*logR3) + w*(logR2+w*logR4)
	hfsq := 0.5 * f * f
	dk := float32(k)
	return s*(hfsq+r) + dk*ln2Lo - hfsq + f + dk*ln2Hi
}

package fastmath

import (
	"math"
	"strconv"
	"strings"
)

const (
	signMask32     = 0x80000000
	mantissaBits32 = 23
	exponentBias32 = 127
)

// Abs returns |x| by clearing the sign bit. NaN payloads are preserved.
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask32)
}

// CopySign returns a value with the magnitude of x and the sign of y.
func CopySign(x, y float32) float32 {
	return math.Float32frombits(math.Float32bits(x)&^signMask32 | math.Float32bits(y)&signMask32)
}

// Floor returns the greatest integer value less than or equal to x.
//
// The value is truncated through int32, so the result is only defined for
// |x| < 2^31. Larger magnitudes give an implementation-defined result.
func Floor(x float32) float32 {
	t := float32(int32(x))
	if t > x {
		t--
	}
	return t
}

// Sqrt returns the square root of x.
// The conversion pattern lowers to a single hardware instruction (SQRTSS on
// amd64, FSQRT on arm64), so the result is correctly rounded.
//
// Special cases follow IEEE 754:
//   - Sqrt(+0) = +0
//   - Sqrt(-0) = -0
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(x < 0) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Hypot returns Sqrt(x*x + y*y).
// Unlike math.Hypot it does not rescale, so it overflows for |x| or |y|
// above roughly 1.8e19.
func Hypot(x, y float32) float32 {
	return Sqrt(x*x + y*y)
}

// Sq returns x*x.
func Sq(x float32) float32 {
	return x * x
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	if sign >= 0 {
		return math.Float32frombits(0x7f800000)
	}
	return math.Float32frombits(0xff800000)
}

// NaN returns a quiet float32 NaN.
func NaN() float32 {
	return math.Float32frombits(0x7fc00000)
}

// FormatBits renders the IEEE-754 fields of x as "s eeeeeeee mmm...".
func FormatBits(x float32) string {
	s := strconv.FormatUint(uint64(math.Float32bits(x)), 2)
	s = strings.Repeat("0", 32-len(s)) + s
	return s[:1] + " " + s[1:9] + " " + s[9:]
}

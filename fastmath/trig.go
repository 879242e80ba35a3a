package fastmath

// Sin returns an approximation of sin(x), x in radians.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(NaN) = NaN
//
// Infinities are outside the reduction domain and give an unspecified result.
func Sin(x float32) float32 {
	return sinPoly(reducePeriod(x))
}

// Cos returns an approximation of cos(x), x in radians.
// Cos(0) evaluates to the fitted constant 0.99999922, not exactly 1.
func Cos(x float32) float32 {
	return cosPoly(reducePeriod(x))
}

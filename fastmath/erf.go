package fastmath

// ErfMode selects the evaluation strategy of the error function. Both modes
// compute the same value; they differ only in how well they suit the branch
// predictor for a given input order.
type ErfMode int

const (
	// ErfModeUnsorted evaluates the magnitude without branching on the sign.
	// Best when the sign of consecutive inputs changes often.
	ErfModeUnsorted ErfMode = iota

	// ErfModeSorted branches on the sign. Best for long runs of same-signed
	// inputs, where the branch is almost always predicted.
	ErfModeSorted
)

// String returns a human-readable name for the mode.
func (m ErfMode) String() string {
	switch m {
	case ErfModeUnsorted:
		return "unsorted"
	case ErfModeSorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Erf returns an approximation of the error function of x.
//
// The magnitude is 1 - 1/p(|x|)^16 with p the Abramowitz & Stegun 7.1.28
// polynomial; the sign of x is copied back, so Erf(-x) == -Erf(x) exactly.
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
func Erf(x float32) float32 {
	y := erfPoly(Abs(x))
	y *= y
	y *= y
	y *= y
	y = 1 - 1/(y*y)
	return CopySign(y, x)
}

// ErfSorted returns the same value as Erf but branches on the sign of x.
// Prefer it when processing long runs of inputs with equal sign.
func ErfSorted(x float32) float32 {
	if x > 0 {
		y := erfPoly(x)
		y *= y
		y *= y
		y *= y
		return 1 - 1/(y*y)
	}
	y := erfPoly(-x)
	y *= y
	y *= y
	y *= y
	return 1/(y*y) - 1
}

// ErfWith evaluates the error function with the given strategy.
func ErfWith(x float32, mode ErfMode) float32 {
	if mode == ErfModeSorted {
		return ErfSorted(x)
	}
	return Erf(x)
}

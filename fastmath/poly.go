package fastmath

// Minimax coefficients, highest degree first. Each set is only valid on the
// interval it was fitted on.
const (
	// sin(x)/x as a polynomial in x², x ∈ [-π, π].
	sin5 float32 = -2.0366233e-8
	sin4 float32 = 2.6998228e-6
	sin3 float32 = -1.980874e-4
	sin2 float32 = 8.3324076e-3
	sin1 float32 = -1.6666553e-1
	sin0 float32 = 9.999996e-1

	// cos(x) as a polynomial in x², x ∈ [-π, π].
	cos5 float32 = -2.1978884e-7
	cos4 float32 = 2.4204402e-5
	cos3 float32 = -1.3858916e-3
	cos2 float32 = 4.1659822e-2
	cos1 float32 = -4.9999427e-1
	cos0 float32 = 9.9999922e-1

	// Abramowitz & Stegun 7.1.28, u >= 0.
	erf6 float32 = 0.0000430638
	erf5 float32 = 0.0002765672
	erf4 float32 = 0.0001520143
	erf3 float32 = 0.0092705272
	erf2 float32 = 0.0422820123
	erf1 float32 = 0.0705230784
	erf0 float32 = 1.0

	// 2^f, f ∈ [0, 1).
	exp2c5 float32 = 1.8775767e-3
	exp2c4 float32 = 8.9893401e-3
	exp2c3 float32 = 5.5826318e-2
	exp2c2 float32 = 2.4015362e-1
	exp2c1 float32 = 6.9315307e-1
	exp2c0 float32 = 9.9999993e-1
)

// sinPoly expects x already reduced to [-π, π].
func sinPoly(x float32) float32 {
	xx := x * x
	u := sin5
	u = u*xx + sin4
	u = u*xx + sin3
	u = u*xx + sin2
	u = u*xx + sin1
	u = u*xx + sin0
	return u * x
}

// cosPoly expects x already reduced to [-π, π].
func cosPoly(x float32) float32 {
	xx := x * x
	u := cos5
	u = u*xx + cos4
	u = u*xx + cos3
	u = u*xx + cos2
	u = u*xx + cos1
	return u*xx + cos0
}

func erfPoly(u float32) float32 {
	p := erf6
	p = p*u + erf5
	p = p*u + erf4
	p = p*u + erf3
	p = p*u + erf2
	p = p*u + erf1
	return p*u + erf0
}

func exp2Poly(f float32) float32 {
	u := exp2c5
	u = u*f + exp2c4
	u = u*f + exp2c3
	u = u*f + exp2c2
	u = u*f + exp2c1
	return u*f + exp2c0
}

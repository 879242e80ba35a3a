package accuracy

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Report holds error statistics of an approximation over a set of inputs.
type Report struct {
	Count    int
	MeanAbs  float64
	MaxAbs   float64
	MaxAbsAt float32
	MeanRel  float64
	MaxRel   float64
	MaxRelAt float32
	MaxULP   uint32

	// RelSkipped counts inputs whose reference value is zero or infinite;
	// they are excluded from the relative statistics.
	RelSkipped int
}

// Linspace returns n evenly spaced float32 values from start to end
// inclusive, computed as i*scale + start in float32 arithmetic.
func Linspace(start, end float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = start
		return out
	}
	scale := (end - start) / float32(n-1)
	for i := range out {
		out[i] = float32(i)*scale + start
	}
	return out
}

// Check evaluates f at every x and compares it with ref.
//
// Outputs equal to the reference (including matching infinities) count as
// exact. A NaN output where the reference is a number propagates into the
// means, which makes such a defect impossible to overlook.
func Check(xs []float32, f func(float32) float32, ref func(float64) float64) Report {
	n := len(xs)
	if n == 0 {
		return Report{}
	}

	rep := Report{Count: n}
	absErr := make([]float64, 0, n)
	invRef := make([]float64, 0, n)
	relAt := make([]float32, 0, n)

	for _, x := range xs {
		got := f(x)
		want := ref(float64(x))

		e := math.Abs(float64(got) - want)
		if float64(got) == want || (math.IsNaN(float64(got)) && math.IsNaN(want)) {
			e = 0
		}

		rep.MeanAbs += e
		if e > rep.MaxAbs {
			rep.MaxAbs = e
			rep.MaxAbsAt = x
		}

		if u := ULPDistance(got, float32(want)); u > rep.MaxULP {
			rep.MaxULP = u
		}

		if want == 0 || math.IsInf(want, 0) || math.IsNaN(want) {
			rep.RelSkipped++
			continue
		}
		absErr = append(absErr, e)
		invRef = append(invRef, 1/math.Abs(want))
		relAt = append(relAt, x)
	}
	rep.MeanAbs /= float64(n)

	if len(absErr) == 0 {
		return rep
	}

	rel := make([]float64, len(absErr))
	vecmath.MulBlock(rel, absErr, invRef)
	for i, r := range rel {
		rep.MeanRel += r
		if r > rep.MaxRel {
			rep.MaxRel = r
			rep.MaxRelAt = relAt[i]
		}
	}
	rep.MeanRel /= float64(len(rel))

	return rep
}

// ULPDistance returns the number of representable float32 values between a
// and b. +0 and -0 are zero apart. Any NaN gives math.MaxUint32.
func ULPDistance(a, b float32) uint32 {
	if a != a || b != b {
		return math.MaxUint32
	}
	d := orderedBits(a) - orderedBits(b)
	if d < 0 {
		d = -d
	}
	if d > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(d)
}

// orderedBits maps float32 bit patterns onto integers that sort like the
// values they encode.
func orderedBits(x float32) int64 {
	i := int32(math.Float32bits(x))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return int64(i)
}

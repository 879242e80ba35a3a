// Package generic provides the reference block kernels: one scalar call per
// element, no unrolling.
package generic

import "github.com/cwbudde/algo-fastmath/fastmath"

func apply(dst, src []float32, f func(float32) float32) {
	if len(dst) != len(src) {
		panic("vec: slice length mismatch")
	}
	for i := range dst {
		dst[i] = f(src[i])
	}
}

// Sin computes dst[i] = fastmath.Sin(src[i]).
func Sin(dst, src []float32) { apply(dst, src, fastmath.Sin) }

// Cos computes dst[i] = fastmath.Cos(src[i]).
func Cos(dst, src []float32) { apply(dst, src, fastmath.Cos) }

// Exp computes dst[i] = fastmath.Exp(src[i]).
func Exp(dst, src []float32) { apply(dst, src, fastmath.Exp) }

// Exp2 computes dst[i] = fastmath.Exp2(src[i]).
func Exp2(dst, src []float32) { apply(dst, src, fastmath.Exp2) }

// Log computes dst[i] = fastmath.Log(src[i]).
func Log(dst, src []float32) { apply(dst, src, fastmath.Log) }

// Sqrt computes dst[i] = fastmath.Sqrt(src[i]).
func Sqrt(dst, src []float32) { apply(dst, src, fastmath.Sqrt) }

// Erf computes dst[i] = fastmath.ErfWith(src[i], mode), choosing the
// strategy once for the whole block.
func Erf(dst, src []float32, mode fastmath.ErfMode) {
	if mode == fastmath.ErfModeSorted {
		apply(dst, src, fastmath.ErfSorted)
		return
	}
	apply(dst, src, fastmath.Erf)
}

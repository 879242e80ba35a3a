// Package unroll provides block kernels that process four elements per loop
// iteration behind a single bounds check. Every kernel calls its fastmath
// function directly, so the compiler may inline the cheaper ones, and the
// four evaluations of one iteration carry no data dependency on each other.
//
// Results are identical to the generic kernels; only the loop shape differs.
package unroll

import "github.com/cwbudde/algo-fastmath/fastmath"

func checkLen(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vec: slice length mismatch")
	}
}

// Sin computes dst[i] = fastmath.Sin(src[i]).
func Sin(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Sin(s[0]), fastmath.Sin(s[1]), fastmath.Sin(s[2]), fastmath.Sin(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Sin(src[i])
	}
}

// Cos computes dst[i] = fastmath.Cos(src[i]).
func Cos(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Cos(s[0]), fastmath.Cos(s[1]), fastmath.Cos(s[2]), fastmath.Cos(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Cos(src[i])
	}
}

// Exp computes dst[i] = fastmath.Exp(src[i]).
func Exp(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Exp(s[0]), fastmath.Exp(s[1]), fastmath.Exp(s[2]), fastmath.Exp(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Exp(src[i])
	}
}

// Exp2 computes dst[i] = fastmath.Exp2(src[i]).
func Exp2(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Exp2(s[0]), fastmath.Exp2(s[1]), fastmath.Exp2(s[2]), fastmath.Exp2(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Exp2(src[i])
	}
}

// Log computes dst[i] = fastmath.Log(src[i]).
func Log(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Log(s[0]), fastmath.Log(s[1]), fastmath.Log(s[2]), fastmath.Log(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Log(src[i])
	}
}

// Sqrt computes dst[i] = fastmath.Sqrt(src[i]).
func Sqrt(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Sqrt(s[0]), fastmath.Sqrt(s[1]), fastmath.Sqrt(s[2]), fastmath.Sqrt(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Sqrt(src[i])
	}
}

// Erf computes dst[i] = fastmath.ErfWith(src[i], mode), choosing the
// strategy once for the whole block.
func Erf(dst, src []float32, mode fastmath.ErfMode) {
	if mode == fastmath.ErfModeSorted {
		erfSorted(dst, src)
		return
	}
	erfUnsorted(dst, src)
}

// erfUnsorted computes dst[i] = fastmath.Erf(src[i]).
func erfUnsorted(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.Erf(s[0]), fastmath.Erf(s[1]), fastmath.Erf(s[2]), fastmath.Erf(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.Erf(src[i])
	}
}

// erfSorted computes dst[i] = fastmath.ErfSorted(src[i]).
func erfSorted(dst, src []float32) {
	checkLen(dst, src)
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fastmath.ErfSorted(s[0]), fastmath.ErfSorted(s[1]), fastmath.ErfSorted(s[2]), fastmath.ErfSorted(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = fastmath.ErfSorted(src[i])
	}
}

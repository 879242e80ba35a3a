package main

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/fastmath/vec"
)

type boundary struct {
	x    float32
	want string
}

type funcEntry struct {
	name   string
	f      func(float32) float32
	ref    func(float64) float64
	lo, hi float32

	// approx is the algo-approx counterpart, nil when there is none.
	approx func(float64) float64

	// math32 is the chewxy/math32 counterpart, nil when there is none.
	math32 func(float32) float32

	// block is the slice form used by -bench, nil for functions without one.
	block func(dst, src []float32)

	boundaries []boundary
}

var functions = []funcEntry{
	{
		name: "sqrt", f: fastmath.Sqrt, ref: math.Sqrt, lo: 1e-6, hi: 1e4,
		approx: approx.FastSqrt[float64], math32: math32.Sqrt, block: vec.SqrtBlock,
		boundaries: []boundary{{-1, "NaN"}},
	},
	{
		name: "abs", f: fastmath.Abs, ref: math.Abs, lo: -5, hi: 5,
		math32: math32.Abs,
	},
	{
		name: "floor", f: fastmath.Floor, ref: math.Floor, lo: -5, hi: 5,
		math32: math32.Floor,
		boundaries: []boundary{{-0.1, "-1"}, {negZero(), "0"}, {0.1, "0"}},
	},
	{
		name: "exp", f: fastmath.Exp, ref: math.Exp, lo: -10, hi: 10,
		approx: approx.FastExp[float64], math32: math32.Exp, block: vec.ExpBlock,
		boundaries: []boundary{{-100, "0"}, {100, "+Inf"}},
	},
	{
		name: "exp2", f: fastmath.Exp2, ref: math.Exp2, lo: -10, hi: 10,
		math32: math32.Exp2, block: vec.Exp2Block,
		boundaries: []boundary{{-200, "0"}, {200, "+Inf"}},
	},
	{
		name: "log", f: fastmath.Log, ref: math.Log, lo: 1e-6, hi: 10,
		approx: approx.FastLog[float64], math32: math32.Log, block: vec.LogBlock,
		boundaries: []boundary{{-1, "NaN"}, {0, "-Inf"}, {fastmath.Inf(1), "+Inf"}},
	},
	{
		name: "sin", f: fastmath.Sin, ref: math.Sin, lo: -10, hi: 10,
		math32: math32.Sin, block: vec.SinBlock,
		boundaries: []boundary{{0, "0"}},
	},
	{
		name: "cos", f: fastmath.Cos, ref: math.Cos, lo: -10, hi: 10,
		math32: math32.Cos, block: vec.CosBlock,
		boundaries: []boundary{{0, "1"}},
	},
	{
		name: "erf", f: fastmath.Erf, ref: math.Erf, lo: -10, hi: 10,
		block: func(dst, src []float32) { vec.ErfBlock(dst, src, fastmath.ErfModeUnsorted) },
		boundaries: []boundary{{0, "0"}, {10, "1"}, {-10, "-1"}},
	},
	{
		name: "erf-sorted", f: fastmath.ErfSorted, ref: math.Erf, lo: -10, hi: 10,
		block: func(dst, src []float32) { vec.ErfBlock(dst, src, fastmath.ErfModeSorted) },
		boundaries: []boundary{{0, "0"}, {10, "1"}, {-10, "-1"}},
	},
}

func negZero() float32 {
	return fastmath.CopySign(0, -1)
}

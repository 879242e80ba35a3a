// Package vec applies the fastmath approximations to whole slices.
//
// Every block function writes dst[i] = f(src[i]) for the matching scalar f
// in package fastmath and produces bit-identical results. The kernel variant
// is chosen once, on first use, from the implementations registered for the
// running CPU; Implementation reports which one is active.
//
// dst and src must have equal length; the block functions panic otherwise.
// dst and src may be the same slice.
package vec

import (
	"sync"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/registry"
)

var (
	// Cached kernel entry (initialized once, used many times)
	kernels    *registry.KernelEntry
	kernelOnce sync.Once
)

// initKernels selects the best registered implementation for the detected
// CPU features and caches it for subsequent calls.
func initKernels() {
	kernels = selectKernels(registry.Global, cpu.DetectFeatures())
}

func selectKernels(r *registry.KernelRegistry, features cpu.Features) *registry.KernelEntry {
	entry := r.Lookup(features)
	if entry == nil {
		panic("vec: no implementation registered (missing generic fallback?)")
	}
	if op := entry.Missing(); op != "" {
		panic("vec: selected implementation " + entry.Name + " is missing " + op)
	}
	return entry
}

func active() *registry.KernelEntry {
	kernelOnce.Do(initKernels)
	return kernels
}

// Implementation returns the name of the kernel variant in use.
func Implementation() string {
	return active().Name
}

// SinBlock computes dst[i] = fastmath.Sin(src[i]).
func SinBlock(dst, src []float32) { active().Sin(dst, src) }

// SinBlockInPlace replaces every x[i] with fastmath.Sin(x[i]).
func SinBlockInPlace(x []float32) { active().Sin(x, x) }

// CosBlock computes dst[i] = fastmath.Cos(src[i]).
func CosBlock(dst, src []float32) { active().Cos(dst, src) }

// CosBlockInPlace replaces every x[i] with fastmath.Cos(x[i]).
func CosBlockInPlace(x []float32) { active().Cos(x, x) }

// ExpBlock computes dst[i] = fastmath.Exp(src[i]).
func ExpBlock(dst, src []float32) { active().Exp(dst, src) }

// ExpBlockInPlace replaces every x[i] with fastmath.Exp(x[i]).
func ExpBlockInPlace(x []float32) { active().Exp(x, x) }

// Exp2Block computes dst[i] = fastmath.Exp2(src[i]).
func Exp2Block(dst, src []float32) { active().Exp2(dst, src) }

// LogBlock computes dst[i] = fastmath.Log(src[i]).
func LogBlock(dst, src []float32) { active().Log(dst, src) }

// LogBlockInPlace replaces every x[i] with fastmath.Log(x[i]).
func LogBlockInPlace(x []float32) { active().Log(x, x) }

// SqrtBlock computes dst[i] = fastmath.Sqrt(src[i]).
func SqrtBlock(dst, src []float32) { active().Sqrt(dst, src) }

// ErfBlock computes dst[i] = fastmath.ErfWith(src[i], mode).
//
// ErfModeSorted pays off when src is monotone or otherwise has long runs of
// same-signed values; shuffled data should use ErfModeUnsorted.
func ErfBlock(dst, src []float32, mode fastmath.ErfMode) { active().Erf(dst, src, mode) }

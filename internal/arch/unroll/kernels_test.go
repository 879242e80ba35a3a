package unroll

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/arch/generic"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

// TestMatchesGeneric checks every length modulo the unroll factor.
func TestMatchesGeneric(t *testing.T) {
	tests := []struct {
		name string
		got  func(dst, src []float32)
		want func(dst, src []float32)
	}{
		{"sin", Sin, generic.Sin},
		{"cos", Cos, generic.Cos},
		{"exp", Exp, generic.Exp},
		{"exp2", Exp2, generic.Exp2},
		{"log", Log, generic.Log},
		{"sqrt", Sqrt, generic.Sqrt},
		{
			"erf",
			func(d, s []float32) { Erf(d, s, fastmath.ErfModeUnsorted) },
			func(d, s []float32) { generic.Erf(d, s, fastmath.ErfModeUnsorted) },
		},
		{
			"erf sorted",
			func(d, s []float32) { Erf(d, s, fastmath.ErfModeSorted) },
			func(d, s []float32) { generic.Erf(d, s, fastmath.ErfModeSorted) },
		},
	}

	for _, tc := range tests {
		for n := 0; n <= 9; n++ {
			t.Run(fmt.Sprintf("%s/%d", tc.name, n), func(t *testing.T) {
				src := testutil.DeterministicUniform(int64(n), -5, 5, n)
				got := make([]float32, n)
				want := make([]float32, n)
				tc.got(got, src)
				tc.want(want, src)
				testutil.RequireSliceEqual(t, got, want)
			})
		}
	}
}

func TestInPlaceAliasing(t *testing.T) {
	x := testutil.Ramp(0.5, 8, 11)
	want := make([]float32, len(x))
	generic.Log(want, x)
	Log(x, x)
	testutil.RequireSliceEqual(t, x, want)
}

func TestLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r != "vec: slice length mismatch" {
			t.Fatalf("recover() = %v, want length mismatch panic", r)
		}
	}()
	Exp(make([]float32, 5), make([]float32, 4))
}

func TestEntry(t *testing.T) {
	e := entry(cpu.SIMDNEON)
	if e.Name != "unroll4" || e.Priority != 10 || e.SIMDLevel != cpu.SIMDNEON {
		t.Fatalf("unexpected entry %+v", e)
	}
	if op := e.Missing(); op != "" {
		t.Fatalf("entry missing %s", op)
	}
}

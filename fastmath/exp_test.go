package fastmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

func TestExpAccuracy(t *testing.T) {
	rep := accuracy.Check(accuracy.Linspace(-10, 10, checkSize), Exp, math.Exp)
	if rep.MaxRel > 2e-7 {
		t.Fatalf("Exp max relative error %v at %v, want <= 2e-7", rep.MaxRel, rep.MaxRelAt)
	}
	if rep.MaxULP > 2 {
		t.Fatalf("Exp max error %d ULP, want <= 2", rep.MaxULP)
	}
}

func TestExpWideRange(t *testing.T) {
	rep := accuracy.Check(accuracy.Linspace(-87, 88.5, 1<<16), Exp, math.Exp)
	if rep.MaxRel > 2e-7 {
		t.Fatalf("Exp max relative error %v at %v, want <= 2e-7", rep.MaxRel, rep.MaxRelAt)
	}
}

func TestExpSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"zero", 0, 1},
		{"minus 100", -100, 0},
		{"plus 100", 100, Inf(1)},
		{"minus inf", Inf(-1), 0},
		{"plus inf", Inf(1), Inf(1)},
		{"max float", math.MaxFloat32, Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Exp(tc.x); got != tc.want {
				t.Fatalf("Exp(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}

	testutil.RequireNaN(t, "Exp(NaN)", Exp(NaN()))
}

func TestExpSaturationBoundary(t *testing.T) {
	// Just below the threshold the result is still finite.
	if got := Exp(88.7); math.IsInf(float64(got), 0) || got < 3e38 {
		t.Errorf("Exp(88.7) = %v, want finite ~3.3e38", got)
	}
	// Just above -threshold the result is a tiny, non-negative value.
	if got := Exp(-88.7); got < 0 || got > 1e-38 {
		t.Errorf("Exp(-88.7) = %v, want in [0, 1e-38]", got)
	}
}

func TestExpTable(t *testing.T) {
	for i := range expTable {
		got := math.Float64frombits(expTable[i] + uint64(i)<<(52-expTableBits))
		want := math.Exp2(float64(i) / expTableSize)
		// math.Exp2 itself may be off by one ULP.
		if got != want && math.Nextafter(want, got) != got {
			t.Errorf("table[%d] decodes to %v, want %v", i, got, want)
		}
	}
}

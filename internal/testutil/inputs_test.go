package testutil

import "testing"

func TestRamp(t *testing.T) {
	r := Ramp(-1, 1, 5)
	want := []float32{-1, -0.5, 0, 0.5, 1}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Ramp[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestRampSingle(t *testing.T) {
	r := Ramp(3, 7, 1)
	if len(r) != 1 || r[0] != 3 {
		t.Fatalf("Ramp(3, 7, 1) = %v, want [3]", r)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	x := Ramp(0, 99, 100)
	s := Shuffled(7, x)
	if len(s) != len(x) {
		t.Fatalf("len = %d, want %d", len(s), len(x))
	}
	seen := make(map[float32]bool, len(s))
	moved := false
	for i, v := range s {
		seen[v] = true
		if v != x[i] {
			moved = true
		}
	}
	if len(seen) != len(x) {
		t.Fatalf("shuffle lost elements: %d distinct, want %d", len(seen), len(x))
	}
	if !moved {
		t.Fatal("shuffle left the input order unchanged")
	}
	if x[0] != 0 || x[99] != 99 {
		t.Fatal("shuffle modified its input")
	}
}

func TestShuffledReproducible(t *testing.T) {
	x := Ramp(0, 31, 32)
	RequireSliceEqual(t, Shuffled(42, x), Shuffled(42, x))
}

func TestDeterministicUniform(t *testing.T) {
	a := DeterministicUniform(1, -2, 2, 64)
	b := DeterministicUniform(1, -2, 2, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not deterministic at index %d", i)
		}
		if a[i] < -2 || a[i] >= 2 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

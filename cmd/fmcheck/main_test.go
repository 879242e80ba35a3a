package main

import (
	"bytes"
	"go/build"
	"sort"
	"strings"
	"testing"
)

func TestResolveEntries(t *testing.T) {
	entries := resolveEntries([]string{" EXP ", "bogus", "erf-sorted"})
	if len(entries) != 2 {
		t.Fatalf("resolved %d entries, want 2", len(entries))
	}
	if entries[0].name != "exp" || entries[1].name != "erf-sorted" {
		t.Fatalf("unexpected entries %q, %q", entries[0].name, entries[1].name)
	}
}

func TestFunctionsComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range functions {
		if seen[e.name] {
			t.Errorf("duplicate function %q", e.name)
		}
		seen[e.name] = true
		if e.f == nil || e.ref == nil {
			t.Errorf("%s: missing function or reference", e.name)
		}
		if e.lo >= e.hi {
			t.Errorf("%s: empty interval [%v, %v]", e.name, e.lo, e.hi)
		}
	}
}

func TestPrintAccuracy(t *testing.T) {
	var buf bytes.Buffer
	if err := printAccuracy(&buf, resolveEntries([]string{"sqrt", "sin"}), 1000, true); err != nil {
		t.Fatalf("printAccuracy: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Function", "Approx Max Rel", "sqrt", "sin"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := printAccuracy(&buf, functions, 1, false); err == nil {
		t.Error("expected error for sample count 1")
	}
}

func TestPrintBoundaries(t *testing.T) {
	var buf bytes.Buffer
	if err := printBoundaries(&buf, resolveEntries([]string{"floor", "exp", "log"})); err != nil {
		t.Fatalf("printBoundaries: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"floor(-0.1) = -1 (-1)",
		"floor(-0) = 0 (0)",
		"exp(-100) = 0 (0)",
		"exp(100) = +Inf (+Inf)",
		"log(0) = -Inf (-Inf)",
		"log(-1) = NaN (NaN)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintBits(t *testing.T) {
	var buf bytes.Buffer
	values, err := parseValues([]string{"1", "-2"})
	if err != nil {
		t.Fatalf("parseValues: %v", err)
	}
	if err := printBits(&buf, values); err != nil {
		t.Fatalf("printBits: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0x3f800000") || !strings.Contains(out, "0 01111111 00000000000000000000000") {
		t.Errorf("unexpected bit dump for 1:\n%s", out)
	}
	if !strings.Contains(out, "0xc0000000") {
		t.Errorf("unexpected bit dump for -2:\n%s", out)
	}

	if _, err := parseValues([]string{"x"}); err == nil {
		t.Error("expected error for non-numeric argument")
	}
	if _, err := parseValues(nil); err == nil {
		t.Error("expected error for missing arguments")
	}
}

func TestPrintCPU(t *testing.T) {
	var buf bytes.Buffer
	if err := printCPU(&buf); err != nil {
		t.Fatalf("printCPU: %v", err)
	}
	if !strings.Contains(buf.String(), "implementation:") {
		t.Errorf("unexpected cpu output:\n%s", buf.String())
	}
}

func TestTimeBlock(t *testing.T) {
	ns := timeBlock(scalarBlock(func(x float32) float32 { return x }), make([]float32, 64))
	if ns <= 0 {
		t.Fatalf("timeBlock = %v ns/elem, want > 0", ns)
	}
}

// The command must not link test-only packages into the binary.
func TestNoTestOnlyImports(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	for _, imp := range pkg.Imports {
		if imp == "testing" || strings.HasSuffix(imp, "/internal/testutil") {
			t.Errorf("fmcheck imports %s", imp)
		}
	}
}

func TestShuffled(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	a := shuffled(7, append([]float32(nil), x...))
	b := shuffled(7, append([]float32(nil), x...))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
	}

	sorted := append([]float32(nil), a...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := range x {
		if sorted[i] != x[i] {
			t.Fatalf("shuffle is not a permutation: %v", a)
		}
	}
}

func TestPrintBench(t *testing.T) {
	var buf bytes.Buffer
	if err := printBench(&buf, resolveEntries([]string{"abs"}), 64); err != nil {
		t.Fatalf("printBench: %v", err)
	}
	if !strings.Contains(buf.String(), "scalar") {
		t.Errorf("abs should be timed as scalar:\n%s", buf.String())
	}
	if err := printBench(&buf, functions, 0); err == nil {
		t.Error("expected error for zero bench size")
	}
}

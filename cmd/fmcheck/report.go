package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/fastmath/vec"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

// benchBudget is the minimum wall time spent timing each block function.
const benchBudget = 200 * time.Millisecond

func printAccuracy(w io.Writer, entries []funcEntry, n int, withApprox bool) error {
	if n < 2 {
		return fmt.Errorf("sample count must be >= 2: %d", n)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Function\tInterval\tMean Abs\tMax Abs\tMax Abs At\tMean Rel\tMax Rel\tMax ULP"
	rule := "--------\t--------\t--------\t-------\t----------\t--------\t-------\t-------"
	if withApprox {
		header += "\tApprox Max Rel\tMath32 Max Rel"
		rule += "\t--------------\t--------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		xs := accuracy.Linspace(e.lo, e.hi, n)
		rep := accuracy.Check(xs, e.f, e.ref)

		row := fmt.Sprintf("%s\t[%g, %g]\t%.3g\t%.3g\t%g\t%.3g\t%.3g\t%d",
			e.name, e.lo, e.hi,
			rep.MeanAbs, rep.MaxAbs, rep.MaxAbsAt,
			rep.MeanRel, rep.MaxRel, rep.MaxULP,
		)
		if withApprox {
			row += "\t" + approxColumn(e, xs) + "\t" + math32Column(e, xs)
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func approxColumn(e funcEntry, xs []float32) string {
	if e.approx == nil {
		return "-"
	}
	f := func(x float32) float32 { return float32(e.approx(float64(x))) }
	return fmt.Sprintf("%.3g", accuracy.Check(xs, f, e.ref).MaxRel)
}

func math32Column(e funcEntry, xs []float32) string {
	if e.math32 == nil {
		return "-"
	}
	return fmt.Sprintf("%.3g", accuracy.Check(xs, e.math32, e.ref).MaxRel)
}

func printBoundaries(w io.Writer, entries []funcEntry) error {
	for _, e := range entries {
		for _, b := range e.boundaries {
			if _, err := fmt.Fprintf(w, "%s(%v) = %v (%s)\n", e.name, b.x, e.f(b.x), b.want); err != nil {
				return fmt.Errorf("failed to write boundary value: %w", err)
			}
		}
	}
	return nil
}

func printBench(w io.Writer, entries []funcEntry, size int) error {
	if size <= 0 {
		return fmt.Errorf("bench size must be positive: %d", size)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tImplementation\tSize\tns/elem\tMelem/s\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------------\t----\t-------\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		block := e.block
		impl := vec.Implementation()
		if block == nil {
			block = scalarBlock(e.f)
			impl = "scalar"
		}

		src := shuffled(1, accuracy.Linspace(e.lo, e.hi, size))
		nsPerElem := timeBlock(block, src)

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.1f\n",
			e.name, impl, size, nsPerElem, 1e3/nsPerElem); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// shuffled permutes x in place with a fixed seed so the branch predictor
// cannot learn the input order, and returns it.
func shuffled(seed int64, x []float32) []float32 {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(x), func(i, j int) {
		x[i], x[j] = x[j], x[i]
	})
	return x
}

func scalarBlock(f func(float32) float32) func(dst, src []float32) {
	return func(dst, src []float32) {
		for i, x := range src {
			dst[i] = f(x)
		}
	}
}

// timeBlock runs block repeatedly for at least benchBudget and returns the
// average time per element in nanoseconds.
func timeBlock(block func(dst, src []float32), src []float32) float64 {
	dst := make([]float32, len(src))
	block(dst, src)

	var (
		runs    int
		elapsed time.Duration
	)
	start := time.Now()
	for elapsed < benchBudget {
		block(dst, src)
		runs++
		elapsed = time.Since(start)
	}
	return float64(elapsed.Nanoseconds()) / float64(runs*len(src))
}

func printBits(w io.Writer, values []float32) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Value\tHex\tSign Exponent Mantissa\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(tw, "%v\t0x%08x\t%s\n", v, math.Float32bits(v), fastmath.FormatBits(v)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printSpur(w io.Writer) error {
	meter, err := accuracy.NewSpurMeter()
	if err != nil {
		return err
	}
	cfg := meter.Config()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tSize\tCycles\tWorst Spur Bin\tSpur [dBc]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	kernels := []struct {
		name string
		f    func(float32) float32
	}{
		{"sin", fastmath.Sin},
		{"cos", fastmath.Cos},
		{"math.Sin", func(x float32) float32 { return float32(math.Sin(float64(x))) }},
	}
	for _, k := range kernels {
		res, err := meter.Measure(k.f)
		if err != nil {
			return fmt.Errorf("%s: %w", k.name, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\n",
			k.name, cfg.Size, cfg.Cycles, res.WorstSpurBin, res.Spur_dBc); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printCPU(w io.Writer) error {
	f := cpu.DetectFeatures()
	_, err := fmt.Fprintf(w,
		"architecture:   %s\nsse2:           %t\nneon:           %t\nimplementation: %s\n",
		f.Architecture, f.HasSSE2, f.HasNEON, vec.Implementation())
	if err != nil {
		return fmt.Errorf("failed to write cpu info: %w", err)
	}
	return nil
}

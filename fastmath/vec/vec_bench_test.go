package vec

import (
	"testing"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4096", 4096},
	{"65536", 65536},
}

func benchBlock(b *testing.B, lo, hi float32, block func(dst, src []float32)) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := testutil.Shuffled(1, testutil.Ramp(lo, hi, tc.size))
			dst := make([]float32, tc.size)

			b.SetBytes(int64(tc.size * 4 * 2))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				block(dst, src)
			}
		})
	}
}

func BenchmarkSinBlock(b *testing.B)  { benchBlock(b, -10, 10, SinBlock) }
func BenchmarkCosBlock(b *testing.B)  { benchBlock(b, -10, 10, CosBlock) }
func BenchmarkExpBlock(b *testing.B)  { benchBlock(b, -10, 10, ExpBlock) }
func BenchmarkExp2Block(b *testing.B) { benchBlock(b, -10, 10, Exp2Block) }
func BenchmarkLogBlock(b *testing.B)  { benchBlock(b, 1e-6, 10, LogBlock) }
func BenchmarkSqrtBlock(b *testing.B) { benchBlock(b, 1e-6, 1e4, SqrtBlock) }

func BenchmarkErfBlock(b *testing.B) {
	benchBlock(b, -10, 10, func(dst, src []float32) { ErfBlock(dst, src, fastmath.ErfModeUnsorted) })
}

func BenchmarkErfBlockSortedInput(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := testutil.Ramp(-10, 10, tc.size)
			dst := make([]float32, tc.size)

			b.SetBytes(int64(tc.size * 4 * 2))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				ErfBlock(dst, src, fastmath.ErfModeSorted)
			}
		})
	}
}

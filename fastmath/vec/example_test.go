package vec_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/fastmath/vec"
)

func ExampleErfBlock() {
	src := []float32{-2, -1, 0, 1, 2}
	dst := make([]float32, len(src))
	vec.ErfBlock(dst, src, fastmath.ErfModeSorted)
	for _, v := range dst {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// -0.9953
	// -0.8427
	// 0.0000
	// 0.8427
	// 0.9953
}

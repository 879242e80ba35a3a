//go:build amd64 && !purego

package unroll

import (
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/registry"
)

// init registers the unrolled kernels for SSE2-class cores, which covers
// every amd64 CPU.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(entry(cpu.SIMDSSE2))
}

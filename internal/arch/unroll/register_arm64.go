//go:build arm64 && !purego

package unroll

import (
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/registry"
)

// init registers the unrolled kernels for NEON-class cores.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(entry(cpu.SIMDNEON))
}

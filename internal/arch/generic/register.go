package generic

import (
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/registry"
)

// init registers the generic kernels with the block kernel registry.
//
// They serve as the baseline when no other variant is compatible and when
// ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.KernelEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Sin:  Sin,
		Cos:  Cos,
		Exp:  Exp,
		Exp2: Exp2,
		Log:  Log,
		Sqrt: Sqrt,
		Erf:  Erf,
	})
}

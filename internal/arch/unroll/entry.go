package unroll

import (
	"github.com/cwbudde/algo-fastmath/internal/cpu"
	"github.com/cwbudde/algo-fastmath/internal/registry"
)

func entry(level cpu.SIMDLevel) registry.KernelEntry {
	return registry.KernelEntry{
		Name:      "unroll4",
		SIMDLevel: level,
		Priority:  10,

		Sin:  Sin,
		Cos:  Cos,
		Exp:  Exp,
		Exp2: Exp2,
		Log:  Log,
		Sqrt: Sqrt,
		Erf:  Erf,
	}
}

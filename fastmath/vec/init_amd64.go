//go:build amd64 && !purego

package vec

// This file imports the implementation packages available on amd64 to
// trigger their init() functions, which register them with the global
// registry.

import (
	_ "github.com/cwbudde/algo-fastmath/internal/arch/generic"
	_ "github.com/cwbudde/algo-fastmath/internal/arch/unroll"
)

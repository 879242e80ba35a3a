//go:build (!amd64 && !arm64) || purego

package vec

// This file imports the pure Go fallback for unsupported architectures and
// purego builds.

import (
	_ "github.com/cwbudde/algo-fastmath/internal/arch/generic"
)

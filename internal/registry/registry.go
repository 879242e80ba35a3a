// Package registry provides the implementation registry for block kernels.
//
// Several implementations of the slice kernels (generic, unrolled) can
// coexist. Each registers itself from an init() function together with the
// instruction set class it targets, and package vec selects the best
// compatible entry for the current CPU at first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/cpu"
)

// BlockFunc applies a scalar approximation element-wise: dst[i] = f(src[i]).
// dst and src may be the same slice.
type BlockFunc func(dst, src []float32)

// KernelEntry represents a registered implementation variant of the block
// kernels. All operations must be populated; an entry is selected as a whole.
type KernelEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic", "unroll4").
	Name string

	// SIMDLevel indicates the instruction set class required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Generic is 0.
	Priority int

	Sin  BlockFunc
	Cos  BlockFunc
	Exp  BlockFunc
	Exp2 BlockFunc
	Log  BlockFunc
	Sqrt BlockFunc

	// Erf evaluates the error function with the given strategy, chosen once
	// per block rather than per element.
	Erf func(dst, src []float32, mode fastmath.ErfMode)
}

// Missing returns the name of the first unset operation, or "" if the entry
// is complete.
func (e *KernelEntry) Missing() string {
	switch {
	case e.Sin == nil:
		return "sin"
	case e.Cos == nil:
		return "cos"
	case e.Exp == nil:
		return "exp"
	case e.Exp2 == nil:
		return "exp2"
	case e.Log == nil:
		return "log"
	case e.Sqrt == nil:
		return "sqrt"
	case e.Erf == nil:
		return "erf"
	default:
		return ""
	}
}

// KernelRegistry manages the registration and lookup of kernel variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type KernelRegistry struct {
	mu      sync.RWMutex
	entries []KernelEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by package vec.
var Global = &KernelRegistry{}

// Register adds an implementation variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *KernelRegistry) Register(entry KernelEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if none
// is (which should never happen if the generic fallback is registered).
func (r *KernelRegistry) Lookup(features cpu.Features) *KernelEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *KernelRegistry) sortByPriority() {
	// Insertion sort: the registry holds a handful of entries and must stay
	// stable so equal priorities keep registration order.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *KernelRegistry) ListEntries() []KernelEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]KernelEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *KernelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// Package fastmath provides fast float32 approximations of elementary
// functions for performance-critical numeric loops.
//
// These approximations trade a small, bounded amount of accuracy for speed.
// They are drop-in replacements for the corresponding math functions where
// the stated error is acceptable and the input stays inside the documented
// domain.
//
// # Accuracy Characteristics
//
// Sin, Cos: |error| < 3e-6 for x ∈ [-10, 10], degrading for very large |x|
//
// Exp: relative error < 2e-7 for x ∈ [-10, 10], saturates beyond ±88.7228240
//
// Exp2: relative error < 5e-7 for x ∈ [-10, 10], saturates at 128 and -126
//
// Log: relative error < 2e-7 for x ∈ [1e-6, 10]
//
// Erf: |error| < 3e-6 for x ∈ [-10, 10], exactly odd
//
// Sqrt: correctly rounded (single hardware instruction)
//
// # Domains
//
// Floor converts through int32 and is only meaningful for |x| < 2^31. Sin and
// Cos reduce their argument with Floor, so they inherit that limit and lose
// accuracy well before it as x/2π runs out of fractional bits. Hypot does not
// guard against intermediate overflow.
//
// # Numeric assumptions
//
// The coefficient tables assume IEEE-754 round-to-nearest arithmetic without
// reassociation, which Go guarantees. Fused multiply-add contraction is
// allowed in the polynomial kernels; the rounding-sensitive step of Exp is
// pinned with an explicit conversion so contraction cannot alter it.
//
// All functions are pure, allocation-free and safe for concurrent use. Slice
// versions live in package vec.
package fastmath

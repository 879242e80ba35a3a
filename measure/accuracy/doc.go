// Package accuracy measures how far an approximation strays from a
// reference implementation.
//
// Check evaluates a float32 function over a set of inputs and compares it
// with a float64 reference, reporting mean and maximum absolute error,
// relative error and ULP distance. SpurMeter looks at periodic kernels in
// the frequency domain: it samples one at a coherent frequency, transforms
// the result and reports the strongest spurious bin relative to the
// fundamental.
//
// The package knows nothing about the functions it measures; it only
// depends on their signatures.
package accuracy

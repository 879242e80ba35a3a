package testutil

import "math/rand"

// Ramp returns n evenly spaced float32 values from start to end inclusive,
// computed as i*scale + start in float32.
func Ramp(start, end float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = start
		return out
	}
	scale := (end - start) / float32(n-1)
	for i := range out {
		out[i] = float32(i)*scale + start
	}
	return out
}

// Shuffled returns a copy of x permuted with a fixed seed, so benchmarks see
// the same unpredictable order on every run.
func Shuffled(seed int64, x []float32) []float32 {
	out := make([]float32, len(x))
	copy(out, x)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// DeterministicUniform returns n values uniformly drawn from [lo, hi) with a
// fixed seed.
func DeterministicUniform(seed int64, lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float32()*(hi-lo)
	}
	return out
}

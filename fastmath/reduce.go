package fastmath

const (
	twoPi    float32 = 6.283185307179586
	invTwoPi float32 = 0.15915494309189535
)

// reducePeriod maps x into [-π, π] by subtracting the nearest multiple of 2π.
// Accuracy is lost once x/2π no longer fits Floor's int32 domain or has no
// fractional bits left; no secondary reduction is attempted.
func reducePeriod(x float32) float32 {
	return x - Floor(x*invTwoPi+0.5)*twoPi
}

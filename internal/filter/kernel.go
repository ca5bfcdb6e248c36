package filter

import "math"

// GaussianKernel generates a normalized 1D Gaussian kernel using radius as
// the standard deviation. The kernel has 2*ceil(3*radius)+1 taps.
//
// For radius <= 0, returns the identity kernel [1].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(radius * 3))
	size := half*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// Sharpen is the 3x3 sharpen kernel in row-major order.
var Sharpen = [9]float32{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

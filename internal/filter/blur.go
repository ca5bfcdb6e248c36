package filter

// Blur applies a separable Gaussian blur with the given radius to pix in
// place. Color channels are blurred premultiplied so transparent pixels do
// not bleed black into their neighbors. Edges are clamped, and so is the
// radius: see MaxRadius.
func Blur(pix []byte, width, height int, radius float64) {
	if !(radius > 0) || width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}
	kernel := GaussianKernel(min(radius, MaxRadius(width, height)))

	n := width * height * 4
	src := make([]float32, n)
	for i := 0; i < n; i += 4 {
		a := float32(pix[i+3]) / 255
		src[i+0] = float32(pix[i+0]) * a
		src[i+1] = float32(pix[i+1]) * a
		src[i+2] = float32(pix[i+2]) * a
		src[i+3] = float32(pix[i+3])
	}

	tmp := make([]float32, n)
	convolveRows(src, tmp, width, height, 4, kernel)
	convolveCols(tmp, src, width, height, 4, kernel)

	for i := 0; i < n; i += 4 {
		a := src[i+3]
		pix[i+3] = clampByte(a)
		if a <= 0.5 {
			pix[i+0], pix[i+1], pix[i+2] = 0, 0, 0
			continue
		}
		inv := 255 / a
		pix[i+0] = clampByte(src[i+0] * inv)
		pix[i+1] = clampByte(src[i+1] * inv)
		pix[i+2] = clampByte(src[i+2] * inv)
	}
}

// BlurAlpha blurs a single-channel coverage buffer in place.
func BlurAlpha(alpha []byte, width, height int, radius float64) {
	if !(radius > 0) || width <= 0 || height <= 0 || len(alpha) < width*height {
		return
	}
	kernel := GaussianKernel(min(radius, MaxRadius(width, height)))

	n := width * height
	src := make([]float32, n)
	for i := 0; i < n; i++ {
		src[i] = float32(alpha[i])
	}
	tmp := make([]float32, n)
	convolveRows(src, tmp, width, height, 1, kernel)
	convolveCols(tmp, src, width, height, 1, kernel)
	for i := 0; i < n; i++ {
		alpha[i] = clampByte(src[i])
	}
}

// MaxRadius returns the largest useful blur radius for a width x height
// buffer. Its kernel already spans the whole buffer from any pixel.
func MaxRadius(width, height int) float64 {
	return max(float64(max(width, height))/3, 1)
}

// convolveRows applies kernel horizontally to an interleaved buffer with
// the given number of channels.
func convolveRows(src, dst []float32, width, height, channels int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			out := (row + x) * channels
			for c := 0; c < channels; c++ {
				dst[out+c] = 0
			}
			for k, w := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				in := (row + kx) * channels
				for c := 0; c < channels; c++ {
					dst[out+c] += src[in+c] * w
				}
			}
		}
	}
}

// convolveCols applies kernel vertically to an interleaved buffer.
func convolveCols(src, dst []float32, width, height, channels int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out := (y*width + x) * channels
			for c := 0; c < channels; c++ {
				dst[out+c] = 0
			}
			for k, w := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				in := (ky*width + x) * channels
				for c := 0; c < channels; c++ {
					dst[out+c] += src[in+c] * w
				}
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampByte clamps v to [0, 255] and rounds to the nearest byte.
func clampByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

package filter

// ColorFunc maps one straight-alpha color (channels in 0-255) to another.
type ColorFunc func(r, g, b float32) (float32, float32, float32)

// Luminance weights (Rec. 601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Apply runs fn over every pixel with non-zero alpha. Alpha is unchanged.
func Apply(pix []byte, fn ColorFunc) {
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		r, g, b := fn(float32(pix[i]), float32(pix[i+1]), float32(pix[i+2]))
		pix[i+0] = clampByte(r)
		pix[i+1] = clampByte(g)
		pix[i+2] = clampByte(b)
	}
}

func luma(r, g, b float32) float32 {
	return lumR*r + lumG*g + lumB*b
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Grayscale blends each channel toward luminance by intensity.
func Grayscale(intensity float32) ColorFunc {
	return func(r, g, b float32) (float32, float32, float32) {
		l := luma(r, g, b)
		return lerp(r, l, intensity), lerp(g, l, intensity), lerp(b, l, intensity)
	}
}

// Invert blends each channel toward its inverse by intensity.
func Invert(intensity float32) ColorFunc {
	return func(r, g, b float32) (float32, float32, float32) {
		return lerp(r, 255-r, intensity), lerp(g, 255-g, intensity), lerp(b, 255-b, intensity)
	}
}

// Brightness adds 40*intensity to every channel.
func Brightness(intensity float32) ColorFunc {
	d := 40 * intensity
	return func(r, g, b float32) (float32, float32, float32) {
		return r + d, g + d, b + d
	}
}

// Contrast remaps channels linearly around 128 with factor 1+0.5*intensity.
func Contrast(intensity float32) ColorFunc {
	f := 1 + 0.5*intensity
	return func(r, g, b float32) (float32, float32, float32) {
		return (r-128)*f + 128, (g-128)*f + 128, (b-128)*f + 128
	}
}

// Sepia blends toward the standard sepia matrix by intensity.
func Sepia(intensity float32) ColorFunc {
	return func(r, g, b float32) (float32, float32, float32) {
		sr := 0.393*r + 0.769*g + 0.189*b
		sg := 0.349*r + 0.686*g + 0.168*b
		sb := 0.272*r + 0.534*g + 0.131*b
		return lerp(r, sr, intensity), lerp(g, sg, intensity), lerp(b, sb, intensity)
	}
}

// Warm pushes red up and blue down by 15*intensity.
func Warm(intensity float32) ColorFunc {
	d := 15 * intensity
	return func(r, g, b float32) (float32, float32, float32) {
		return r + d, g, b - d
	}
}

// Cool pushes blue up and red down by 15*intensity.
func Cool(intensity float32) ColorFunc {
	d := 15 * intensity
	return func(r, g, b float32) (float32, float32, float32) {
		return r - d, g, b + d
	}
}

// Saturate pushes each channel away from luminance by 0.5*intensity.
func Saturate(intensity float32) ColorFunc {
	f := 1 + 0.5*intensity
	return func(r, g, b float32) (float32, float32, float32) {
		l := luma(r, g, b)
		return l + (r-l)*f, l + (g-l)*f, l + (b-l)*f
	}
}

// Desaturate pulls each channel toward luminance by 0.5*intensity.
func Desaturate(intensity float32) ColorFunc {
	t := 0.5 * intensity
	return func(r, g, b float32) (float32, float32, float32) {
		l := luma(r, g, b)
		return lerp(r, l, t), lerp(g, l, t), lerp(b, l, t)
	}
}

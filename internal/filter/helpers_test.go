package filter

// Test helper functions shared across filter tests.

// solid creates a w*h buffer filled with one straight-alpha color.
func solid(w, h int, r, g, b, a byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// set writes one pixel.
func set(pix []byte, w, x, y int, r, g, b, a byte) {
	i := (y*w + x) * 4
	pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
}

// at reads one pixel.
func at(pix []byte, w, x, y int) [4]byte {
	i := (y*w + x) * 4
	return [4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

func near(a, b byte, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

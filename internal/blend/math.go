package blend

// MulDiv255 multiplies two bytes and divides by 255 with rounding.
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// mulDiv255Wide is MulDiv255 for operands that may exceed a byte before the
// division, clamped to 255.
func mulDiv255Wide(a, b uint16) byte {
	v := (uint32(a)*uint32(b) + 127) / 255
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Premultiply converts a straight-alpha pixel to premultiplied form.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	if a == 255 {
		return r, g, b, a
	}
	return MulDiv255(r, a), MulDiv255(g, a), MulDiv255(b, a), a
}

// Unpremultiply converts a premultiplied pixel back to straight alpha.
func Unpremultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	switch a {
	case 0:
		return 0, 0, 0, 0
	case 255:
		return r, g, b, a
	}
	return unpremul(r, a), unpremul(g, a), unpremul(b, a), a
}

func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

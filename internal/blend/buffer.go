package blend

// Layer composites a straight-alpha RGBA source buffer onto a straight-alpha
// destination buffer of the same size, scaling the source by opacity
// (0-255) and combining with mode. Both buffers hold 4 bytes per pixel.
func Layer(dst, src []byte, mode Mode, opacity byte) {
	if opacity == 0 {
		return
	}
	fn := For(mode)
	n := min(len(dst), len(src))
	for i := 0; i+3 < n; i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		if opacity != 255 {
			sa = MulDiv255(sa, opacity)
		}
		sr, sg, sb, _ := Premultiply(src[i], src[i+1], src[i+2], sa)
		dr, dg, db, da := Premultiply(dst[i], dst[i+1], dst[i+2], dst[i+3])
		r, g, b, a := fn(sr, sg, sb, sa, dr, dg, db, da)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = Unpremultiply(r, g, b, a)
	}
}

// Pixel composites one straight-alpha color with coverage alpha onto the
// straight-alpha pixel at p[0:4] using fn.
func Pixel(p []byte, r, g, b, a byte, fn Func) {
	if a == 0 {
		return
	}
	sr, sg, sb, sa := Premultiply(r, g, b, a)
	dr, dg, db, da := Premultiply(p[0], p[1], p[2], p[3])
	or, og, ob, oa := fn(sr, sg, sb, sa, dr, dg, db, da)
	p[0], p[1], p[2], p[3] = Unpremultiply(or, og, ob, oa)
}

package filter

// Convolve3x3 applies a 3x3 kernel to the color channels of pix. Reads come
// from a private copy of the input so results never feed back into later
// pixels. Alpha is preserved and edge pixels are clamped.
func Convolve3x3(pix []byte, width, height int, kernel [9]float32) {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}
	src := make([]byte, width*height*4)
	copy(src, pix)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float32
			for ky := -1; ky <= 1; ky++ {
				sy := clampInt(y+ky, 0, height-1)
				for kx := -1; kx <= 1; kx++ {
					w := kernel[(ky+1)*3+kx+1]
					if w == 0 {
						continue
					}
					sx := clampInt(x+kx, 0, width-1)
					i := (sy*width + sx) * 4
					r += float32(src[i+0]) * w
					g += float32(src[i+1]) * w
					b += float32(src[i+2]) * w
				}
			}
			o := (y*width + x) * 4
			pix[o+0] = clampByte(r)
			pix[o+1] = clampByte(g)
			pix[o+2] = clampByte(b)
		}
	}
}

package sketch

// FillTolerance is the per-channel distance within which a pixel matches
// the seed color of a bucket fill.
const FillTolerance = 35

// FillBucket flood-fills the 4-connected region around (x, y). Regions are
// found on the composite, so boundaries drawn on any visible layer stop the
// fill, but paint lands on the active layer only, at full opacity.
//
// Returns false when the seed is outside the surface, the active layer is
// locked, or the seed already shows the fill color.
func (s *Surface) FillBucket(x, y int, c RGBA) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	l := s.activeUnlocked("fill")
	if l == nil {
		return false
	}

	comp := s.Composite().data
	seed := (y*s.width + x) * 4
	target := [4]uint8{comp[seed], comp[seed+1], comp[seed+2], comp[seed+3]}
	fr, fg, fb, _ := c.bytes()
	if target == [4]uint8{fr, fg, fb, 255} {
		return false
	}

	s.SaveToHistory()
	pix := l.writable()
	visited := make([]bool, s.width*s.height)
	stack := []int{y*s.width + x}
	filled := 0

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true
		if !withinTolerance(comp[i*4:i*4+4], target) {
			continue
		}
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = fr, fg, fb, 255
		filled++

		px, py := i%s.width, i/s.width
		if px > 0 {
			stack = append(stack, i-1)
		}
		if px < s.width-1 {
			stack = append(stack, i+1)
		}
		if py > 0 {
			stack = append(stack, i-s.width)
		}
		if py < s.height-1 {
			stack = append(stack, i+s.width)
		}
	}
	Logger().Debug("sketch: bucket fill", "x", x, "y", y, "pixels", filled)
	return true
}

func withinTolerance(p []uint8, target [4]uint8) bool {
	for ch := range 4 {
		d := int(p[ch]) - int(target[ch])
		if d > FillTolerance || d < -FillTolerance {
			return false
		}
	}
	return true
}

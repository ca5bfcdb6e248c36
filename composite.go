package sketch

import "github.com/gogpu/sketch/internal/blend"

// Checkerboard colors and cell size used behind transparent content.
const checkerSize = 8

var (
	checkerLight = [4]uint8{0xff, 0xff, 0xff, 0xff}
	checkerDark  = [4]uint8{0xe6, 0xe6, 0xe6, 0xff}
)

// Composite paints every visible layer bottom to top through its opacity
// and blend mode into a new pixmap. Pixels no layer covers stay
// transparent. The result never aliases layer storage.
func (s *Surface) Composite() *Pixmap {
	out := NewPixmap(s.width, s.height)
	for _, l := range s.layers {
		if l.visible {
			compositeLayer(out.data, l)
		}
	}
	return out
}

// Display returns the image a host should blit: the composite over a
// neutral checkerboard, with the live shape preview on top.
func (s *Surface) Display() *Pixmap {
	out := checkerboard(s.width, s.height)
	blend.Layer(out.data, s.Composite().data, blend.ModeNormal, 255)
	if s.preview != nil {
		blend.Layer(out.data, s.preview.data, blend.ModeNormal, 255)
	}
	return out
}

func compositeLayer(dst []byte, l *Layer) {
	blend.Layer(dst, l.pix, l.mode.op(), to8(l.opacity))
}

func checkerboard(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := range h {
		for x := range w {
			c := checkerLight
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				c = checkerDark
			}
			copy(pm.data[(y*w+x)*4:], c[:])
		}
	}
	return pm
}

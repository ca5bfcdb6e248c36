package sketch

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// newTestSurface creates a surface or fails the test.
func newTestSurface(t testing.TB, w, h int, opts ...SurfaceOption) *Surface {
	t.Helper()
	s, err := NewSurface(w, h, opts...)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d) error = %v", w, h, err)
	}
	return s
}

// pixelAt returns the straight-alpha bytes at (x, y) of pm.
func pixelAt(pm *Pixmap, x, y int) [4]uint8 {
	c := pm.NRGBAAt(x, y)
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// layerPixel returns the pixel of the layer with id at (x, y).
func layerPixel(t testing.TB, s *Surface, id LayerID, x, y int) [4]uint8 {
	t.Helper()
	l := s.Layer(id)
	if l == nil {
		t.Fatalf("layer %d not found", id)
	}
	return pixelAt(l.Pixmap(), x, y)
}

func nearByte(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d <= tol && d >= -tol
}

func brushOf(c RGBA, size float64) BrushSettings {
	b := DefaultBrush()
	b.Color = c
	b.Size = size
	return b
}

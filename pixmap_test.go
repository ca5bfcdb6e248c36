package sketch

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 4, Red)

	if got := pm.NRGBAAt(3, 4); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBAAt = %v, want opaque red", got)
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %v, want transparent", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	before := pm.Clone()

	for _, c := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100}} {
		pm.SetPixel(c.x, c.y, White)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d,%d) = %v, want transparent", c.x, c.y, got)
		}
	}
	if !pm.Equal(before) {
		t.Error("out-of-bounds writes modified the pixmap")
	}
}

func TestPixmapCloneIndependent(t *testing.T) {
	pm := NewPixmap(2, 2)
	c := pm.Clone()
	c.SetPixel(0, 0, Red)
	if pm.NRGBAAt(0, 0).A != 0 {
		t.Error("writing the clone changed the original")
	}
}

func TestPixmapFlip(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(0, 0, Red)

	pm.FlipHorizontal()
	if pm.NRGBAAt(2, 0).R != 255 || pm.NRGBAAt(0, 0).A != 0 {
		t.Error("FlipHorizontal did not move (0,0) to (2,0)")
	}

	pm.FlipVertical()
	if pm.NRGBAAt(2, 1).R != 255 || pm.NRGBAAt(2, 0).A != 0 {
		t.Error("FlipVertical did not move (2,0) to (2,1)")
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.SetPixel(1, 1, RGBA2(0.2, 0.4, 0.6, 0.5))

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	back := FromImage(img)
	if !back.Equal(pm) {
		t.Error("FromImage(ToImage()) differs from original")
	}
}

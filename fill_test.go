package sketch

import "testing"

func TestFillContainment(t *testing.T) {
	s := newTestSurface(t, 60, 60)
	border := brushOf(Black, 3)
	s.DrawShape(ShapeRectangle, Pt(10, 10), Pt(50, 50), border)
	before := s.Composite()

	if !s.FillBucket(30, 30, Red) {
		t.Fatal("FillBucket returned false")
	}
	after := s.Composite()

	if got := pixelAt(after, 30, 30); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("seed = %v, want red", got)
	}
	for y := range 60 {
		for x := range 60 {
			inside := x >= 12 && x < 48 && y >= 12 && y < 48
			onBorder := x >= 8 && x < 52 && y >= 8 && y < 52
			if inside || onBorder {
				continue
			}
			if pixelAt(after, x, y) != pixelAt(before, x, y) {
				t.Fatalf("pixel (%d,%d) outside the border changed", x, y)
			}
		}
	}
}

func TestFillSamplesComposite(t *testing.T) {
	s := newTestSurface(t, 40, 40)
	s.DrawShape(ShapeRectangle, Pt(10, 10), Pt(30, 30), brushOf(Black, 3))

	// Fill on a fresh layer: the border lives on the layer below.
	top := s.AddLayer("color")
	s.FillBucket(20, 20, Blue)

	if got := layerPixel(t, s, top.ID(), 20, 20); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("inside on top layer = %v, want blue", got)
	}
	if got := layerPixel(t, s, top.ID(), 2, 2); got[3] != 0 {
		t.Errorf("outside on top layer = %v, want transparent", got)
	}
	if got := layerPixel(t, s, s.Layers()[0].ID, 20, 20); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("base layer changed: %v", got)
	}
}

func TestFillNoops(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	tests := []struct {
		name string
		x, y int
		c    RGBA
	}{
		{"outside left", -1, 5, Red},
		{"outside bottom", 5, 10, Red},
		{"same color", 5, 5, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.FillBucket(tt.x, tt.y, tt.c) {
				t.Error("FillBucket returned true")
			}
		})
	}
	if s.CanUndo() {
		t.Error("no-op fills should not checkpoint")
	}
}

func TestFillTolerance(t *testing.T) {
	s := newTestSurface(t, 3, 1)
	pix := s.ActiveLayer().writable()
	// (220,220,220) is within 35 of white; (200,200,200) is not.
	pix[4], pix[5], pix[6] = 220, 220, 220
	pix[8], pix[9], pix[10] = 200, 200, 200

	s.FillBucket(0, 0, Green)
	id := s.ActiveLayer().ID()
	if got := layerPixel(t, s, id, 1, 0); got != [4]uint8{0, 255, 0, 255} {
		t.Errorf("near pixel = %v, want filled", got)
	}
	if got := layerPixel(t, s, id, 2, 0); got != [4]uint8{200, 200, 200, 255} {
		t.Errorf("far pixel = %v, want untouched", got)
	}
}

func BenchmarkFillBucket(b *testing.B) {
	s, _ := NewSurface(800, 600)
	colors := []RGBA{Red, Blue}
	i := 0
	for b.Loop() {
		s.FillBucket(400, 300, colors[i%2])
		i++
	}
}

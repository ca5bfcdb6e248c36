package sketch

import (
	"image"
	"testing"
)

func TestMaskOffsetRegion(t *testing.T) {
	m := NewMask(image.Rect(10, 20, 14, 24))
	m.Set(11, 21, 200)

	if got := m.At(11, 21); got != 200 {
		t.Errorf("At(11,21) = %d, want 200", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("At outside = %d, want 0", got)
	}
	m.Set(100, 100, 9) // ignored
	if m.Bounds() != image.Rect(10, 20, 14, 24) {
		t.Errorf("Bounds = %v", m.Bounds())
	}
}

func TestMaskRaise(t *testing.T) {
	m := NewMask(image.Rect(0, 0, 2, 2))
	m.raise(0, 0, 100)
	m.raise(0, 0, 50)
	if got := m.At(0, 0); got != 100 {
		t.Errorf("raise kept %d, want 100", got)
	}
	m.raise(0, 0, 180)
	if got := m.At(0, 0); got != 180 {
		t.Errorf("raise kept %d, want 180", got)
	}
}

func TestMaskEmpty(t *testing.T) {
	m := NewMask(image.Rect(0, 0, 3, 3))
	if !m.Empty() {
		t.Error("new mask not empty")
	}
	m.Set(1, 1, 1)
	if m.Empty() {
		t.Error("mask with coverage reports empty")
	}
}

func TestMaskBlurredGrowsAndClips(t *testing.T) {
	m := NewMask(image.Rect(5, 5, 6, 6))
	m.Set(5, 5, 255)

	b := m.blurred(1, image.Rect(0, 0, 8, 8))
	if !b.Bounds().In(image.Rect(0, 0, 8, 8)) {
		t.Errorf("blurred bounds %v escape clip", b.Bounds())
	}
	if b.At(6, 5) == 0 || b.At(4, 5) == 0 {
		t.Error("blur did not spread coverage")
	}
}

func TestMaskBlurredHugeRadius(t *testing.T) {
	clip := image.Rect(0, 0, 8, 8)
	m := NewMask(image.Rect(3, 3, 5, 5))
	m.Set(3, 3, 255)

	b := m.blurred(1e15, clip)
	if b.Bounds() != clip {
		t.Errorf("Bounds = %v, want %v", b.Bounds(), clip)
	}
	if b.At(0, 0) == 0 {
		t.Error("blurred mask did not spread")
	}
}

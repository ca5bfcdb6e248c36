package sketch

import (
	"image"

	"github.com/gogpu/sketch/internal/filter"
)

// Mask is an 8-bit coverage buffer over a rectangular region of a surface.
// Values range from 0 (no coverage) to 255 (full coverage).
type Mask struct {
	rect image.Rectangle
	data []uint8
}

// NewMask creates an empty mask covering r.
func NewMask(r image.Rectangle) *Mask {
	r = r.Canon()
	return &Mask{
		rect: r,
		data: make([]uint8, r.Dx()*r.Dy()),
	}
}

// Bounds returns the region covered by the mask.
func (m *Mask) Bounds() image.Rectangle { return m.rect }

// At returns the mask value at (x, y) in surface coordinates.
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(m.rect) {
		return 0
	}
	return m.data[(y-m.rect.Min.Y)*m.rect.Dx()+x-m.rect.Min.X]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if !(image.Point{X: x, Y: y}).In(m.rect) {
		return
	}
	m.data[(y-m.rect.Min.Y)*m.rect.Dx()+x-m.rect.Min.X] = value
}

// raise keeps the larger of the current value and v, so overlapping marks
// in one pass union instead of accumulating.
func (m *Mask) raise(x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}).In(m.rect) {
		return
	}
	i := (y-m.rect.Min.Y)*m.rect.Dx() + x - m.rect.Min.X
	if v > m.data[i] {
		m.data[i] = v
	}
}

// Empty reports whether the mask has no coverage at all.
func (m *Mask) Empty() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// blurred returns a copy of the mask grown by 3*radius (clipped to clip)
// and blurred with a Gaussian of the given radius. The radius is capped
// at filter.MaxRadius of clip.
func (m *Mask) blurred(radius float64, clip image.Rectangle) *Mask {
	radius = min(radius, filter.MaxRadius(clip.Dx(), clip.Dy()))
	pad := int(radius*3) + 1
	out := NewMask(m.rect.Inset(-pad).Intersect(clip))
	for y := m.rect.Min.Y; y < m.rect.Max.Y; y++ {
		for x := m.rect.Min.X; x < m.rect.Max.X; x++ {
			out.Set(x, y, m.At(x, y))
		}
	}
	filter.BlurAlpha(out.data, out.rect.Dx(), out.rect.Dy(), radius)
	return out
}

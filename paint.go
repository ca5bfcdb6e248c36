package sketch

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/internal/blend"
)

// primitive is one coverage shape that a pass renders into a mask.
// weight in [0, 1] scales its coverage.
type primitive interface {
	bounds() Rect
	cover(m *Mask)
	mirrored(width float64) primitive
}

// disc is a round dab.
type disc struct {
	c        Point
	r        float64
	hardness float64
	weight   float64
}

func (d disc) bounds() Rect {
	return Rect{Min: d.c.Sub(Pt(d.r, d.r)), Max: d.c.Add(Pt(d.r, d.r))}
}

func (d disc) cover(m *Mask) {
	r := d.bounds().Inset(1).pixels().Intersect(m.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := circleCoverage(float64(x)+0.5, float64(y)+0.5, d.c.X, d.c.Y, d.r, d.hardness)
			m.raise(x, y, to8(cov*d.weight))
		}
	}
}

func (d disc) mirrored(width float64) primitive {
	d.c = d.c.mirrorX(width)
	return d
}

// capsule is a segment with round caps.
type capsule struct {
	a, b      Point
	halfWidth float64
	hardness  float64
	weight    float64
}

func (c capsule) bounds() Rect {
	return NewRect(c.a, c.b).Inset(c.halfWidth)
}

func (c capsule) cover(m *Mask) {
	r := c.bounds().Inset(1).pixels().Intersect(m.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := capsuleCoverage(float64(x)+0.5, float64(y)+0.5, c.a, c.b, c.halfWidth, c.hardness)
			m.raise(x, y, to8(cov*c.weight))
		}
	}
}

func (c capsule) mirrored(width float64) primitive {
	c.a, c.b = c.a.mirrorX(width), c.b.mirrorX(width)
	return c
}

// box is an axis-aligned rectangle with exact area coverage.
type box struct {
	r      Rect
	weight float64
}

func (b box) bounds() Rect { return b.r }

func (b box) cover(m *Mask) {
	r := b.r.pixels().Intersect(m.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.raise(x, y, to8(boxCoverage(x, y, b.r)*b.weight))
		}
	}
}

func (b box) mirrored(width float64) primitive {
	b.r = NewRect(b.r.Min.mirrorX(width), b.r.Max.mirrorX(width))
	return b
}

// area is a filled path rasterized with a non-zero winding rule.
type area struct {
	path   *Path
	weight float64
}

func (a area) bounds() Rect {
	r, _ := a.path.bounds()
	return r
}

func (a area) cover(m *Mask) {
	r := a.bounds().Inset(1).pixels().Intersect(m.rect)
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	a.path.rasterize(z, Pt(float64(r.Min.X), float64(r.Min.Y)))
	alpha := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	for y := range r.Dy() {
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride+r.Dx()]
		for x, v := range row {
			m.raise(r.Min.X+x, r.Min.Y+y, to8(float64(v)/255*a.weight))
		}
	}
}

func (a area) mirrored(width float64) primitive {
	return area{path: a.path.mirrored(width), weight: a.weight}
}

// pass describes how one batch of primitives lands on a buffer.
type pass struct {
	color   RGBA
	opacity float64
	op      blend.Func
	mirror  bool
	glow    float64 // blur radius of the halo, 0 for none
}

// paint renders prims into one max-union mask and composites it onto dst,
// a straight-alpha buffer the size of the surface.
func (s *Surface) paint(dst []byte, prims []primitive, p pass) {
	if len(prims) == 0 {
		return
	}
	if p.mirror {
		all := make([]primitive, 0, 2*len(prims))
		all = append(all, prims...)
		for _, pr := range prims {
			all = append(all, pr.mirrored(float64(s.width)))
		}
		prims = all
	}

	clip := image.Rect(0, 0, s.width, s.height)
	bounds := prims[0].bounds()
	for _, pr := range prims[1:] {
		bounds = bounds.Union(pr.bounds())
	}
	m := NewMask(bounds.Inset(1).pixels().Intersect(clip))
	if m.rect.Empty() {
		return
	}
	for _, pr := range prims {
		pr.cover(m)
	}

	if p.glow > 0 {
		s.paintMask(dst, m.blurred(p.glow, clip), p)
	}
	s.paintMask(dst, m, p)
}

func (s *Surface) paintMask(dst []byte, m *Mask, p pass) {
	r, g, b, a := p.color.bytes()
	alpha := blend.MulDiv255(a, to8(p.opacity))
	if alpha == 0 {
		return
	}
	for y := m.rect.Min.Y; y < m.rect.Max.Y; y++ {
		for x := m.rect.Min.X; x < m.rect.Max.X; x++ {
			cov := m.At(x, y)
			if cov == 0 {
				continue
			}
			i := (y*s.width + x) * 4
			blend.Pixel(dst[i:i+4], r, g, b, blend.MulDiv255(cov, alpha), p.op)
		}
	}
}

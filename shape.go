package sketch

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/sketch/internal/blend"
)

// ShapeKind selects a parametric shape.
type ShapeKind uint8

// Shape kinds. Every shape is fitted to the box spanned by its start and
// end points.
const (
	ShapeLine ShapeKind = iota
	ShapeRectangle
	ShapeEllipse
	ShapeTriangle
	ShapePentagon
	ShapeHexagon
	ShapeStar
	ShapeArrow
	ShapeHeart
	ShapeDiamond
)

var shapeNames = [...]string{
	ShapeLine:      "line",
	ShapeRectangle: "rectangle",
	ShapeEllipse:   "ellipse",
	ShapeTriangle:  "triangle",
	ShapePentagon:  "pentagon",
	ShapeHexagon:   "hexagon",
	ShapeStar:      "star",
	ShapeArrow:     "arrow",
	ShapeHeart:     "heart",
	ShapeDiamond:   "diamond",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// ParseShapeKind returns the shape with the given name (case-insensitive).
func ParseShapeKind(name string) (ShapeKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return ShapeKind(i), nil
		}
	}
	return ShapeLine, fmt.Errorf("sketch: unknown shape %q", name)
}

// Preview styling.
const (
	previewOpacity = 0.6
	previewDashOn  = 6
	previewDashOff = 4
)

// Arrow head geometry.
const (
	arrowHeadLength = 15
	arrowHeadSpread = math.Pi / 6
)

// closed reports whether the shape encloses an area that can be filled.
func (k ShapeKind) closed() bool {
	return k != ShapeLine && k != ShapeArrow
}

// ShapePath returns the outline of the shape fitted to start and end.
func ShapePath(kind ShapeKind, start, end Point) *Path {
	p := NewPath()
	r := NewRect(start, end)
	c := r.Center()
	w, h := r.Width(), r.Height()

	switch kind {
	case ShapeLine:
		p.MoveTo(start.X, start.Y)
		p.LineTo(end.X, end.Y)
	case ShapeRectangle:
		p.Polygon([]Point{r.Min, Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)})
	case ShapeEllipse:
		p.Ellipse(c.X, c.Y, w/2, h/2)
	case ShapeTriangle:
		p.Polygon([]Point{Pt(c.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)})
	case ShapePentagon:
		p.Polygon(regularPolygon(c, math.Min(w, h)/2, 5))
	case ShapeHexagon:
		p.Polygon(regularPolygon(c, math.Min(w, h)/2, 6))
	case ShapeStar:
		p.Polygon(star(c, w/2, w/4, 5))
	case ShapeArrow:
		angle := math.Atan2(end.Y-start.Y, end.X-start.X)
		p.MoveTo(start.X, start.Y)
		p.LineTo(end.X, end.Y)
		for _, a := range []float64{angle - arrowHeadSpread, angle + arrowHeadSpread} {
			p.MoveTo(end.X, end.Y)
			p.LineTo(end.X-arrowHeadLength*math.Cos(a), end.Y-arrowHeadLength*math.Sin(a))
		}
	case ShapeHeart:
		top, bottom := r.Min.Y, r.Max.Y
		left, right := r.Min.X, r.Max.X
		p.MoveTo(c.X, top+h/4)
		p.CubicTo(c.X, top, left, top, left, top+h/4)
		p.CubicTo(left, top+h/2, c.X, top+h*3/4, c.X, bottom)
		p.CubicTo(c.X, top+h*3/4, right, top+h/2, right, top+h/4)
		p.CubicTo(right, top, c.X, top, c.X, top+h/4)
		p.Close()
	case ShapeDiamond:
		p.Polygon([]Point{Pt(c.X, r.Min.Y), Pt(r.Max.X, c.Y), Pt(c.X, r.Max.Y), Pt(r.Min.X, c.Y)})
	}
	return p
}

// regularPolygon returns n vertices on a circle, the first pointing up.
func regularPolygon(c Point, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range n {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = c.Add(Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	return pts
}

// star returns the 2n vertices of a star alternating outer and inner radii.
func star(c Point, outer, inner float64, n int) []Point {
	pts := make([]Point, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		pts[i] = c.Add(Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	return pts
}

// shapePrimitives returns the coverage primitives for a shape. Outlines
// are cut by dash when it is non-nil.
func shapePrimitives(kind ShapeKind, start, end Point, brush BrushSettings, dash *Dash) []primitive {
	path := ShapePath(kind, start, end)
	var prims []primitive
	if brush.FillShape && kind.closed() {
		prims = append(prims, area{path: path, weight: 1})
		if dash == nil {
			return prims
		}
	}
	for _, pl := range path.flatten() {
		for _, run := range dash.split(pl) {
			prims = append(prims, polylineCapsules(run, brush.radius(), 1)...)
		}
	}
	return prims
}

// PreviewShape draws the shape onto the transient overlay at reduced
// opacity with a dashed outline. Layers are not touched.
func (s *Surface) PreviewShape(kind ShapeKind, start, end Point, brush BrushSettings) {
	brush = brush.normalized()
	s.preview = NewPixmap(s.width, s.height)
	prims := shapePrimitives(kind, start, end, brush, NewDash(previewDashOn, previewDashOff))
	s.paint(s.preview.data, prims, pass{
		color:   brush.Color,
		opacity: brush.Opacity * previewOpacity,
		op:      blend.SourceOver,
	})
}

// ClearPreview removes the shape preview.
func (s *Surface) ClearPreview() {
	s.preview = nil
}

// Overlay returns a copy of the preview overlay, or nil when none is shown.
func (s *Surface) Overlay() *Pixmap {
	if s.preview == nil {
		return nil
	}
	return s.preview.Clone()
}

// DrawShape commits the shape to the active layer and clears the preview.
func (s *Surface) DrawShape(kind ShapeKind, start, end Point, brush BrushSettings) bool {
	if int(kind) >= len(shapeNames) {
		return false
	}
	l := s.activeUnlocked("shape")
	if l == nil {
		return false
	}
	brush = brush.normalized()
	s.SaveToHistory()
	s.preview = nil
	s.paint(l.writable(), shapePrimitives(kind, start, end, brush, nil), pass{
		color:   brush.Color,
		opacity: brush.Opacity,
		op:      blend.SourceOver,
	})
	return true
}

package sketch

import "golang.org/x/image/vector"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths used for shape geometry.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo adds a line to the path.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadTo adds a quadratic Bezier curve to the path.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo adds a cubic Bezier curve to the path.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: Pt(x, y)})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Polygon adds a closed polygon through pts.
func (p *Path) Polygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	p.Close()
}

// Ellipse adds an ellipse to the path using four cubic Bezier arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// polyline is one flattened subpath.
type polyline struct {
	points []Point
	closed bool
}

// flatten converts the path to polylines.
func (p *Path) flatten() []polyline {
	var out []polyline
	var cur polyline
	var last Point

	flush := func() {
		if len(cur.points) > 0 {
			out = append(out, cur)
		}
		cur = polyline{}
	}

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur.points = append(cur.points, e.Point)
			last = e.Point
		case LineTo:
			if len(cur.points) == 0 {
				cur.points = append(cur.points, last)
			}
			cur.points = append(cur.points, e.Point)
			last = e.Point
		case QuadTo:
			if len(cur.points) == 0 {
				cur.points = append(cur.points, last)
			}
			cur.points = NewQuadBez(last, e.Control, e.Point).Flatten(cur.points)
			last = e.Point
		case CubicTo:
			if len(cur.points) == 0 {
				cur.points = append(cur.points, last)
			}
			cur.points = NewCubicBez(last, e.Control1, e.Control2, e.Point).Flatten(cur.points)
			last = e.Point
		case Close:
			if len(cur.points) > 0 {
				cur.closed = true
				last = cur.points[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// bounds returns the bounding box of the control points.
func (p *Path) bounds() (Rect, bool) {
	var r Rect
	ok := false
	add := func(q Point) {
		if !ok {
			r = Rect{Min: q, Max: q}
			ok = true
			return
		}
		r = r.Union(Rect{Min: q, Max: q})
	}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		case Close:
		}
	}
	return r, ok
}

// mirrored returns a copy of the path reflected about x = width/2.
func (p *Path) mirrored(width float64) *Path {
	m := &Path{elements: make([]PathElement, len(p.elements))}
	for i, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			m.elements[i] = MoveTo{Point: e.Point.mirrorX(width)}
		case LineTo:
			m.elements[i] = LineTo{Point: e.Point.mirrorX(width)}
		case QuadTo:
			m.elements[i] = QuadTo{Control: e.Control.mirrorX(width), Point: e.Point.mirrorX(width)}
		case CubicTo:
			m.elements[i] = CubicTo{
				Control1: e.Control1.mirrorX(width),
				Control2: e.Control2.mirrorX(width),
				Point:    e.Point.mirrorX(width),
			}
		default:
			m.elements[i] = el
		}
	}
	return m
}

// rasterize feeds the path into z with coordinates shifted by -origin.
// Every subpath is closed so the result is a fill.
func (p *Path) rasterize(z *vector.Rasterizer, origin Point) {
	f := func(q Point) (float32, float32) {
		return float32(q.X - origin.X), float32(q.Y - origin.Y)
	}
	open := false
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f(e.Point))
			open = true
		case LineTo:
			z.LineTo(f(e.Point))
		case QuadTo:
			cx, cy := f(e.Control)
			x, y := f(e.Point)
			z.QuadTo(cx, cy, x, y)
		case CubicTo:
			c1x, c1y := f(e.Control1)
			c2x, c2y := f(e.Control2)
			x, y := f(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

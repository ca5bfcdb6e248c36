package sketch

import (
	"math"

	"github.com/gogpu/sketch/internal/blend"
)

// strokeBufferSize bounds the number of buffered samples per stroke.
const strokeBufferSize = 8

// Diffuse tool parameters.
const (
	airbrushSpecks     = 25
	airbrushWeight     = 0.15
	watercolorBlobs    = 4
	watercolorWeight   = 0.08
	watercolorHard     = 0.3
	charcoalGrains     = 10
	oilWidthFactor     = 1.2
	oilWeight          = 0.6
	calligraphyMinimum = 0.3
)

// strokeState tracks a stroke between BeginStroke and EndStroke.
type strokeState struct {
	active  bool
	points  []Point // stabilized samples, newest last
	lastMid Point   // start of the next smoothing curve
}

// Stroking reports whether a stroke is in progress.
func (s *Surface) Stroking() bool { return s.stroke.active }

// BeginStroke starts a stroke at (x, y) on the active layer. It saves a
// history snapshot first, so the whole stroke is one undo unit, and paints
// the first mark. Returns false when the active layer is locked.
func (s *Surface) BeginStroke(x, y float64, brush BrushSettings, tool Tool) bool {
	l := s.activeUnlocked("stroke")
	if l == nil {
		return false
	}
	s.SaveToHistory()

	p := Pt(x, y)
	s.stroke = strokeState{
		active:  true,
		points:  append(make([]Point, 0, strokeBufferSize), p),
		lastMid: p,
	}

	brush = brush.normalized()
	var prims []primitive
	if tool.Style() == StyleDot {
		prims = []primitive{disc{c: p, r: brush.radius(), hardness: tool.hardness(brush), weight: 1}}
	} else {
		prims = s.diffuse(p, p, brush, tool)
	}
	s.paint(l.writable(), prims, strokePass(brush, tool, s.mirror))
	return true
}

// ContinueStroke extends the stroke to (x, y). Calls outside a stroke are
// ignored.
func (s *Surface) ContinueStroke(x, y float64, brush BrushSettings, tool Tool) bool {
	if !s.stroke.active {
		return false
	}
	l := s.activeUnlocked("stroke")
	if l == nil {
		return false
	}
	brush = brush.normalized()

	last := s.stroke.points[len(s.stroke.points)-1]
	p := stabilize(last, Pt(x, y), brush.Stabilizer)

	var prims []primitive
	if tool.Style() == StyleDot {
		mid := last.Midpoint(p)
		pts := NewQuadBez(s.stroke.lastMid, last, mid).Flatten([]Point{s.stroke.lastMid})
		prims = polylineCapsules(pts, brush.radius(), tool.hardness(brush))
		s.stroke.lastMid = mid
	} else {
		prims = s.diffuse(last, p, brush, tool)
	}
	s.paint(l.writable(), prims, strokePass(brush, tool, s.mirror))

	if len(s.stroke.points) == strokeBufferSize {
		s.stroke.points = append(s.stroke.points[:0], s.stroke.points[1:]...)
	}
	s.stroke.points = append(s.stroke.points, p)
	return true
}

// EndStroke finishes the stroke.
func (s *Surface) EndStroke() {
	s.stroke = strokeState{}
}

// stabilize pulls the incoming sample toward the last one by level/10.
func stabilize(last, in Point, level int) Point {
	if level <= 0 {
		return in
	}
	return last.Add(in.Sub(last).Mul(1 - float64(level)/MaxStabilizer))
}

func strokePass(brush BrushSettings, tool Tool, mirror bool) pass {
	p := pass{
		color:   brush.Color,
		opacity: brush.Opacity,
		op:      blend.SourceOver,
		mirror:  mirror,
	}
	if tool == Eraser {
		p.color = White
		p.op = blend.DestinationOut
		return p
	}
	if brush.Glow {
		p.glow = brush.radius()
	}
	return p
}

// polylineCapsules covers a polyline with round-capped segments.
func polylineCapsules(pts []Point, halfWidth, hardness float64) []primitive {
	if len(pts) == 1 {
		return []primitive{disc{c: pts[0], r: halfWidth, hardness: hardness, weight: 1}}
	}
	prims := make([]primitive, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		prims = append(prims, capsule{a: pts[i-1], b: pts[i], halfWidth: halfWidth, hardness: hardness, weight: 1})
	}
	return prims
}

// diffuse returns the marks a diffuse tool stamps for the move from prev
// to p.
func (s *Surface) diffuse(prev, p Point, brush BrushSettings, tool Tool) []primitive {
	size := brush.Size
	switch tool {
	case Airbrush:
		speck := max(1, size/8) / 2
		prims := make([]primitive, 0, airbrushSpecks)
		for range airbrushSpecks {
			prims = append(prims, disc{c: s.scatter(p, size), r: speck, hardness: 1, weight: airbrushWeight})
		}
		return prims
	case Watercolor:
		prims := make([]primitive, 0, watercolorBlobs)
		for range watercolorBlobs {
			r := size * (0.6 + 0.4*s.rng.Float64())
			prims = append(prims, disc{c: s.scatter(p, size*0.3), r: r, hardness: watercolorHard, weight: watercolorWeight})
		}
		return prims
	case Charcoal:
		prims := make([]primitive, 0, charcoalGrains)
		for range charcoalGrains {
			c := p.Add(Pt((s.rng.Float64()*2-1)*size/2, (s.rng.Float64()*2-1)*size/2))
			w, h := 1+2*s.rng.Float64(), 1+2*s.rng.Float64()
			prims = append(prims, box{r: Rect{Min: c, Max: c.Add(Pt(w, h))}, weight: 0.3 + 0.4*s.rng.Float64()})
		}
		return prims
	case Oil:
		return []primitive{capsule{a: prev, b: p, halfWidth: size * oilWidthFactor / 2, hardness: brush.Hardness, weight: oilWeight}}
	case Calligraphy:
		angle := math.Atan2(p.Y-prev.Y, p.X-prev.X)
		width := size * (calligraphyMinimum + (1-calligraphyMinimum)*math.Abs(math.Sin(angle)))
		return []primitive{capsule{a: prev, b: p, halfWidth: width / 2, hardness: 1, weight: 1}}
	default:
		return []primitive{disc{c: p, r: brush.radius(), hardness: tool.hardness(brush), weight: 1}}
	}
}

// scatter returns a point uniformly distributed in the disc of radius r
// around c.
func (s *Surface) scatter(c Point, r float64) Point {
	angle := s.rng.Float64() * 2 * math.Pi
	d := r * math.Sqrt(s.rng.Float64())
	return c.Add(Pt(math.Cos(angle)*d, math.Sin(angle)*d))
}

package sketch

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
const sdfAntialiasWidth = 0.7

// circleCoverage computes anti-aliased coverage at pixel center (px, py)
// for a disc of radius r at (cx, cy). hardness in [0, 1] sets where the
// edge starts to fade: 1 is a crisp edge, 0 fades from the center.
func circleCoverage(px, py, cx, cy, r, hardness float64) float64 {
	return edgeCoverage(math.Hypot(px-cx, py-cy), r, hardness)
}

// capsuleCoverage computes anti-aliased coverage for a segment a-b with
// round caps and the given half width.
func capsuleCoverage(px, py float64, a, b Point, halfWidth, hardness float64) float64 {
	return edgeCoverage(segmentDistance(Pt(px, py), a, b), halfWidth, hardness)
}

// edgeCoverage maps a distance from a shape's core to coverage for a shape
// of radius r, fading from r*hardness outwards.
func edgeCoverage(dist, r, hardness float64) float64 {
	cov := smoothstepCoverage(dist - r)
	if hardness >= 1 || cov == 0 {
		return cov
	}
	inner := r * max(hardness, 0)
	if dist <= inner {
		return cov
	}
	soft := 1 - (dist-inner)/(r-inner)
	if soft <= 0 {
		return 0
	}
	return math.Min(cov, soft*soft*(3-2*soft))
}

// segmentDistance returns the distance from p to the segment a-b.
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// boxCoverage returns the area of the unit pixel at (x, y) covered by the
// axis-aligned rectangle r.
func boxCoverage(x, y int, r Rect) float64 {
	w := math.Min(float64(x+1), r.Max.X) - math.Max(float64(x), r.Min.X)
	h := math.Min(float64(y+1), r.Max.Y) - math.Max(float64(y), r.Min.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

package sketch

import "math"

// Dash defines a dash pattern for outlines.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, 0, len(lengths))
	positive := false
	for _, l := range lengths {
		l = math.Abs(l)
		if l > 0 {
			positive = true
		}
		normalized = append(normalized, l)
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// split cuts a polyline into the "on" pieces of the pattern.
// A solid (nil) dash returns the polyline unchanged.
func (d *Dash) split(pl polyline) [][]Point {
	pts := pl.points
	if pl.closed && len(pts) > 1 {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if !d.IsDashed() || len(pts) < 2 {
		return [][]Point{pts}
	}

	arr := d.effectiveArray()
	total := d.PatternLength()

	// Locate the starting position inside the pattern.
	idx := 0
	pos := math.Mod(d.Offset, total)
	if pos < 0 {
		pos += total
	}
	for pos >= arr[idx] {
		pos -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	remain := arr[idx] - pos
	on := idx%2 == 0

	var out [][]Point
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		t := 0.0
		for segLen-t > remain {
			t += remain
			p := a.Lerp(b, t/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			remain = arr[idx]
		}
		remain -= segLen - t
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

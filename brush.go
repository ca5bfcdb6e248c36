package sketch

// MaxStabilizer is the strongest stabilizer setting.
const MaxStabilizer = 10

// BrushSettings describes how marks look. The host may change them between
// samples; every call reads the value it is given.
type BrushSettings struct {
	// Color is the paint color. Its alpha multiplies Opacity.
	Color RGBA

	// Size is the mark diameter in pixels.
	Size float64

	// Opacity in [0, 1] scales the coverage of every mark.
	Opacity float64

	// Hardness in [0, 1] controls edge falloff. 1 gives crisp
	// anti-aliased edges; 0 fades from the center.
	Hardness float64

	// FillShape fills closed shapes instead of outlining them.
	FillShape bool

	// Stabilizer in [0, 10] pulls each sample toward the previous one.
	Stabilizer int

	// Glow paints a blurred halo in the brush color beneath each mark.
	Glow bool
}

// DefaultBrush returns a 5 px opaque black hard brush.
func DefaultBrush() BrushSettings {
	return BrushSettings{
		Color:    Black,
		Size:     5,
		Opacity:  1,
		Hardness: 1,
	}
}

// normalized clamps every field to its valid range.
func (b BrushSettings) normalized() BrushSettings {
	b.Opacity = clamp01(b.Opacity)
	b.Hardness = clamp01(b.Hardness)
	if !(b.Size >= 1) {
		b.Size = 1
	}
	b.Stabilizer = min(max(b.Stabilizer, 0), MaxStabilizer)
	return b
}

func (b BrushSettings) radius() float64 { return b.Size / 2 }

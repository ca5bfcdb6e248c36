package sketch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/sketch/internal/blend"
)

// LayerID identifies a layer within its surface. IDs are never reused.
type LayerID uint32

// BlendMode selects how a layer combines with the layers beneath it.
type BlendMode uint8

// Blend modes, following the W3C Compositing and Blending separable modes.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

// String returns the CSS name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode returns the blend mode with the given CSS name.
// Matching is case-insensitive; "" means normal.
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BlendNormal, nil
	}
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("sketch: unknown blend mode %q", name)
}

func (m BlendMode) op() blend.Mode {
	return blend.Mode(m)
}

// Layer is one raster buffer in a surface's stack. The host reads a layer's
// properties; all mutation goes through the owning Surface.
type Layer struct {
	id      LayerID
	name    string
	visible bool
	locked  bool
	opacity float64
	mode    BlendMode

	width, height int

	// pix holds straight-alpha RGBA bytes, width*height*4.
	pix []byte

	// shared is set while a history snapshot references pix. The next
	// write clones the buffer first.
	shared bool
}

// LayerInfo is a read-only description of a layer for a layer panel.
type LayerInfo struct {
	ID        LayerID
	Name      string
	Visible   bool
	Locked    bool
	Opacity   float64
	BlendMode BlendMode
}

// ID returns the layer's identifier.
func (l *Layer) ID() LayerID { return l.id }

// Name returns the display name.
func (l *Layer) Name() string { return l.name }

// Visible reports whether the layer takes part in compositing.
func (l *Layer) Visible() bool { return l.visible }

// Locked reports whether painting on the layer is rejected.
func (l *Layer) Locked() bool { return l.locked }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// BlendMode returns the layer blend mode.
func (l *Layer) BlendMode() BlendMode { return l.mode }

// Info returns a snapshot of the layer's properties.
func (l *Layer) Info() LayerInfo {
	return LayerInfo{
		ID:        l.id,
		Name:      l.name,
		Visible:   l.visible,
		Locked:    l.locked,
		Opacity:   l.opacity,
		BlendMode: l.mode,
	}
}

// Pixmap returns a copy of the layer's pixels.
func (l *Layer) Pixmap() *Pixmap {
	return &Pixmap{width: l.width, height: l.height, data: slices.Clone(l.pix)}
}

// writable returns the pixel buffer for modification, detaching it from
// any snapshot that still references it.
func (l *Layer) writable() []byte {
	if l.shared {
		l.pix = slices.Clone(l.pix)
		l.shared = false
	}
	return l.pix
}

// fill sets every pixel to c.
func (l *Layer) fill(c RGBA) {
	pix := l.writable()
	r, g, b, a := c.bytes()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
}

// erase makes every pixel transparent.
func (l *Layer) erase() {
	if l.shared {
		l.pix = make([]byte, len(l.pix))
		l.shared = false
		return
	}
	clear(l.pix)
}

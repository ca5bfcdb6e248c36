package sketch

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Surface is a multi-layer paint surface. It owns every layer, the undo
// history, the in-progress stroke, and the shape preview overlay.
//
// A Surface is not safe for concurrent use. Independent surfaces share no
// state.
type Surface struct {
	width, height int

	layers []*Layer // index 0 is the bottom
	active LayerID
	nextID LayerID

	background RGBA
	mirror     bool

	history history
	stroke  strokeState
	preview *Pixmap // nil when no preview is shown

	rng *rand.Rand
}

// NewSurface creates a surface with one base layer filled with the
// background color. Width and height must be positive.
func NewSurface(width, height int, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		width:      width,
		height:     height,
		background: o.background,
		history:    history{limit: o.historyLimit},
		rng:        rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
	}
	base := s.newLayer(o.baseName)
	base.fill(o.background)
	s.layers = append(s.layers, base)
	s.active = base.id
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

func (s *Surface) newLayer(name string) *Layer {
	s.nextID++
	if name == "" {
		name = fmt.Sprintf("Layer %d", s.nextID)
	}
	return &Layer{
		id:      s.nextID,
		name:    name,
		visible: true,
		opacity: 1,
		width:   s.width,
		height:  s.height,
		pix:     make([]byte, s.width*s.height*4),
	}
}

// AddLayer appends a transparent layer at the top of the stack and makes it
// active. An empty name yields "Layer N".
func (s *Surface) AddLayer(name string) *Layer {
	l := s.newLayer(name)
	s.layers = append(s.layers, l)
	s.active = l.id
	Logger().Debug("sketch: layer added", "id", l.id, "name", l.name)
	return l
}

// DuplicateLayer copies the pixels, opacity, and blend mode of the layer
// into a new layer at the top of the stack. Returns nil for an unknown id.
func (s *Surface) DuplicateLayer(id LayerID) *Layer {
	src := s.Layer(id)
	if src == nil {
		return nil
	}
	l := s.newLayer(src.name + " copy")
	copy(l.pix, src.pix)
	l.opacity = src.opacity
	l.mode = src.mode
	s.layers = append(s.layers, l)
	s.active = l.id
	Logger().Debug("sketch: layer duplicated", "from", id, "id", l.id)
	return l
}

// DeleteLayer removes the layer. The last remaining layer cannot be
// deleted. Deleting the active layer activates the topmost layer.
func (s *Surface) DeleteLayer(id LayerID) bool {
	i := s.LayerIndex(id)
	if i < 0 || len(s.layers) == 1 {
		return false
	}
	s.removeAt(i)
	Logger().Debug("sketch: layer deleted", "id", id)
	return true
}

func (s *Surface) removeAt(i int) {
	id := s.layers[i].id
	s.layers = slices.Delete(s.layers, i, i+1)
	if s.active == id {
		s.active = s.layers[len(s.layers)-1].id
	}
}

// ReorderLayers moves the layer at stack index from to index to.
func (s *Surface) ReorderLayers(from, to int) bool {
	n := len(s.layers)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	l := s.layers[from]
	s.layers = slices.Insert(slices.Delete(s.layers, from, from+1), to, l)
	return true
}

// MergeDown paints the layer through its opacity and blend mode onto the
// layer directly below, removes it, and activates the merge target.
// The bottom layer cannot be merged down.
func (s *Surface) MergeDown(id LayerID) bool {
	i := s.LayerIndex(id)
	if i <= 0 {
		return false
	}
	top, below := s.layers[i], s.layers[i-1]
	if below.locked {
		Logger().Warn("sketch: merge target is locked", "id", below.id)
		return false
	}
	s.SaveToHistory()
	compositeLayer(below.writable(), top)
	s.removeAt(i)
	s.active = below.id
	Logger().Debug("sketch: layer merged", "id", id, "into", below.id)
	return true
}

// ClearLayer erases every pixel of the layer.
func (s *Surface) ClearLayer(id LayerID) bool {
	l := s.Layer(id)
	if l == nil || !s.unlocked(l, "clear") {
		return false
	}
	s.SaveToHistory()
	l.erase()
	return true
}

// HardReset erases every layer and refills the bottom layer with the
// background color. Upper layers stay transparent rather than being
// filled, so the composite after a reset shows the background once
// instead of stacking opaque copies that hide each layer's blend mode.
func (s *Surface) HardReset() {
	s.SaveToHistory()
	for _, l := range s.layers {
		l.erase()
	}
	s.layers[0].fill(s.background)
	s.preview = nil
	s.stroke = strokeState{}
}

// ActiveLayer returns the layer that receives paint.
func (s *Surface) ActiveLayer() *Layer {
	return s.Layer(s.active)
}

// SetActiveLayer selects the layer that receives paint.
func (s *Surface) SetActiveLayer(id LayerID) bool {
	if s.Layer(id) == nil {
		return false
	}
	s.active = id
	return true
}

// Layer returns the layer with the given id, or nil.
func (s *Surface) Layer(id LayerID) *Layer {
	if i := s.LayerIndex(id); i >= 0 {
		return s.layers[i]
	}
	return nil
}

// LayerIndex returns the stack index of the layer, or -1.
func (s *Surface) LayerIndex(id LayerID) int {
	for i, l := range s.layers {
		if l.id == id {
			return i
		}
	}
	return -1
}

// Layers describes the stack bottom to top.
func (s *Surface) Layers() []LayerInfo {
	out := make([]LayerInfo, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Info()
	}
	return out
}

// LayerCount returns the number of layers.
func (s *Surface) LayerCount() int { return len(s.layers) }

// SetLayerVisible shows or hides the layer.
func (s *Surface) SetLayerVisible(id LayerID, visible bool) bool {
	return s.update(id, func(l *Layer) { l.visible = visible })
}

// SetLayerLocked locks or unlocks the layer against painting.
func (s *Surface) SetLayerLocked(id LayerID, locked bool) bool {
	return s.update(id, func(l *Layer) { l.locked = locked })
}

// SetLayerOpacity sets the layer opacity, clamped to [0, 1].
func (s *Surface) SetLayerOpacity(id LayerID, opacity float64) bool {
	return s.update(id, func(l *Layer) { l.opacity = clamp01(opacity) })
}

// SetLayerBlendMode sets how the layer composites onto the layers below.
func (s *Surface) SetLayerBlendMode(id LayerID, mode BlendMode) bool {
	if int(mode) >= len(blendModeNames) {
		return false
	}
	return s.update(id, func(l *Layer) { l.mode = mode })
}

// RenameLayer changes the display name. Empty names are rejected.
func (s *Surface) RenameLayer(id LayerID, name string) bool {
	if name == "" {
		return false
	}
	return s.update(id, func(l *Layer) { l.name = name })
}

func (s *Surface) update(id LayerID, fn func(*Layer)) bool {
	l := s.Layer(id)
	if l == nil {
		return false
	}
	fn(l)
	return true
}

// Background returns the background color.
func (s *Surface) Background() RGBA { return s.background }

// SetBackgroundColor changes the color used by HardReset and JPEG export.
// Existing pixels are not repainted.
func (s *Surface) SetBackgroundColor(c RGBA) { s.background = c }

// MirrorMode reports whether marks are mirrored about the vertical center.
func (s *Surface) MirrorMode() bool { return s.mirror }

// SetMirrorMode enables or disables mirrored drawing.
func (s *Surface) SetMirrorMode(on bool) { s.mirror = on }

// Axis selects the direction of a Flip.
type Axis uint8

const (
	// Horizontal mirrors left to right.
	Horizontal Axis = iota
	// Vertical mirrors top to bottom.
	Vertical
)

// Flip mirrors every layer along the axis.
func (s *Surface) Flip(axis Axis) bool {
	if axis != Horizontal && axis != Vertical {
		return false
	}
	s.SaveToHistory()
	for _, l := range s.layers {
		pm := &Pixmap{width: s.width, height: s.height, data: l.writable()}
		if axis == Horizontal {
			pm.FlipHorizontal()
		} else {
			pm.FlipVertical()
		}
	}
	return true
}

// activeUnlocked returns the active layer when it accepts paint.
func (s *Surface) activeUnlocked(op string) *Layer {
	l := s.ActiveLayer()
	if !s.unlocked(l, op) {
		return nil
	}
	return l
}

func (s *Surface) unlocked(l *Layer, op string) bool {
	if l.locked {
		Logger().Warn("sketch: layer is locked", "id", l.id, "op", op)
		return false
	}
	return true
}

package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogpu/sketch"
)

// Exporter writes the surface for an export action.
type Exporter func(s *sketch.Surface, path string) error

// Player applies actions to a surface, tracking the current brush and tool
// the way an interactive host does.
//
// The Player is not safe for concurrent use.
type Player struct {
	surface  *sketch.Surface
	brush    sketch.BrushSettings
	tool     sketch.Tool
	exporter Exporter
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithExporter sets the function export actions call.
func WithExporter(e Exporter) PlayerOption {
	return func(p *Player) {
		p.exporter = e
	}
}

// WithBrush sets the initial brush. The default is sketch.DefaultBrush.
func WithBrush(b sketch.BrushSettings) PlayerOption {
	return func(p *Player) {
		p.brush = b
	}
}

// NewPlayer creates a player drawing on s with the pencil tool.
func NewPlayer(s *sketch.Surface, opts ...PlayerOption) *Player {
	p := &Player{
		surface: s,
		brush:   sketch.DefaultBrush(),
		tool:    sketch.Pencil,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Surface returns the surface the player draws on.
func (p *Player) Surface() *sketch.Surface { return p.surface }

// Brush returns the current brush settings.
func (p *Player) Brush() sketch.BrushSettings { return p.brush }

// Tool returns the current tool.
func (p *Player) Tool() sketch.Tool { return p.tool }

// Play applies every action of the script in order. It stops at the first
// malformed action or when ctx is done.
func (p *Player) Play(ctx context.Context, script *Script) error {
	for i, a := range script.Actions {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay: stopped before action %d: %w", i, err)
		}
		if err := p.Apply(a); err != nil {
			return fmt.Errorf("replay: action %d (%v): %w", i, a.Op, err)
		}
	}
	return nil
}

// Apply performs one action. Operations the surface rejects (locked
// layers, empty history) are not errors; only malformed actions are.
func (p *Player) Apply(a Action) error {
	s := p.surface
	ok := true

	switch a.Op {
	case OpBrush:
		return p.applyBrush(a)
	case OpTool:
		t, err := sketch.ParseTool(a.Tool)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		p.tool = t
	case OpBegin:
		if err := p.toolOverride(a); err != nil {
			return err
		}
		ok = s.BeginStroke(a.X, a.Y, p.brush, p.tool)
	case OpMove:
		ok = s.ContinueStroke(a.X, a.Y, p.brush, p.tool)
	case OpEnd:
		s.EndStroke()
	case OpStroke:
		if len(a.Points) == 0 {
			return fmt.Errorf("%w: stroke without points", ErrInvalidAction)
		}
		if err := p.toolOverride(a); err != nil {
			return err
		}
		ok = s.BeginStroke(a.Points[0][0], a.Points[0][1], p.brush, p.tool)
		for _, pt := range a.Points[1:] {
			s.ContinueStroke(pt[0], pt[1], p.brush, p.tool)
		}
		s.EndStroke()
	case OpShape, OpPreview:
		kind, err := sketch.ParseShapeKind(a.Shape)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		b := p.brush
		if a.Fill != nil {
			b.FillShape = *a.Fill
		}
		start, end := sketch.Pt(a.X, a.Y), sketch.Pt(a.X2, a.Y2)
		if a.Op == OpPreview {
			s.PreviewShape(kind, start, end, b)
		} else {
			ok = s.DrawShape(kind, start, end, b)
		}
	case OpClearPreview:
		s.ClearPreview()
	case OpFill:
		c := p.brush.Color
		if a.Color != "" {
			var err error
			if c, err = sketch.ParseHex(a.Color); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidAction, err)
			}
		}
		ok = s.FillBucket(int(a.X), int(a.Y), c)
	case OpFilter:
		kind, err := sketch.ParseFilterKind(a.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		intensity := 1.0
		if a.Intensity != nil {
			intensity = *a.Intensity
		}
		ok = s.ApplyFilter(kind, intensity)
	case OpBlur:
		ok = s.ApplyBlur(a.Radius)
	case OpSharpen:
		ok = s.ApplySharpen()
	case OpAddLayer:
		s.AddLayer(a.Name)
	case OpDuplicateLayer, OpDeleteLayer, OpSelectLayer, OpMergeDown, OpClearLayer, OpLayer:
		id, err := p.layer(a.Layer)
		if err != nil {
			return err
		}
		ok, err = p.applyLayer(a, id)
		if err != nil {
			return err
		}
	case OpReorder:
		ok = s.ReorderLayers(a.From, a.To)
	case OpMirror:
		on := !s.MirrorMode()
		if a.On != nil {
			on = *a.On
		}
		s.SetMirrorMode(on)
	case OpBackground:
		c, err := sketch.ParseHex(a.Color)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		s.SetBackgroundColor(c)
	case OpFlip:
		axis, err := parseAxis(a.Axis)
		if err != nil {
			return err
		}
		ok = s.Flip(axis)
	case OpReset:
		s.HardReset()
	case OpSave:
		s.SaveToHistory()
	case OpUndo:
		ok = s.Undo()
	case OpRedo:
		ok = s.Redo()
	case OpExport:
		if p.exporter == nil {
			return ErrNoExporter
		}
		if err := p.exporter(s, a.Path); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOp, a.Op)
	}

	if !ok {
		sketch.Logger().Debug("replay: action had no effect", "op", a.Op)
	}
	return nil
}

func (p *Player) applyBrush(a Action) error {
	b := p.brush
	if a.Color != "" {
		c, err := sketch.ParseHex(a.Color)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		b.Color = c
	}
	if a.Size != nil {
		b.Size = *a.Size
	}
	if a.Opacity != nil {
		b.Opacity = *a.Opacity
	}
	if a.Hardness != nil {
		b.Hardness = *a.Hardness
	}
	if a.Stabilizer != nil {
		b.Stabilizer = *a.Stabilizer
	}
	if a.Fill != nil {
		b.FillShape = *a.Fill
	}
	if a.Glow != nil {
		b.Glow = *a.Glow
	}
	p.brush = b
	return nil
}

func (p *Player) toolOverride(a Action) error {
	if a.Tool == "" {
		return nil
	}
	t, err := sketch.ParseTool(a.Tool)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	p.tool = t
	return nil
}

func (p *Player) applyLayer(a Action, id sketch.LayerID) (bool, error) {
	s := p.surface
	switch a.Op {
	case OpDuplicateLayer:
		return s.DuplicateLayer(id) != nil, nil
	case OpDeleteLayer:
		return s.DeleteLayer(id), nil
	case OpSelectLayer:
		return s.SetActiveLayer(id), nil
	case OpMergeDown:
		return s.MergeDown(id), nil
	case OpClearLayer:
		return s.ClearLayer(id), nil
	}

	// OpLayer: property updates.
	if a.Visible != nil {
		s.SetLayerVisible(id, *a.Visible)
	}
	if a.Locked != nil {
		s.SetLayerLocked(id, *a.Locked)
	}
	if a.Alpha != nil {
		s.SetLayerOpacity(id, *a.Alpha)
	}
	if a.Blend != "" {
		mode, err := sketch.ParseBlendMode(a.Blend)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		s.SetLayerBlendMode(id, mode)
	}
	if a.Name != "" {
		s.RenameLayer(id, a.Name)
	}
	return true, nil
}

// layer resolves a layer name, searching from the top of the stack.
// An empty name is the active layer.
func (p *Player) layer(name string) (sketch.LayerID, error) {
	if name == "" {
		return p.surface.ActiveLayer().ID(), nil
	}
	layers := p.surface.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i].Name == name {
			return layers[i].ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

func parseAxis(name string) (sketch.Axis, error) {
	switch strings.ToLower(name) {
	case "", "horizontal", "h":
		return sketch.Horizontal, nil
	case "vertical", "v":
		return sketch.Vertical, nil
	}
	return 0, fmt.Errorf("%w: axis %q", ErrInvalidAction, name)
}

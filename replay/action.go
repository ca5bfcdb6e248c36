package replay

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Op identifies the operation an Action performs.
type Op uint8

const (
	// Brush and tool state
	OpBrush Op = iota // update brush settings
	OpTool            // select the current tool

	// Strokes
	OpBegin  // begin a stroke at x, y
	OpMove   // continue the stroke to x, y
	OpEnd    // end the stroke
	OpStroke // begin, continue through points, end

	// Shapes and fills
	OpShape        // commit a shape spanning x, y to x2, y2
	OpPreview      // preview a shape
	OpClearPreview // remove the preview
	OpFill         // bucket fill at x, y

	// Filters
	OpFilter  // color filter with intensity
	OpBlur    // Gaussian blur with radius
	OpSharpen // 3x3 sharpen

	// Layers
	OpAddLayer       // add a layer named name
	OpDuplicateLayer // duplicate layer
	OpDeleteLayer    // delete layer
	OpSelectLayer    // make layer active
	OpMergeDown      // merge layer into the one below
	OpClearLayer     // erase layer
	OpReorder        // move stack index from to index to
	OpLayer          // set visibility, lock, opacity, blend mode, or name

	// Surface
	OpMirror     // toggle mirror mode
	OpBackground // set background color
	OpFlip       // flip along axis
	OpReset      // hard reset
	OpSave       // explicit history checkpoint
	OpUndo       // undo
	OpRedo       // redo
	OpExport     // export to path

	opCount
)

var opNames = [...]string{
	OpBrush:          "brush",
	OpTool:           "tool",
	OpBegin:          "begin",
	OpMove:           "move",
	OpEnd:            "end",
	OpStroke:         "stroke",
	OpShape:          "shape",
	OpPreview:        "preview",
	OpClearPreview:   "clear-preview",
	OpFill:           "fill",
	OpFilter:         "filter",
	OpBlur:           "blur",
	OpSharpen:        "sharpen",
	OpAddLayer:       "add-layer",
	OpDuplicateLayer: "duplicate-layer",
	OpDeleteLayer:    "delete-layer",
	OpSelectLayer:    "select-layer",
	OpMergeDown:      "merge-down",
	OpClearLayer:     "clear-layer",
	OpReorder:        "reorder",
	OpLayer:          "layer",
	OpMirror:         "mirror",
	OpBackground:     "background",
	OpFlip:           "flip",
	OpReset:          "reset",
	OpSave:           "save",
	OpUndo:           "undo",
	OpRedo:           "redo",
	OpExport:         "export",
}

// String returns the script name of the op.
func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// ParseOp returns the op with the given script name.
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// MarshalYAML encodes the op by name.
func (o Op) MarshalYAML() (any, error) {
	if o >= opCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOp, o)
	}
	return o.String(), nil
}

// UnmarshalYAML decodes an op name.
func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	op, err := ParseOp(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = op
	return nil
}

// Action is one recorded operation. Only the fields the op reads are set.
type Action struct {
	Op Op `yaml:"op"`

	// Coordinates: begin, move, fill, and the first shape corner.
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`
	// Second shape corner.
	X2 float64 `yaml:"x2,omitempty"`
	Y2 float64 `yaml:"y2,omitempty"`
	// Stroke samples.
	Points [][2]float64 `yaml:"points,omitempty,flow"`

	Tool   string `yaml:"tool,omitempty"`
	Shape  string `yaml:"shape,omitempty"`
	Filter string `yaml:"filter,omitempty"`

	// Brush settings; nil fields keep their current value.
	Color      string   `yaml:"color,omitempty"`
	Size       *float64 `yaml:"size,omitempty"`
	Opacity    *float64 `yaml:"opacity,omitempty"`
	Hardness   *float64 `yaml:"hardness,omitempty"`
	Stabilizer *int     `yaml:"stabilizer,omitempty"`
	Fill       *bool    `yaml:"fill,omitempty"`
	Glow       *bool    `yaml:"glow,omitempty"`

	Intensity *float64 `yaml:"intensity,omitempty"`
	Radius    float64  `yaml:"radius,omitempty"`

	// Layer selects a layer by name; empty means the active layer.
	Layer   string   `yaml:"layer,omitempty"`
	Name    string   `yaml:"name,omitempty"`
	From    int      `yaml:"from,omitempty"`
	To      int      `yaml:"to,omitempty"`
	Visible *bool    `yaml:"visible,omitempty"`
	Locked  *bool    `yaml:"locked,omitempty"`
	Blend   string   `yaml:"blend,omitempty"`
	Alpha   *float64 `yaml:"alpha,omitempty"` // layer opacity

	On   *bool  `yaml:"on,omitempty"`
	Axis string `yaml:"axis,omitempty"`

	Path string `yaml:"path,omitempty"`
}

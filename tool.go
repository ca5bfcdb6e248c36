package sketch

import (
	"fmt"
	"strings"
)

// Tool is the kind of mark a stroke leaves.
type Tool uint8

// Drawing tools.
const (
	Pencil Tool = iota
	Brush
	Eraser
	Airbrush
	Watercolor
	Charcoal
	Oil
	Calligraphy
)

// Style groups tools by how they turn samples into marks.
type Style uint8

const (
	// StyleDot tools join samples into smoothed curves.
	StyleDot Style = iota
	// StyleDiffuse tools stamp randomized or angle-dependent marks per sample.
	StyleDiffuse
)

var toolNames = [...]string{
	Pencil:      "pencil",
	Brush:       "brush",
	Eraser:      "eraser",
	Airbrush:    "airbrush",
	Watercolor:  "watercolor",
	Charcoal:    "charcoal",
	Oil:         "oil",
	Calligraphy: "calligraphy",
}

// Style returns how the tool renders samples.
func (t Tool) Style() Style {
	switch t {
	case Pencil, Brush, Eraser:
		return StyleDot
	case Airbrush, Watercolor, Charcoal, Oil, Calligraphy:
		return StyleDiffuse
	default:
		return StyleDot
	}
}

// String returns the tool name.
func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// ParseTool returns the tool with the given name (case-insensitive).
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return Pencil, fmt.Errorf("sketch: unknown tool %q", name)
}

// hardness returns the edge hardness the tool paints with.
func (t Tool) hardness(b BrushSettings) float64 {
	if t == Pencil {
		return 1
	}
	return b.Hardness
}

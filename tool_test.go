package sketch

import "testing"

func TestToolStyle(t *testing.T) {
	tests := []struct {
		tool Tool
		want Style
	}{
		{Pencil, StyleDot},
		{Brush, StyleDot},
		{Eraser, StyleDot},
		{Airbrush, StyleDiffuse},
		{Watercolor, StyleDiffuse},
		{Charcoal, StyleDiffuse},
		{Oil, StyleDiffuse},
		{Calligraphy, StyleDiffuse},
	}
	for _, tt := range tests {
		t.Run(tt.tool.String(), func(t *testing.T) {
			if got := tt.tool.Style(); got != tt.want {
				t.Errorf("Style() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTool(t *testing.T) {
	for i := range toolNames {
		tool := Tool(i)
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	if got, err := ParseTool(" Charcoal "); err != nil || got != Charcoal {
		t.Errorf("ParseTool case-insensitive = %v, %v", got, err)
	}
	if _, err := ParseTool("crayon"); err == nil {
		t.Error("ParseTool(crayon) should fail")
	}
	if got := Tool(99).String(); got != "Tool(99)" {
		t.Errorf("unknown tool String() = %q", got)
	}
}

func TestBrushNormalized(t *testing.T) {
	b := BrushSettings{Size: 0, Opacity: 2, Hardness: -1, Stabilizer: 42}.normalized()
	if b.Size != 1 || b.Opacity != 1 || b.Hardness != 0 || b.Stabilizer != MaxStabilizer {
		t.Errorf("normalized = %+v", b)
	}
	if got := (BrushSettings{Stabilizer: -3}).normalized().Stabilizer; got != 0 {
		t.Errorf("negative stabilizer = %d, want 0", got)
	}
}

func TestPencilIgnoresHardness(t *testing.T) {
	b := DefaultBrush()
	b.Hardness = 0.2
	if got := Pencil.hardness(b); got != 1 {
		t.Errorf("pencil hardness = %v, want 1", got)
	}
	if got := Brush.hardness(b); got != 0.2 {
		t.Errorf("brush hardness = %v, want 0.2", got)
	}
}

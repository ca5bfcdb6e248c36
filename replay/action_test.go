package replay

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestOpNames(t *testing.T) {
	for i := range opNames {
		op := Op(i)
		got, err := ParseOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", op.String(), got, err)
		}
	}
	if _, err := ParseOp("teleport"); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("ParseOp(teleport) error = %v", err)
	}
	if got := Op(200).String(); got != "Op(200)" {
		t.Errorf("unknown op String() = %q", got)
	}
}

func TestOpYAML(t *testing.T) {
	out, err := yaml.Marshal(Action{Op: OpMergeDown, Layer: "ink"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "op: merge-down") {
		t.Errorf("encoded = %s", out)
	}

	var a Action
	if err := yaml.Unmarshal(out, &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.Op != OpMergeDown || a.Layer != "ink" {
		t.Errorf("decoded = %+v", a)
	}

	err = yaml.Unmarshal([]byte("op: levitate\n"), &a)
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("unknown op error = %v", err)
	}
	if _, err := yaml.Marshal(Action{Op: Op(99)}); err == nil {
		t.Error("marshaling an invalid op should fail")
	}
}

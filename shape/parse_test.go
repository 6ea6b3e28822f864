package shape

import (
	"errors"
	"testing"
)

const pointDecl = `
shape: point
fields:
  - name: x
    type: float
  - name: y
    type: float
    check: value >= 0
`

func TestParseDecl(t *testing.T) {
	sh, err := ParseDecl([]byte(pointDecl))
	if err != nil {
		t.Fatalf("ParseDecl: %v", err)
	}
	if sh.Name() != "point" {
		t.Errorf("Name() = %q", sh.Name())
	}
	if sh.NumFields() != 2 {
		t.Fatalf("NumFields = %d", sh.NumFields())
	}
	y := sh.Field(1)
	if y.Check == nil {
		t.Fatalf("y has no check")
	}
	ok, err := y.Check.Eval("y", -1.0)
	if err != nil || ok {
		t.Errorf("check accepted -1: %v, %v", ok, err)
	}
}

func TestParseDeclErrors(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{name: "malformed yaml", decl: ":\n:::"},
		{name: "no shape name", decl: "fields:\n  - name: x\n    type: int\n"},
		{name: "parameterized shape", decl: "shape: box(T)\nfields:\n  - name: v\n    type: any\n"},
		{name: "parameterized type", decl: "shape: box\nfields:\n  - name: v\n    type: list(int)\n"},
		{name: "unknown type", decl: "shape: box\nfields:\n  - name: v\n    type: quux\n"},
		{name: "bad check", decl: "shape: box\nfields:\n  - name: v\n    type: int\n    check: '>>'\n"},
		{name: "dup field", decl: "shape: box\nfields:\n  - name: v\n    type: int\n  - name: v\n    type: int\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDecl([]byte(tc.decl))
			if err == nil {
				t.Fatalf("no error")
			}
			if !errors.Is(err, ErrDefinition) {
				t.Errorf("error %v is not a definition error", err)
			}
		})
	}
}

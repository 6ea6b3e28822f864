package main

import (
	"slices"
	"testing"

	"github.com/signadot/flexrec/shape"
)

func testRegistry(t *testing.T) *shape.Registry {
	t.Helper()
	reg := shape.NewRegistry()
	sh, err := shape.New("point",
		shape.Field{Name: "x", Type: shape.MustParse("float")},
		shape.Field{Name: "y", Type: shape.MustParse("float")},
	)
	if err != nil {
		t.Fatalf("shape.New: %v", err)
	}
	if err := reg.Register(sh); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return reg
}

func TestParseRecDoc(t *testing.T) {
	doc := `
tag: point
shape: point
values:
  x: 1.0
  y: 2.0
  label: origin
  w: 3
`
	rec, err := parseRecDoc(testRegistry(t), []byte(doc))
	if err != nil {
		t.Fatalf("parseRecDoc: %v", err)
	}
	if rec.Tag() != "point" {
		t.Errorf("Tag() = %q", string(rec.Tag()))
	}
	x, err := rec.Get("x")
	if err != nil || x != 1.0 {
		t.Errorf("Get(x) = %v, %v", x, err)
	}
	w, err := rec.Get("w")
	if err != nil || w != int64(3) {
		t.Errorf("Get(w) = %v (%T), %v", w, w, err)
	}
	if !slices.Equal(rec.Keys(), []string{"label", "w"}) {
		t.Errorf("Keys() = %v", rec.Keys())
	}
}

func TestParseRecDocUnspecific(t *testing.T) {
	doc := `
elem: int
values:
  a: 1
  b: 2
`
	rec, err := parseRecDoc(shape.NewRegistry(), []byte(doc))
	if err != nil {
		t.Fatalf("parseRecDoc: %v", err)
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d", rec.Len())
	}
	if err := rec.Set("c", "three"); err == nil {
		t.Errorf("constrained record accepted a string")
	}
}

func TestParseRecDocErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown shape", doc: "shape: nosuch\nvalues:\n  a: 1\n"},
		{name: "missing fixed", doc: "shape: point\nvalues:\n  x: 1.0\n"},
		{name: "bad elem", doc: "elem: quux\nvalues:\n  a: 1\n"},
		{name: "wrong fixed type", doc: "shape: point\nvalues:\n  x: 1.0\n  y: nope\n"},
		{name: "duplicate key", doc: "values:\n  a: 1\n  a: 2\n"},
	}
	reg := testRegistry(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseRecDoc(reg, []byte(tc.doc)); err == nil {
				t.Errorf("no error")
			}
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	if v := normalizeValue(uint64(3)); v != int64(3) {
		t.Errorf("uint64 -> %v (%T)", v, v)
	}
	if v := normalizeValue(float32(1)); v != float64(1) {
		t.Errorf("float32 -> %v (%T)", v, v)
	}
	got := normalizeValue([]any{1, uint64(2)})
	list, ok := got.([]any)
	if !ok || list[0] != int64(1) || list[1] != int64(2) {
		t.Errorf("list -> %#v", got)
	}
}

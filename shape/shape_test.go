package shape

import (
	"errors"
	"testing"
)

func testShape(t *testing.T) *Shape {
	t.Helper()
	sh, err := New("point",
		Field{Name: "x", Type: MustParse("float")},
		Field{Name: "y", Type: MustParse("float")},
		Field{Name: "label", Type: MustParse("string")},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sh
}

func TestShapeIndex(t *testing.T) {
	sh := testShape(t)
	if sh.NumFields() != 3 {
		t.Fatalf("NumFields = %d", sh.NumFields())
	}
	for i, name := range []string{"x", "y", "label"} {
		j, ok := sh.Index(name)
		if !ok || j != i {
			t.Errorf("Index(%q) = %d, %v; want %d, true", name, j, ok, i)
		}
	}
	if _, ok := sh.Index("z"); ok {
		t.Errorf("Index(z) found")
	}
}

func TestShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
	}{
		{name: ""},
		{name: "point(T)"},
		{name: "point", fields: []Field{{Name: ""}}},
		{name: "point", fields: []Field{{Name: "x"}, {Name: "x"}}},
		{name: "point", fields: []Field{{Name: "x(y)"}}},
	}
	for _, tc := range tests {
		_, err := New(tc.name, tc.fields...)
		if err == nil {
			t.Fatalf("New(%q, %v): no error", tc.name, tc.fields)
		}
		if !errors.Is(err, ErrDefinition) {
			t.Errorf("New(%q): error %v is not a definition error", tc.name, err)
		}
	}
}

func TestNilShape(t *testing.T) {
	var sh *Shape
	if sh.NumFields() != 0 {
		t.Errorf("nil shape has fields")
	}
	if sh.Has("x") {
		t.Errorf("nil shape has x")
	}
	if sh.Name() != "" {
		t.Errorf("nil shape has a name")
	}
	if got := sh.String(); got != "none" {
		t.Errorf("nil shape String() = %q", got)
	}
}

func TestShapeString(t *testing.T) {
	sh := testShape(t)
	want := "point(x float, y float, label string)"
	if got := sh.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

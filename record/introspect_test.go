package record

import (
	"slices"
	"testing"

	"github.com/signadot/flexrec/shape"
)

func TestString(t *testing.T) {
	plain, err := New(Untagged, nil,
		Pair{Name: "a", Value: 1},
		Pair{Name: "b", Value: 2},
		Pair{Name: "c", Value: 3},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := plain.String(); got != "record(3 entries)" {
		t.Errorf("plain String() = %q", got)
	}

	tagged, err := New("point", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tagged.String(); got != "record[!point](0 entries)" {
		t.Errorf("tagged String() = %q", got)
	}

	typed, err := NewTyped(Untagged, nil, shape.MustParse("int"),
		Pair{Name: "a", Value: int64(1)})
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	if got := typed.String(); got != "record[int](1 entries)" {
		t.Errorf("typed String() = %q", got)
	}

	both, err := NewTyped("counts", nil, shape.MustParse("int"))
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	if got := both.String(); got != "record[!counts, int](0 entries)" {
		t.Errorf("tagged+typed String() = %q", got)
	}
}

func TestDescriptor(t *testing.T) {
	sh := pointShape(t)
	r, err := NewTyped("point", sh, shape.MustParse("string"), 1.0, 2.0)
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	d := r.Descriptor()
	if d.Tag != "point" || d.Shape != sh || d.Elem.Name() != "string" {
		t.Errorf("Descriptor() = %+v", d)
	}
	want := "!point point(x float, y float) elem=string"
	if got := d.String(); got != want {
		t.Errorf("Descriptor String() = %q, want %q", got, want)
	}

	u, err := New(Untagged, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := u.Descriptor().String(); got != "untagged none elem=any" {
		t.Errorf("unspecific Descriptor String() = %q", got)
	}
}

func TestFieldNames(t *testing.T) {
	sh := pointShape(t)
	r, err := New("point", sh, 1.0, 2.0,
		Pair{Name: "label", Value: "origin"},
		Pair{Name: "w", Value: 1},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"x", "y", "label", "w"}
	if got := r.FieldNames(); !slices.Equal(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestTag(t *testing.T) {
	if !Untagged.IsUntagged() {
		t.Errorf("Untagged.IsUntagged() = false")
	}
	if Untagged.String() != "" {
		t.Errorf("Untagged.String() = %q", Untagged.String())
	}
	if Tag("point").String() != "!point" {
		t.Errorf("Tag String() = %q", Tag("point").String())
	}
}

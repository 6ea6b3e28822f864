package record

import (
	"github.com/signadot/flexrec/shape"
)

// Descriptor identifies a record's type for external dispatch: its
// tag, fixed shape (nil for the unspecific variant), and dynamic
// element type. All three are stable for the record's lifetime.
type Descriptor struct {
	Tag   Tag
	Shape *shape.Shape
	Elem  shape.Type
}

func (d Descriptor) String() string {
	tag := d.Tag.String()
	if tag == "" {
		tag = "untagged"
	}
	return tag + " " + d.Shape.String() + " elem=" + d.Elem.Name()
}

// Tag returns the record's tag, Untagged by default.
func (r *Record) Tag() Tag {
	return r.tag
}

// Shape returns the record's fixed shape, nil for the unspecific
// variant.
func (r *Record) Shape() *shape.Shape {
	return r.shape
}

// ElemType returns the uniform type constraining the dynamic layer,
// shape.Any when unconstrained.
func (r *Record) ElemType() shape.Type {
	return r.elem
}

// Descriptor returns the record's type descriptor.
func (r *Record) Descriptor() Descriptor {
	return Descriptor{Tag: r.tag, Shape: r.shape, Elem: r.elem}
}

// FieldNames returns all accessible names: the declared fixed fields
// in declaration order followed by the dynamic entries in insertion
// order. The two sets are disjoint, since dynamic entries may not
// shadow fixed fields.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, r.shape.NumFields()+len(r.keys))
	names = append(names, r.shape.Names()...)
	names = append(names, r.keys...)
	return names
}

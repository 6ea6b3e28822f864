// Package render writes human-readable presentations of records and
// shapes, optionally colorized for terminals.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/flexrec/record"
	"github.com/signadot/flexrec/shape"
)

type renderer struct {
	colors  *Colors
	colored bool
}

type Option func(*renderer)

// WithColor enables or disables colorized output. Off by default.
func WithColor(on bool) Option {
	return func(r *renderer) {
		r.colored = on
	}
}

// WithColors replaces the default color scheme.
func WithColors(colors *Colors) Option {
	return func(r *renderer) {
		r.colors = colors
	}
}

// Render writes a multi-line presentation of rec: a header line in the
// record.String form, the fixed fields with their declared types, and
// the dynamic entries in insertion order.
func Render(w io.Writer, rec *record.Record, opts ...Option) error {
	r := &renderer{colors: NewColors()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.header(w, rec); err != nil {
		return err
	}
	sh := rec.Shape()
	for i := range sh.NumFields() {
		f := sh.Field(i)
		v, err := rec.Get(f.Name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "  %s %s %s %s\n",
			r.paint(FieldColor, f.Name),
			r.paint(TypeColor, f.Type.Name()),
			r.paint(SepColor, "="),
			r.paint(ValueColor, renderValue(v)))
		if err != nil {
			return err
		}
	}
	for name, v := range rec.All() {
		_, err := fmt.Fprintf(w, "  %s %s %s\n",
			r.paint(FieldColor, name),
			r.paint(SepColor, ":"),
			r.paint(ValueColor, renderValue(v)))
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderShape writes a one-line presentation of a shape declaration.
func RenderShape(w io.Writer, sh *shape.Shape, opts ...Option) error {
	r := &renderer{colors: NewColors()}
	for _, opt := range opts {
		opt(r)
	}
	_, err := fmt.Fprintf(w, "%s\n", r.paint(ShapeColor, sh.String()))
	return err
}

func (r *renderer) header(w io.Writer, rec *record.Record) error {
	if !r.colored {
		_, err := fmt.Fprintf(w, "%s\n", rec.String())
		return err
	}
	out := r.paint(ShapeColor, "record")
	tag := rec.Tag()
	elem := rec.ElemType()
	if !tag.IsUntagged() || !elem.IsAny() {
		out += r.paint(SepColor, "[")
		if !tag.IsUntagged() {
			out += r.paint(TagColor, tag.String())
			if !elem.IsAny() {
				out += r.paint(SepColor, ", ")
			}
		}
		if !elem.IsAny() {
			out += r.paint(TypeColor, elem.Name())
		}
		out += r.paint(SepColor, "]")
	}
	out += r.paint(CountColor, fmt.Sprintf("(%d entries)", rec.Len()))
	_, err := fmt.Fprintf(w, "%s\n", out)
	return err
}

func (r *renderer) paint(attr ColorAttr, s string) string {
	if !r.colored {
		return s
	}
	return r.colors.sprintf(attr)("%s", s)
}

func renderValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(tv)
	}
	return fmt.Sprintf("%v", v)
}

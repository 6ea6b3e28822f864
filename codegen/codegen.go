// Package codegen emits Go source for typed wrappers over shapes. For
// a declared shape it generates the shape value, a wrapper struct, a
// typed constructor, and typed accessors for every fixed field, so
// consumers get compile-time field types while the record underneath
// keeps its dynamic layer.
//
// Generation is a build-time step; the emitted code does no reflection
// at runtime beyond what record writes already do.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/flexrec/shape"
)

// Config controls generation for one shape.
type Config struct {
	// Package is the package name of the emitted file.
	Package string
}

// Generate emits the wrapper source for sh into w.
func Generate(w *bytes.Buffer, cfg *Config, sh *shape.Shape) error {
	if cfg.Package == "" {
		return fmt.Errorf("codegen: no package name")
	}
	typeName := exportedName(sh.Name())
	if typeName == "" {
		return fmt.Errorf("codegen: cannot derive a type name from shape %q", sh.Name())
	}

	raw := &bytes.Buffer{}
	fmt.Fprintf(raw, "// Code generated by rec gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(raw, "package %s\n\n", cfg.Package)
	fmt.Fprintf(raw, "import (\n")
	fmt.Fprintf(raw, "\t%q\n", "github.com/signadot/flexrec/record")
	fmt.Fprintf(raw, "\t%q\n", "github.com/signadot/flexrec/shape")
	fmt.Fprintf(raw, ")\n\n")

	genShapeVar(raw, typeName, sh)
	genWrapper(raw, typeName, sh)

	src, err := format.Source(raw.Bytes())
	if err != nil {
		return fmt.Errorf("codegen: emitted invalid source for shape %q: %w", sh.Name(), err)
	}
	_, err = w.Write(src)
	return err
}

func genShapeVar(w *bytes.Buffer, typeName string, sh *shape.Shape) {
	fmt.Fprintf(w, "// %sShape is the generated shape for %q.\n", typeName, sh.Name())
	fmt.Fprintf(w, "var %sShape = must%sShape()\n\n", typeName, typeName)
	fmt.Fprintf(w, "func must%sShape() *shape.Shape {\n", typeName)
	fmt.Fprintf(w, "\tsh, err := shape.New(%q,\n", sh.Name())
	for _, f := range sh.Fields() {
		fmt.Fprintf(w, "\t\tshape.Field{Name: %q, Type: shape.MustParse(%q)%s},\n",
			f.Name, f.Type.Name(), checkExpr(f))
	}
	fmt.Fprintf(w, "\t)\n")
	fmt.Fprintf(w, "\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	fmt.Fprintf(w, "\treturn sh\n}\n\n")
}

func checkExpr(f shape.Field) string {
	if f.Check == nil {
		return ""
	}
	return fmt.Sprintf(", Check: mustCheck(%s)", strconv.Quote(f.Check.Src()))
}

func genWrapper(w *bytes.Buffer, typeName string, sh *shape.Shape) {
	hasChecks := false
	for _, f := range sh.Fields() {
		if f.Check != nil {
			hasChecks = true
			break
		}
	}
	if hasChecks {
		fmt.Fprintf(w, "func mustCheck(src string) *shape.Check {\n")
		fmt.Fprintf(w, "\tchk, err := shape.NewCheck(src)\n")
		fmt.Fprintf(w, "\tif err != nil {\n\t\tpanic(err)\n\t}\n")
		fmt.Fprintf(w, "\treturn chk\n}\n\n")
	}

	fmt.Fprintf(w, "// %s wraps a record with the %q fixed shape.\n", typeName, sh.Name())
	fmt.Fprintf(w, "type %s struct {\n\tRec *record.Record\n}\n\n", typeName)

	// constructor
	fmt.Fprintf(w, "func New%s(tag record.Tag", typeName)
	for _, f := range sh.Fields() {
		fmt.Fprintf(w, ", %s %s", paramName(f.Name), f.Type.GoName())
	}
	fmt.Fprintf(w, ", rest ...record.Pair) (*%s, error) {\n", typeName)
	fmt.Fprintf(w, "\targs := make([]any, 0, %d+len(rest))\n", sh.NumFields())
	for _, f := range sh.Fields() {
		fmt.Fprintf(w, "\targs = append(args, %s)\n", paramName(f.Name))
	}
	fmt.Fprintf(w, "\tfor _, p := range rest {\n\t\targs = append(args, p)\n\t}\n")
	fmt.Fprintf(w, "\trec, err := record.New(tag, %sShape, args...)\n", typeName)
	fmt.Fprintf(w, "\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	fmt.Fprintf(w, "\treturn &%s{Rec: rec}, nil\n}\n\n", typeName)

	// accessors
	for _, f := range sh.Fields() {
		accessor := exportedName(f.Name)
		goType := f.Type.GoName()
		fmt.Fprintf(w, "func (v *%s) %s() %s {\n", typeName, accessor, goType)
		fmt.Fprintf(w, "\tval, _ := v.Rec.Get(%q)\n", f.Name)
		if goType == "any" {
			fmt.Fprintf(w, "\treturn val\n}\n\n")
		} else {
			fmt.Fprintf(w, "\treturn val.(%s)\n}\n\n", goType)
		}
		fmt.Fprintf(w, "func (v *%s) Set%s(%s %s) error {\n", typeName, accessor, paramName(f.Name), goType)
		fmt.Fprintf(w, "\treturn v.Rec.Set(%q, %s)\n}\n\n", f.Name, paramName(f.Name))
	}
}

// exportedName derives an exported Go identifier from a declaration
// name: "point" -> "Point", "unit-price" -> "UnitPrice".
func exportedName(name string) string {
	b := &strings.Builder{}
	upper := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

func paramName(name string) string {
	b := &strings.Builder{}
	upper := false
	for i, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.':
			upper = true
		case upper && i > 0:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
			upper = false
		}
	}
	out := b.String()
	if reservedWords[out] {
		out += "Val"
	}
	return out
}

package shape

import (
	"slices"
	"strconv"
	"strings"
)

// Field is one declared fixed field of a shape.
type Field struct {
	Name  string
	Type  Type
	Check *Check
}

// Shape is an immutable, ordered list of declared fields with a
// name->index table computed once at definition time. A nil *Shape is
// the unspecific shape: it declares no fields.
type Shape struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a shape from a name and its fields. Duplicate or empty
// field names and parameterized names fail with a DefinitionError.
func New(name string, fields ...Field) (*Shape, error) {
	if err := checkDeclName(name, "shape name"); err != nil {
		return nil, err
	}
	s := &Shape{
		name:   name,
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range s.fields {
		if err := checkDeclName(f.Name, "field name"); err != nil {
			return nil, err
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, &DefinitionError{
				Decl:    name,
				Message: "duplicate field " + strconv.Quote(f.Name),
			}
		}
		s.index[f.Name] = i
	}
	return s, nil
}

func checkDeclName(name, what string) error {
	if name == "" {
		return &DefinitionError{Message: "empty " + what}
	}
	if strings.ContainsAny(name, "() \t\n") {
		return &DefinitionError{
			Decl:    name,
			Message: "parameterized or malformed " + what,
		}
	}
	return nil
}

// Name returns the shape name, "" for the unspecific shape.
func (s *Shape) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// NumFields returns the number of declared fields.
func (s *Shape) NumFields() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Field returns the i-th declared field in declaration order.
func (s *Shape) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the declared fields in declaration order.
func (s *Shape) Fields() []Field {
	if s == nil {
		return nil
	}
	return slices.Clone(s.fields)
}

// Index returns the slot index of a declared field name.
func (s *Shape) Index(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[name]
	return i, ok
}

// Has reports whether name is a declared field.
func (s *Shape) Has(name string) bool {
	_, ok := s.Index(name)
	return ok
}

// Names returns the declared field names in declaration order.
func (s *Shape) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i := range s.fields {
		names[i] = s.fields[i].Name
	}
	return names
}

func (s *Shape) String() string {
	if s == nil {
		return "none"
	}
	b := &strings.Builder{}
	b.WriteString(s.name)
	b.WriteByte('(')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(f.Type.Name())
	}
	b.WriteByte(')')
	return b.String()
}

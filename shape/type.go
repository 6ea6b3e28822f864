package shape

import (
	"reflect"
	"strings"
)

// Type describes the set of values a slot accepts. The zero value is
// Any, which accepts every value.
type Type struct {
	name string
	rt   reflect.Type
}

// Any accepts every value, including nil.
var Any = Type{}

// TypeOf builds a Type from a Go type.
func TypeOf[T any]() Type {
	rt := reflect.TypeFor[T]()
	return Type{name: rt.String(), rt: rt}
}

// GoType builds a Type from a reflect.Type. A nil reflect.Type yields Any.
func GoType(rt reflect.Type) Type {
	if rt == nil {
		return Any
	}
	return Type{name: rt.String(), rt: rt}
}

func (t Type) IsAny() bool {
	return t.rt == nil
}

// Name returns the declaration name of the type, which may differ from
// the underlying Go type name when the type came from a declaration
// (eg "float" backed by float64).
func (t Type) Name() string {
	if t.rt == nil {
		return "any"
	}
	return t.name
}

// GoName returns the Go syntax for the accepted type, for use in
// generated code.
func (t Type) GoName() string {
	if t.rt == nil {
		return "any"
	}
	return t.rt.String()
}

func (t Type) String() string {
	return t.Name()
}

// ReflectType returns the underlying Go type, nil for Any.
func (t Type) ReflectType() reflect.Type {
	return t.rt
}

// Accepts reports whether v can be stored in a slot of this type.
// Acceptance is Go assignability, so an interface-typed slot accepts
// every implementation. nil is accepted only by Any and by nilable
// kinds.
func (t Type) Accepts(v any) bool {
	if t.rt == nil {
		return true
	}
	if v == nil {
		switch t.rt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface,
			reflect.Map, reflect.Pointer, reflect.Slice:
			return true
		}
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t.rt)
}

// ValueName names the runtime type of v the way error messages report it.
func ValueName(v any) string {
	if v == nil {
		return "null"
	}
	return reflect.TypeOf(v).String()
}

var declTypes = map[string]reflect.Type{
	"any":    nil,
	"string": reflect.TypeFor[string](),
	"int":    reflect.TypeFor[int64](),
	"float":  reflect.TypeFor[float64](),
	"bool":   reflect.TypeFor[bool](),
	"bytes":  reflect.TypeFor[[]byte](),
	"list":   reflect.TypeFor[[]any](),
	"map":    reflect.TypeFor[map[string]any](),
}

// Parse resolves a declaration type name. Parameterized names such as
// "list(string)" are not supported and fail with a DefinitionError.
func Parse(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Any, nil
	}
	if strings.ContainsAny(name, "()") {
		return Any, &DefinitionError{
			Decl:    name,
			Message: "parameterized types are not supported",
		}
	}
	rt, ok := declTypes[name]
	if !ok {
		return Any, &DefinitionError{
			Decl:    name,
			Message: "unknown type",
		}
	}
	if rt == nil {
		return Any, nil
	}
	return Type{name: name, rt: rt}, nil
}

// MustParse is Parse for known-good declarations, as used by generated
// code.
func MustParse(name string) Type {
	t, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return t
}

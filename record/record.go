package record

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/flexrec/shape"
)

// Tag is an immutable label fixed at construction. Records with
// different tags are distinct for dispatch purposes even when their
// field shapes and values coincide.
type Tag string

// Untagged is the default tag.
const Untagged Tag = ""

func (t Tag) IsUntagged() bool {
	return t == Untagged
}

// String renders the tag in !name form, "" when untagged.
func (t Tag) String() string {
	if t == Untagged {
		return ""
	}
	return "!" + string(t)
}

// Pair is a named value for seeding or reading the dynamic layer.
type Pair struct {
	Name  string
	Value any
}

// Record is a dynamically extensible record. It resolves field access
// against its fixed shape first and falls through to the dynamic
// layer. The dynamic layer preserves insertion order across
// non-removal mutations.
//
// Records carry no internal locking; callers sharing a record across
// goroutines must synchronize writes themselves.
type Record struct {
	tag   Tag
	shape *shape.Shape
	elem  shape.Type

	fixed []any

	keys  []string
	vals  []any
	index map[string]int
}

// New constructs a record. The first sh.NumFields() positional args
// fill the fixed slots in declaration order; every remaining arg must
// be a Pair and seeds the dynamic layer. A nil shape declares no fixed
// fields, so all args must be Pairs.
func New(tag Tag, sh *shape.Shape, args ...any) (*Record, error) {
	return NewTyped(tag, sh, shape.Any, args...)
}

// NewTyped is New with a uniform element type constraining every value
// in the dynamic layer.
func NewTyped(tag Tag, sh *shape.Shape, elem shape.Type, args ...any) (*Record, error) {
	n := sh.NumFields()
	if len(args) < n {
		return nil, &ArityError{Shape: sh.Name(), Want: n, Got: len(args)}
	}
	r := &Record{
		tag:   tag,
		shape: sh,
		elem:  elem,
		index: map[string]int{},
	}
	if n > 0 {
		r.fixed = make([]any, n)
	}
	for i := range n {
		f := sh.Field(i)
		if err := checkField(&f, args[i]); err != nil {
			return nil, err
		}
		r.fixed[i] = args[i]
	}
	for _, arg := range args[n:] {
		p, ok := arg.(Pair)
		if !ok {
			return nil, fmt.Errorf("positional value %T after fixed fields, want record.Pair", arg)
		}
		if err := r.IndexSet(p.Name, p.Value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func checkField(f *shape.Field, v any) error {
	if !f.Type.Accepts(v) {
		return &TypeMismatchError{
			Field: f.Name,
			Want:  f.Type.Name(),
			Got:   shape.ValueName(v),
		}
	}
	if f.Check == nil {
		return nil
	}
	ok, err := f.Check.Eval(f.Name, v)
	if err != nil {
		return &CheckError{Field: f.Name, Formula: f.Check.Src(), Err: err}
	}
	if !ok {
		return &CheckError{Field: f.Name, Formula: f.Check.Src()}
	}
	return nil
}

// Get reads a field. Names declared in the fixed shape resolve to
// their slot; all other names resolve through the dynamic layer and
// fail with a KeyNotFoundError when absent.
func (r *Record) Get(name string) (any, error) {
	if i, ok := r.shape.Index(name); ok {
		return r.fixed[i], nil
	}
	if i, ok := r.index[name]; ok {
		return r.vals[i], nil
	}
	return nil, &KeyNotFoundError{Key: name}
}

// Set writes a field. Names declared in the fixed shape are
// type-checked against the slot's declared type; all other names are
// inserted into or overwritten in the dynamic layer. A failed check
// leaves the record unchanged.
func (r *Record) Set(name string, v any) error {
	if i, ok := r.shape.Index(name); ok {
		f := r.shape.Field(i)
		if err := checkField(&f, v); err != nil {
			return err
		}
		r.fixed[i] = v
		return nil
	}
	return r.IndexSet(name, v)
}

// Clone returns a record sharing no mutable state with r. Stored
// values themselves are not copied.
func (r *Record) Clone() *Record {
	dst := &Record{
		tag:   r.tag,
		shape: r.shape,
		elem:  r.elem,
		fixed: slices.Clone(r.fixed),
		keys:  slices.Clone(r.keys),
		vals:  slices.Clone(r.vals),
		index: make(map[string]int, len(r.index)),
	}
	for k, i := range r.index {
		dst.index[k] = i
	}
	return dst
}

// String renders the record header: plain when untagged and
// unconstrained, otherwise showing the tag and/or element type, always
// with the current dynamic entry count.
func (r *Record) String() string {
	b := &strings.Builder{}
	b.WriteString("record")
	var quals []string
	if !r.tag.IsUntagged() {
		quals = append(quals, r.tag.String())
	}
	if !r.elem.IsAny() {
		quals = append(quals, r.elem.Name())
	}
	if len(quals) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(quals, ", "))
		b.WriteByte(']')
	}
	fmt.Fprintf(b, "(%d entries)", len(r.keys))
	return b.String()
}

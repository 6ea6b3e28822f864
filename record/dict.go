package record

import (
	"iter"
	"slices"

	"github.com/signadot/flexrec/shape"
)

// Has reports whether name is present in the dynamic layer. Fixed
// fields are not visible through the dict surface.
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// GetOr reads a dynamic entry, returning def when absent.
func (r *Record) GetOr(name string, def any) any {
	if i, ok := r.index[name]; ok {
		return r.vals[i]
	}
	return def
}

// GetOrInsert reads a dynamic entry, inserting def first when absent.
// The inserted default is checked like any other dynamic write.
func (r *Record) GetOrInsert(name string, def any) (any, error) {
	if i, ok := r.index[name]; ok {
		return r.vals[i], nil
	}
	if err := r.IndexSet(name, def); err != nil {
		return nil, err
	}
	return def, nil
}

// IndexGet reads a dynamic entry. Unlike Get it never consults the
// fixed shape.
func (r *Record) IndexGet(name string) (any, error) {
	if i, ok := r.index[name]; ok {
		return r.vals[i], nil
	}
	return nil, &KeyNotFoundError{Key: name}
}

// IndexSet inserts or overwrites a dynamic entry. Names declared as
// fixed fields are rejected with a FieldConflictError: the dynamic
// layer may not shadow the fixed shape. The value is checked against
// the record's element type; a failed check leaves the layer
// unchanged.
func (r *Record) IndexSet(name string, v any) error {
	if r.shape.Has(name) {
		return &FieldConflictError{Field: name, Shape: r.shape.Name()}
	}
	if !r.elem.Accepts(v) {
		return &TypeMismatchError{
			Field: name,
			Want:  r.elem.Name(),
			Got:   shape.ValueName(v),
		}
	}
	if i, ok := r.index[name]; ok {
		r.vals[i] = v
		return nil
	}
	r.index[name] = len(r.keys)
	r.keys = append(r.keys, name)
	r.vals = append(r.vals, v)
	return nil
}

// Delete removes a dynamic entry, reporting whether it was present.
func (r *Record) Delete(name string) bool {
	i, ok := r.index[name]
	if !ok {
		return false
	}
	r.keys = slices.Delete(r.keys, i, i+1)
	r.vals = slices.Delete(r.vals, i, i+1)
	delete(r.index, name)
	for j := i; j < len(r.keys); j++ {
		r.index[r.keys[j]] = j
	}
	return true
}

// Len returns the number of dynamic entries. Fixed fields are not
// counted.
func (r *Record) Len() int {
	return len(r.keys)
}

// All iterates the dynamic entries in insertion order. Each call
// starts a fresh iteration.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, k := range r.keys {
			if !yield(k, r.vals[i]) {
				return
			}
		}
	}
}

// Pairs returns the dynamic entries in insertion order.
func (r *Record) Pairs() []Pair {
	pairs := make([]Pair, len(r.keys))
	for i, k := range r.keys {
		pairs[i] = Pair{Name: k, Value: r.vals[i]}
	}
	return pairs
}

// Keys returns the dynamic entry names in insertion order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

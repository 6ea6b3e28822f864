// Package record provides a dynamically extensible record type:
// named fields can be added, read, and modified at runtime, optionally
// constrained to a uniform element type, and branded with a tag so
// that records with different tags are distinct for dispatch.
//
// # Layers
//
// A record composes three layers:
//
//   - Tag: an immutable label fixed at construction. Untagged is the
//     default.
//   - Fixed shape (optional): a closed, ordered set of typed fields
//     declared once via a shape.Shape. Fixed slots are read and
//     written by name through a name->index table, never enumerated
//     through the dict surface, and never removable.
//   - Dynamic layer: an open, insertion-ordered name->value mapping
//     that grows and shrinks freely, optionally constrained to one
//     element type.
//
// Field access resolves against the fixed shape first and falls
// through to the dynamic layer:
//
//	sh, _ := shape.New("point",
//	    shape.Field{Name: "x", Type: shape.TypeOf[float64]()},
//	    shape.Field{Name: "y", Type: shape.TypeOf[float64]()},
//	)
//	r, _ := record.New("point", sh, 1.0, 2.0,
//	    record.Pair{Name: "label", Value: "origin"},
//	)
//	x, _ := r.Get("x")     // fixed slot, 1.0
//	l, _ := r.Get("label") // dynamic entry, "origin"
//
// # Dict surface
//
// Has, GetOr, GetOrInsert, IndexGet, IndexSet, Delete, Len, All, and
// Pairs operate on the dynamic layer only. IndexSet rejects names
// declared in the fixed shape with a FieldConflictError: the dynamic
// layer may not shadow a fixed field.
//
// # Errors
//
// Every failed write leaves the record unchanged. Errors carry typed
// detail and unwrap to the package sentinels ErrTypeMismatch,
// ErrKeyNotFound, ErrArity, ErrFieldConflict, and ErrCheck.
//
// # Thread safety
//
// Records are not thread-safe. Callers sharing a record across
// goroutines must synchronize access themselves or work on clones.
package record

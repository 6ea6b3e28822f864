package record

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrKeyNotFound   = errors.New("key not found")
	ErrArity         = errors.New("arity error")
	ErrFieldConflict = errors.New("field conflict")
	ErrCheck         = errors.New("check failed")
)

// TypeMismatchError reports a write whose value does not satisfy the
// target slot's declared type or the dynamic layer's element type. The
// target is left unmodified.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// KeyNotFoundError reports a read of an absent dynamic entry.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// ArityError reports a construction with fewer positional values than
// declared fixed fields.
type ArityError struct {
	Shape string
	Want  int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("shape %q declares %d fixed fields, got %d values", e.Shape, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

// FieldConflictError reports a dynamic-layer write targeting a name
// that is declared as a fixed field. Shadowing a fixed field through
// the dynamic layer is rejected rather than silently resolved.
type FieldConflictError struct {
	Field string
	Shape string
}

func (e *FieldConflictError) Error() string {
	return fmt.Sprintf("field %q is fixed in shape %q", e.Field, e.Shape)
}

func (e *FieldConflictError) Unwrap() error {
	return ErrFieldConflict
}

// CheckError reports a write rejected by a field's check formula. The
// target is left unmodified.
type CheckError struct {
	Field   string
	Formula string
	Err     error
}

func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("check failed at %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("check failed at %q: %s", e.Field, e.Formula)
}

func (e *CheckError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrCheck, e.Err}
	}
	return []error{ErrCheck}
}

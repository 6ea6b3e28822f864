package shape

import (
	"errors"
	"fmt"
)

var ErrDefinition = errors.New("definition error")

// DefinitionError reports a malformed shape or type declaration. It is
// raised at definition time only; shapes that construct successfully
// never produce it afterwards.
type DefinitionError struct {
	Decl    string
	Message string
	Err     error
}

func (e *DefinitionError) Error() string {
	if e.Decl != "" {
		return fmt.Sprintf("definition error in %q: %s", e.Decl, e.Message)
	}
	return fmt.Sprintf("definition error: %s", e.Message)
}

func (e *DefinitionError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDefinition, e.Err}
	}
	return []error{ErrDefinition}
}

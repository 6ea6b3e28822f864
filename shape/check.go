package shape

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Check is a compiled field check formula. Formulas are boolean
// expressions over the bindings:
//
//	value - the value being written
//	name  - the field name being written to
//
// Formulas are compiled once at definition time and run on every write
// to the field they guard.
type Check struct {
	src string
	prg *vm.Program
}

// NewCheck compiles src into a check formula. Compilation failures are
// DefinitionErrors.
func NewCheck(src string) (*Check, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, &DefinitionError{
			Decl:    src,
			Message: "cannot compile check formula",
			Err:     err,
		}
	}
	return &Check{src: src, prg: prg}, nil
}

// Src returns the formula source text.
func (c *Check) Src() string {
	return c.src
}

// Eval runs the formula against a candidate write.
func (c *Check) Eval(name string, value any) (bool, error) {
	out, err := expr.Run(c.prg, map[string]any{
		"name":  name,
		"value": value,
	})
	if err != nil {
		return false, fmt.Errorf("check %q: %w", c.src, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("check %q: non-bool result %T", c.src, out)
	}
	return ok, nil
}

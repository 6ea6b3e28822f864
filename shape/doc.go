// Package shape defines the declared, fixed part of a record: named
// value types, ordered field lists, check formulas, and a registry for
// resolving shapes by name.
//
// Shapes are immutable once constructed. All malformed input is
// rejected at definition time with a DefinitionError; a shape that
// exists is always valid. Declarations can be written in Go with New,
// or loaded from YAML declaration files with ParseDecl.
package shape

// Package recdiff computes field-wise differences between two records
// of the same tag and shape. String value changes additionally carry
// an inline character-level diff.
package recdiff

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/flexrec/record"
)

type Op int

const (
	Add Op = iota
	Remove
	Change
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Remove:
		return "-"
	case Change:
		return "~"
	}
	return "?"
}

// Entry is one difference between two records.
type Entry struct {
	Field string
	Fixed bool
	Op    Op
	From  any
	To    any

	// Inline carries a character-level diff for string-to-string
	// changes, "" otherwise. Deletions render as [-text], insertions
	// as [+text].
	Inline string
}

// Diff compares two records. Records with different tags or shape
// names are not comparable and fail; the tag is part of record
// identity, so a cross-tag diff has no meaning.
func Diff(from, to *record.Record) ([]Entry, error) {
	if from.Tag() != to.Tag() {
		return nil, fmt.Errorf("cannot diff records with tags %q and %q",
			string(from.Tag()), string(to.Tag()))
	}
	if from.Shape().Name() != to.Shape().Name() {
		return nil, fmt.Errorf("cannot diff records with shapes %s and %s",
			from.Shape(), to.Shape())
	}
	var entries []Entry
	sh := from.Shape()
	for i := range sh.NumFields() {
		f := sh.Field(i)
		fromV, err := from.Get(f.Name)
		if err != nil {
			return nil, err
		}
		toV, err := to.Get(f.Name)
		if err != nil {
			return nil, err
		}
		if e, changed := change(f.Name, true, fromV, toV); changed {
			entries = append(entries, e)
		}
	}
	for name, fromV := range from.All() {
		if !to.Has(name) {
			entries = append(entries, Entry{
				Field: name,
				Op:    Remove,
				From:  fromV,
			})
			continue
		}
		toV, err := to.IndexGet(name)
		if err != nil {
			return nil, err
		}
		if e, changed := change(name, false, fromV, toV); changed {
			entries = append(entries, e)
		}
	}
	for name, toV := range to.All() {
		if !from.Has(name) {
			entries = append(entries, Entry{
				Field: name,
				Op:    Add,
				To:    toV,
			})
		}
	}
	return entries, nil
}

func change(name string, fixed bool, fromV, toV any) (Entry, bool) {
	if equalValue(fromV, toV) {
		return Entry{}, false
	}
	e := Entry{
		Field: name,
		Fixed: fixed,
		Op:    Change,
		From:  fromV,
		To:    toV,
	}
	fromS, fromOK := fromV.(string)
	toS, toOK := toV.(string)
	if fromOK && toOK {
		e.Inline = inlineString(fromS, toS)
	}
	return e, true
}

func equalValue(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func inlineString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	b := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("[+")
			b.WriteString(diff.Text)
			b.WriteString("]")
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(diff.Text)
			b.WriteString("]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// Render writes a line-per-entry report of a diff.
func Render(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		layer := ""
		if e.Fixed {
			layer = " (fixed)"
		}
		var err error
		switch e.Op {
		case Add:
			_, err = fmt.Fprintf(w, "+ %s: %v\n", e.Field, e.To)
		case Remove:
			_, err = fmt.Fprintf(w, "- %s: %v\n", e.Field, e.From)
		case Change:
			if e.Inline != "" {
				_, err = fmt.Fprintf(w, "~ %s%s: %s\n", e.Field, layer, e.Inline)
			} else {
				_, err = fmt.Fprintf(w, "~ %s%s: %v -> %v\n", e.Field, layer, e.From, e.To)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

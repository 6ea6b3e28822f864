package shape

import (
	"github.com/goccy/go-yaml"
)

// Declaration file layout:
//
//	shape: point
//	fields:
//	  - name: x
//	    type: float
//	  - name: y
//	    type: float
//	    check: value >= 0
type declDoc struct {
	Shape  string      `yaml:"shape"`
	Fields []declField `yaml:"fields"`
}

type declField struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Check string `yaml:"check"`
}

// ParseDecl parses a YAML shape declaration. All failure modes are
// DefinitionErrors: malformed YAML, unknown or parameterized types,
// uncompilable check formulas, duplicate field names.
func ParseDecl(data []byte) (*Shape, error) {
	var doc declDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DefinitionError{
			Message: "cannot decode shape declaration",
			Err:     err,
		}
	}
	if doc.Shape == "" {
		return nil, &DefinitionError{Message: "declaration has no shape name"}
	}
	fields := make([]Field, 0, len(doc.Fields))
	for _, df := range doc.Fields {
		t, err := Parse(df.Type)
		if err != nil {
			return nil, err
		}
		f := Field{Name: df.Name, Type: t}
		if df.Check != "" {
			chk, err := NewCheck(df.Check)
			if err != nil {
				return nil, err
			}
			f.Check = chk
		}
		fields = append(fields, f)
	}
	return New(doc.Shape, fields...)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/record"
	"github.com/signadot/flexrec/shape"
)

// Record file layout:
//
//	tag: point
//	shape: point    # optional, resolved against loaded -shape files
//	elem: int       # optional dynamic element type
//	values:
//	  x: 1.0
//	  y: 2.0
//	  label: origin
type recDoc struct {
	Tag    string        `yaml:"tag"`
	Shape  string        `yaml:"shape"`
	Elem   string        `yaml:"elem"`
	Values yaml.MapSlice `yaml:"values"`
}

func loadShapeFile(reg *shape.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read shape file %q: %w", path, err)
	}
	sh, err := shape.ParseDecl(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return reg.Register(sh)
}

func readFileOrStdin(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return data, nil
}

func getRecFile(cfg *MainConfig, cc *cli.Context, path string) (*record.Record, error) {
	data, err := readFileOrStdin(cc, path)
	if err != nil {
		return nil, err
	}
	rec, err := parseRecDoc(cfg.Registry, data)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return rec, nil
}

func parseRecDoc(reg *shape.Registry, data []byte) (*record.Record, error) {
	var doc recDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode record document: %w", err)
	}
	var sh *shape.Shape
	if doc.Shape != "" {
		var ok bool
		sh, ok = reg.Lookup(doc.Shape)
		if !ok {
			return nil, fmt.Errorf("shape %q not loaded, use -shape", doc.Shape)
		}
	}
	elem := shape.Any
	if doc.Elem != "" {
		var err error
		elem, err = shape.Parse(doc.Elem)
		if err != nil {
			return nil, err
		}
	}

	vals := make(map[string]any, len(doc.Values))
	order := make([]string, 0, len(doc.Values))
	for _, item := range doc.Values {
		key := fmt.Sprint(item.Key)
		if _, dup := vals[key]; dup {
			return nil, fmt.Errorf("duplicate value %q", key)
		}
		vals[key] = normalizeValue(item.Value)
		order = append(order, key)
	}

	args := make([]any, 0, len(order))
	fixed := map[string]bool{}
	for _, name := range sh.Names() {
		v, ok := vals[name]
		if !ok {
			return nil, fmt.Errorf("missing value for fixed field %q of shape %q", name, sh.Name())
		}
		args = append(args, v)
		fixed[name] = true
	}
	for _, key := range order {
		if fixed[key] {
			continue
		}
		args = append(args, record.Pair{Name: key, Value: vals[key]})
	}
	return record.NewTyped(record.Tag(doc.Tag), sh, elem, args...)
}

// normalizeValue maps decoded YAML scalars onto the value types the
// declaration type names stand for: all ints become int64, floats
// float64.
func normalizeValue(v any) any {
	switch tv := v.(type) {
	case int:
		return int64(tv)
	case int32:
		return int64(tv)
	case uint:
		return int64(tv)
	case uint32:
		return int64(tv)
	case uint64:
		return int64(tv)
	case float32:
		return float64(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = normalizeValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = normalizeValue(e)
		}
		return out
	case yaml.MapSlice:
		out := make(map[string]any, len(tv))
		for _, item := range tv {
			out[fmt.Sprint(item.Key)] = normalizeValue(item.Value)
		}
		return out
	}
	return v
}

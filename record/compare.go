package record

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Compare returns an integer comparing two records. The result will be
// 0 if a==b, -1 if a < b, and +1 if a > b. Tags order first, so
// records with different tags are never equal regardless of their
// contents.
func Compare(a, b *Record) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(string(a.tag), string(b.tag)); c != 0 {
		return c
	}
	if c := strings.Compare(a.shape.Name(), b.shape.Name()); c != 0 {
		return c
	}
	for i := range min(len(a.fixed), len(b.fixed)) {
		if c := compareValue(a.fixed[i], b.fixed[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.fixed), len(b.fixed)); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.keys), len(b.keys)); c != 0 {
		return c
	}
	for i, k := range a.keys {
		if c := strings.Compare(k, b.keys[i]); c != 0 {
			return c
		}
		if c := compareValue(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether two records have the same tag, shape, and
// contents. It is tag-sensitive the same way Compare is.
func Equal(a, b *Record) bool {
	return Compare(a, b) == 0
}

// compareValue orders stored values: null < bool < number < string <
// everything else. Numbers compare numerically across int and float
// representations; other values compare by their printed form.
func compareValue(a, b any) int {
	rankA, rankB := valueRank(a), valueRank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch rankA {
	case 0:
		return 0
	case 1:
		av, bv := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case 2:
		return cmp.Compare(toFloat(a), toFloat(b))
	case 3:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func valueRank(v any) int {
	if v == nil {
		return 0
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	}
	return 4
}

func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return 0
}

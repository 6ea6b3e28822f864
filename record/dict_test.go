package record

import (
	"errors"
	"slices"
	"testing"
)

func entryRecord(t *testing.T) *Record {
	t.Helper()
	r, err := New(Untagged, nil,
		Pair{Name: "a", Value: 1},
		Pair{Name: "b", Value: 2},
		Pair{Name: "c", Value: 3},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestLen(t *testing.T) {
	r := entryRecord(t)
	if r.Len() != 3 {
		t.Fatalf("Len() = %d", r.Len())
	}
	if err := r.Set("d", 4); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d after insert, want 4", r.Len())
	}
	if err := r.Set("a", 10); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d after overwrite, want 4", r.Len())
	}
}

func TestGetOr(t *testing.T) {
	r := entryRecord(t)
	if v := r.GetOr("a", 0); v != 1 {
		t.Errorf("GetOr(a) = %v", v)
	}
	if v := r.GetOr("z", 42); v != 42 {
		t.Errorf("GetOr(z) = %v", v)
	}
	if r.Has("z") {
		t.Errorf("GetOr inserted z")
	}
}

func TestGetOrInsert(t *testing.T) {
	r := entryRecord(t)
	v, err := r.GetOrInsert("z", 42)
	if err != nil || v != 42 {
		t.Fatalf("GetOrInsert(z) = %v, %v", v, err)
	}
	n := r.Len()
	v, err = r.GetOrInsert("z", 99)
	if err != nil || v != 42 {
		t.Fatalf("second GetOrInsert(z) = %v, %v; want 42", v, err)
	}
	if r.Len() != n {
		t.Errorf("second GetOrInsert changed entry count")
	}
}

func TestIterationOrder(t *testing.T) {
	r := entryRecord(t)
	if err := r.Set("a", 100); err != nil { // overwrite keeps position
		t.Fatalf("Set: %v", err)
	}
	var keys []string
	var vals []any
	for k, v := range r.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("keys = %v", keys)
	}
	if vals[0] != 100 {
		t.Errorf("vals[0] = %v", vals[0])
	}
	// fresh iteration yields the same sequence
	var again []string
	for k := range r.All() {
		again = append(again, k)
	}
	if !slices.Equal(keys, again) {
		t.Errorf("second iteration %v != first %v", again, keys)
	}
}

func TestIterationBreak(t *testing.T) {
	r := entryRecord(t)
	n := 0
	for range r.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("yielded %d entries after break", n)
	}
}

func TestDelete(t *testing.T) {
	r := entryRecord(t)
	if !r.Delete("b") {
		t.Fatalf("Delete(b) = false")
	}
	if r.Delete("b") {
		t.Fatalf("second Delete(b) = true")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d", r.Len())
	}
	if !slices.Equal(r.Keys(), []string{"a", "c"}) {
		t.Errorf("Keys() = %v", r.Keys())
	}
	// index stays consistent after compaction
	v, err := r.IndexGet("c")
	if err != nil || v != 3 {
		t.Errorf("IndexGet(c) = %v, %v", v, err)
	}
	if err := r.Set("b", 20); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !slices.Equal(r.Keys(), []string{"a", "c", "b"}) {
		t.Errorf("Keys() = %v after reinsert", r.Keys())
	}
}

func TestIndexGetSkipsFixed(t *testing.T) {
	sh := pointShape(t)
	r, err := New("point", sh, 1.0, 2.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.IndexGet("x"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("IndexGet(x) = %v, want key not found", err)
	}
	if r.Has("x") {
		t.Errorf("Has(x) over dynamic layer")
	}
}

func TestPairs(t *testing.T) {
	r := entryRecord(t)
	pairs := r.Pairs()
	want := []Pair{{"a", 1}, {"b", 2}, {"c", 3}}
	if len(pairs) != len(want) {
		t.Fatalf("Pairs() = %v", pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Pairs()[%d] = %v, want %v", i, pairs[i], want[i])
		}
	}
}

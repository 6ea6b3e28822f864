// Package dispatch selects behavior per record tag. It is the
// consuming side of the tag layer: records with different tags hit
// different handlers even when their field shapes coincide.
package dispatch

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/signadot/flexrec/record"
)

// Handler consumes a record selected by its tag.
type Handler func(*record.Record) (any, error)

// NoHandlerError reports a dispatch for which no handler and no
// default is registered.
type NoHandlerError struct {
	Tag record.Tag
}

func (e *NoHandlerError) Error() string {
	if e.Tag.IsUntagged() {
		return "no handler for untagged records"
	}
	return fmt.Sprintf("no handler for tag %s", e.Tag)
}

// Dispatcher routes records to handlers by tag. It is safe for
// concurrent use; dispatchers are typically populated at init time.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[record.Tag]Handler
	fallback Handler
}

func New() *Dispatcher {
	return &Dispatcher{handlers: map[record.Tag]Handler{}}
}

// Register binds a handler to a tag. Binding a tag twice fails.
func (d *Dispatcher) Register(tag record.Tag, h Handler) error {
	if h == nil {
		return fmt.Errorf("nil handler for tag %q", string(tag))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.handlers[tag]; exists {
		return fmt.Errorf("handler for tag %q already registered", string(tag))
	}
	d.handlers[tag] = h
	return nil
}

// Default sets the handler for tags with no registered handler.
func (d *Dispatcher) Default(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallback = h
}

// Dispatch routes r to the handler registered for its tag, falling
// back to the default handler when set.
func (d *Dispatcher) Dispatch(r *record.Record) (any, error) {
	d.mu.RLock()
	h, ok := d.handlers[r.Tag()]
	if !ok {
		h = d.fallback
	}
	d.mu.RUnlock()
	if h == nil {
		return nil, &NoHandlerError{Tag: r.Tag()}
	}
	return h(r)
}

// Tags returns the registered tags, sorted.
func (d *Dispatcher) Tags() []record.Tag {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Sorted(maps.Keys(d.handlers))
}

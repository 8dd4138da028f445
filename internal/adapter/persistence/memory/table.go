// Package memory keeps lifecycle entities in process memory. It is the default storage.
package memory

import (
	"errors"
	"sync"
)

var ErrDuplicateID = errors.New("memory: duplicate id")

// table is an insertion-ordered map of rows keyed by id.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	id    func(T) string
	clone func(T) T
}

func newTable[T any](id func(T) string, clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[string]T), id: id, clone: clone}
}

func (t *table[T]) create(v T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := t.id(v)
	if _, ok := t.rows[key]; ok {
		var zero T
		return zero, ErrDuplicateID
	}
	t.rows[key] = t.clone(v)
	t.order = append(t.order, key)
	return t.clone(v), nil
}

// get returns the zero value when id is unknown.
func (t *table[T]) get(id string) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.clone(t.rows[id])
}

// update replaces an existing row; unknown ids yield the zero value.
func (t *table[T]) update(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := t.id(v)
	if _, ok := t.rows[key]; !ok {
		var zero T
		return zero
	}
	t.rows[key] = t.clone(v)
	return t.clone(v)
}

func (t *table[T]) delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// filter returns matching rows in insertion order.
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, key := range t.order {
		v := t.rows[key]
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

func (t *table[T]) first(match func(T) bool) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, key := range t.order {
		if v := t.rows[key]; match(v) {
			return t.clone(v)
		}
	}
	var zero T
	return zero
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Package sequence mints the human-readable numbers of visits, budgets and service orders.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"reforma_xpto/internal/domain/entities"
)

var ErrUnknownKind = errors.New("unknown document kind")

// CounterStore holds one monotonic counter per document kind.
//
// Claim returns the current value of the counter and advances it by exactly one, atomically.
// Counters start at 1 and are never decremented.
type CounterStore interface {
	Claim(ctx context.Context, kind entities.DocumentKind) (int64, error)
}

// MemoryCounterStore keeps counters for the lifetime of the process.
type MemoryCounterStore struct {
	counters map[entities.DocumentKind]*atomic.Int64
}

func NewMemoryCounterStore() *MemoryCounterStore {
	s := &MemoryCounterStore{counters: make(map[entities.DocumentKind]*atomic.Int64)}
	for _, k := range entities.DocumentKinds() {
		c := &atomic.Int64{}
		c.Store(1)
		s.counters[k] = c
	}
	return s
}

// Seed moves the counter of kind forward to next. Values lower than the current counter are ignored.
func (s *MemoryCounterStore) Seed(kind entities.DocumentKind, next int64) {
	c, ok := s.counters[kind]
	if !ok {
		return
	}
	for {
		cur := c.Load()
		if next <= cur || c.CompareAndSwap(cur, next) {
			return
		}
	}
}

func (s *MemoryCounterStore) Claim(_ context.Context, kind entities.DocumentKind) (int64, error) {
	c, ok := s.counters[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c.Add(1) - 1, nil
}

// Registry formats claimed counter values as "NNNN-YY".
//
// The prefix setting is stored and can be edited, but formatting does not read it: numbers are
// always padded to four digits followed by the two-digit year.
type Registry struct {
	store CounterStore
	now   func() time.Time

	mu     sync.RWMutex
	prefix string
}

type Option func(*Registry)

func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func WithPrefix(prefix string) Option {
	return func(r *Registry) { r.prefix = prefix }
}

// NewRegistry builds a registry over store. A nil store falls back to process memory.
func NewRegistry(store CounterStore, opts ...Option) *Registry {
	if store == nil {
		store = NewMemoryCounterStore()
	}
	r := &Registry{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next claims the next counter value of kind, e.g. "0001-25".
func (r *Registry) Next(ctx context.Context, kind entities.DocumentKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	n, err := r.store.Claim(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("claim %s sequence: %w", kind, err)
	}
	return Format(n, r.now().Year()), nil
}

// Number claims the next value of kind and prepends the kind prefix, e.g. "VIS-0001-25".
func (r *Registry) Number(ctx context.Context, kind entities.DocumentKind) (string, error) {
	next, err := r.Next(ctx, kind)
	if err != nil {
		return "", err
	}
	return kind.Prefix() + next, nil
}

func (r *Registry) Prefix() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefix
}

func (r *Registry) SetPrefix(prefix string) {
	r.mu.Lock()
	r.prefix = prefix
	r.mu.Unlock()
}

// Format renders a counter value and calendar year as "NNNN-YY".
func Format(counter int64, year int) string {
	return fmt.Sprintf("%04d-%02d", counter, year%100)
}

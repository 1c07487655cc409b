package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection is a named set of records of one type, persisted as a JSON
// array under a single KV key. Mutations rewrite the whole collection.
// A per-collection mutex serializes read-modify-write cycles so the
// original single-writer assumption holds under parallel callers.
type Collection[T any] struct {
	kv  KV
	key string
	id  func(T) string
	mu  sync.Mutex
}

// NewCollection creates a collection stored under key. id extracts a
// record's identifier for upsert and delete matching.
func NewCollection[T any](kv KV, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, id: id}
}

// GetAll returns every record in the collection. Absent or unparseable
// stored content degrades to an empty collection.
func (c *Collection[T]) GetAll(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// FindByID returns the record with the given identifier.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.load(ctx) {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with the same identifier in place, or appends
// it if no such record exists.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.load(ctx)
	replaced := false
	for i := range items {
		if c.id(items[i]) == c.id(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.save(ctx, items)
}

// DeleteByID removes the record with the given identifier. Deleting an
// absent identifier is a no-op.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.load(ctx)
	kept := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	return c.save(ctx, kept)
}

// initialized reports whether the collection key was ever written. Used by
// seeding to distinguish a never-written collection from an empty one.
func (c *Collection[T]) initialized(ctx context.Context) bool {
	data, err := c.kv.Get(ctx, c.key)
	return err == nil && data != nil
}

func (c *Collection[T]) load(ctx context.Context) []T {
	data, err := c.kv.Get(ctx, c.key)
	if err != nil || len(data) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	return items
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, payload); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

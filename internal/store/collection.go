package store

import "sync"

// Collection is an insertion-ordered, id-keyed set of records of one kind.
// Reads hand out copies and writes are serialized per collection; records
// whose nested slices must not alias the stored state are detached through
// the clone function (see NewClonedCollection).
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
	keyOf func(T) string
	clone func(T) T
}

// NewCollection builds an empty collection keyed by the given function.
// Suitable for flat record types; use NewClonedCollection when records
// carry nested slices.
func NewCollection[T any](keyOf func(T) string) *Collection[T] {
	return NewClonedCollection(keyOf, func(item T) T { return item })
}

// NewClonedCollection builds a collection that passes every record through
// clone on its way in and out, so callers never share backing arrays with
// the stored state.
func NewClonedCollection[T any](keyOf func(T) string, clone func(T) T) *Collection[T] {
	return &Collection[T]{
		index: make(map[string]int),
		keyOf: keyOf,
		clone: clone,
	}
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(c.items[pos]), true
}

// All returns every record in insertion order. The returned slice is a copy.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

// Insert appends the record and returns its key. Keys are assigned fresh at
// creation time and never reused; inserting a key that is already present
// leaves the existing record untouched.
func (c *Collection[T]) Insert(item T) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.keyOf(item)
	if _, ok := c.index[key]; ok {
		return key
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, c.clone(item))
	return key
}

// Upsert inserts the record, or replaces the record already stored under
// the same key, preserving its position.
func (c *Collection[T]) Upsert(item T) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.keyOf(item)
	if pos, ok := c.index[key]; ok {
		c.items[pos] = c.clone(item)
		return key
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, c.clone(item))
	return key
}

// Replace overwrites the record stored under id, preserving its position.
// It reports false when no record with that id exists.
func (c *Collection[T]) Replace(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items[pos] = c.clone(item)
	return true
}

// Update applies fn to the record stored under id while holding the write
// lock, so a compound read-modify-write runs as one atomic mutation and
// concurrent updates can never overwrite each other. It reports false when
// no record with that id exists.
func (c *Collection[T]) Update(id string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items[pos] = c.clone(fn(c.clone(c.items[pos])))
	return true
}

// Find returns the first record matching the predicate, in insertion order.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

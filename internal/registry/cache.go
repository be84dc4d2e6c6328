// Package registry provides the process-wide specialization caches shared
// by every derivation (mutability, cycles, copy, equality). It generalizes
// the teacher's SyncMap (types/collections.go) from a string-keyed map to a
// reflect.Type-keyed one and adds GetOrCompute, which collapses concurrent
// first-use derivation races onto a single winner via singleflight instead
// of letting every caller redo the (potentially recursive) synthesis work.
package registry

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a goroutine-safe map from reflect.Type to a specialization V.
// Once a value is installed for a key it is never mutated in place. Create
// one with New; the zero value has no backing map and is not ready to use.
type Cache[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
	flight singleflight.Group
}

// New creates an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{values: make(map[K]V)}
}

// Get retrieves the value stored for key, if any.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Set installs a value for key, overwriting any prior value. Called
// directly by copy.OverrideCopier, and by GetOrCompute to store a freshly
// computed value.
func (c *Cache[K, V]) Set(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = val
}

// Delete removes the value cached for key, if any.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}

// Len reports the number of cached specializations.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// GetOrCompute returns the cached value for key, computing it with fn on a
// miss. Concurrent callers requesting the same key while a computation is
// in flight all observe the single winner's result; the loser's own call to
// fn (if any transient duplicate work happened before the flight group took
// over) is discarded. fn's error is never cached, so a later call can retry
// once the underlying condition (e.g. a missing constructor) is fixed via
// an override.
func GetOrCompute[K comparable, V any](c *Cache[K, V], key K, keyName string, fn func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	result, err, _ := c.flight.Do(keyName, func() (interface{}, error) {
		// Re-check under the flight group: another goroutine may have
		// installed the value between our first Get and acquiring the
		// singleflight slot.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// LazySet installs a value for key only if the key is still absent. It
// implements the "assignment deferred until after derivation completes"
// rule (spec §3 Invariant 2, §4.D) that lets mutually recursive types
// derive without deadlocking: copy.walkerFor builds T's walker without
// calling it, installs it here, and only then runs it, so recursion into U
// and back into T finds T's walker already in place. If another goroutine
// installed a value first, that value is kept.
func (c *Cache[K, V]) LazySet(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.values[key]; !exists {
		c.values[key] = val
	}
}

package cache

import "sync"

// MapCache is a typed cache with no expiry, for payloads that must be
// invalidated explicitly when an execution mutates state.
type MapCache[K comparable, V any] struct{ m sync.Map }

func NewMapCache[K comparable, V any]() *MapCache[K, V] {
	return &MapCache[K, V]{}
}

func (c *MapCache[K, V]) Set(k K, v V) { c.m.Store(k, v) }

func (c *MapCache[K, V]) Get(k K) (V, bool) {
	v, ok := c.m.Load(k)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Clear drops every entry. Called after each executed trade.
func (c *MapCache[K, V]) Clear() {
	c.m.Range(func(k, _ any) bool { c.m.Delete(k); return true })
}

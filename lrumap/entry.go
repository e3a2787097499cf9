/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package lrumap

// Entry is a single key-value binding together with its position in the recency chain.
// Entries are created by LRUMap and stay linked into the chain until they are evicted or removed.
type Entry[K comparable, V any] struct {
	key   K
	value V

	older *Entry[K, V] // one step toward the least recently used end, nil for the oldest entry
	newer *Entry[K, V] // one step toward the most recently used end, nil for the newest entry
}

// Key returns the key the entry was inserted with.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Value returns the value stored in the entry.
func (e *Entry[K, V]) Value() V {
	return e.value
}

// Older returns the neighboring entry one step closer to the least recently used end
// of the chain, or nil if the entry is the oldest one.
func (e *Entry[K, V]) Older() *Entry[K, V] {
	return e.older
}

// Newer returns the neighboring entry one step closer to the most recently used end
// of the chain, or nil if the entry is the newest one.
func (e *Entry[K, V]) Newer() *Entry[K, V] {
	return e.newer
}

/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package lrumap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LRUMap represents a fixed-capacity key-value map with least-recently-used eviction.
// Entries are indexed by key and kept on a doubly-linked recency chain,
// the head of the chain being the next eviction candidate.
// Methods must not be called concurrently.
type LRUMap[K comparable, V any] struct {
	limit int
	size  int

	index map[K]*Entry[K, V]
	head  *Entry[K, V] // least recently used entry
	tail  *Entry[K, V] // most recently used entry

	onEvict func(key K, value V)
}

// Options represents options for the map.
type Options[K comparable, V any] struct {
	// OnEvict, if set, is called after an entry has been evicted,
	// whether by a capacity overflow on insertion or by a direct Evict call.
	// Remove and RemoveAll do not report to it.
	// The callback must not mutate the map.
	OnEvict func(key K, value V)
}

// New creates a new LRUMap holding at most limit entries.
// Zero limit is allowed and makes every insertion evict immediately.
func New[K comparable, V any](limit int) (*LRUMap[K, V], error) {
	return NewWithOpts(limit, Options[K, V]{})
}

// NewWithOpts creates a new LRUMap with the provided limit and options.
func NewWithOpts[K comparable, V any](limit int, opts Options[K, V]) (*LRUMap[K, V], error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must be greater or equal to 0")
	}
	return &LRUMap[K, V]{
		limit:   limit,
		index:   make(map[K]*Entry[K, V]),
		onEvict: opts.OnEvict,
	}, nil
}

// NewWithConfig creates a new LRUMap with the limit taken from the provided Config.
func NewWithConfig[K comparable, V any](cfg *Config) (*LRUMap[K, V], error) {
	return New[K, V](cfg.MaxEntries)
}

// Put inserts a new entry at the most recently used position and points the index at it.
// The entry evicted to make room is returned, or nil if the map had room.
//
// Put never reuses an existing entry: inserting a key that is already present leaves
// the previous entry on the recency chain (it keeps showing up in traversals, String,
// and MarshalJSON) while the index knows only the new one. The stale entry ages out
// through eviction as usual, and its eviction removes the key from the index even though
// the index maps the key to the newer entry, so lookups may miss a key whose entry is
// still chain-linked until that entry ages out too. No state leaks in the process.
// Use Set to update keys that may already be present.
func (m *LRUMap[K, V]) Put(key K, value V) *Entry[K, V] {
	defer m.checkInvariants()
	_, evicted := m.put(key, value)
	return evicted
}

// Evict removes the least recently used entry from the chain and the index and returns it,
// or nil if the map is empty. The links of the evicted entry are cleared before it is returned.
//
// Evict does not decrement Len: capacity-driven eviction inside Put accounts for
// the insertion and the eviction together. After a direct call, Len stays one above
// the number of chain-linked entries; use Remove(m.Oldest().Key()) when the length
// must track removals.
func (m *LRUMap[K, V]) Evict() *Entry[K, V] {
	defer m.checkInvariants()
	return m.evict()
}

// Get returns the value stored under the provided key and moves its entry
// to the most recently used position. The zero value and false are returned
// when the key is absent.
func (m *LRUMap[K, V]) Get(key K) (value V, ok bool) {
	defer m.checkInvariants()
	e, ok := m.index[key]
	if !ok {
		return value, false
	}
	m.touch(e)
	return e.value, true
}

// GetEntry is Get returning the entry itself instead of the stored value,
// nil when the key is absent.
func (m *LRUMap[K, V]) GetEntry(key K) *Entry[K, V] {
	defer m.checkInvariants()
	e, ok := m.index[key]
	if !ok {
		return nil
	}
	m.touch(e)
	return e
}

// Find returns the entry holding the provided key without affecting its position
// in the recency chain, or nil when the key is absent.
func (m *LRUMap[K, V]) Find(key K) *Entry[K, V] {
	return m.index[key]
}

// Peek is Find returning the stored value instead of the entry.
func (m *LRUMap[K, V]) Peek(key K) (value V, ok bool) {
	e, ok := m.index[key]
	if !ok {
		return value, false
	}
	return e.value, true
}

// Contains reports whether the provided key is present in the index.
// Recency order is not affected.
func (m *LRUMap[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Set updates the value of an existing entry in place after moving it to the most
// recently used position, returning the previous value and true. When the key is absent,
// Set inserts it via Put and returns the value of the entry the insertion evicted, if any,
// and whether such an eviction happened. A map with zero limit evicts the just-inserted
// entry itself, which Set reports the same way as an insertion without eviction.
func (m *LRUMap[K, V]) Set(key K, value V) (prev V, ok bool) {
	defer m.checkInvariants()
	if e, found := m.index[key]; found {
		m.touch(e)
		prev = e.value
		e.value = value
		return prev, true
	}
	inserted, evicted := m.put(key, value)
	if evicted != nil && evicted != inserted {
		return evicted.value, true
	}
	return prev, false
}

// Remove deletes the entry holding the provided key from the index and the chain,
// decrements Len, and returns the stored value. The zero value and false are returned
// when the key is absent.
func (m *LRUMap[K, V]) Remove(key K) (value V, ok bool) {
	defer m.checkInvariants()
	e, found := m.index[key]
	if !found {
		return value, false
	}
	delete(m.index, key)
	switch {
	case e.newer != nil && e.older != nil:
		e.older.newer = e.newer
		e.newer.older = e.older
	case e.newer != nil: // removed the oldest entry
		e.newer.older = nil
		m.head = e.newer
	case e.older != nil: // removed the newest entry
		e.older.newer = nil
		m.tail = e.older
	default: // removed the only entry
		m.head = nil
		m.tail = nil
	}
	e.newer = nil
	e.older = nil
	m.size--
	return e.value, true
}

// RemoveAll removes all entries at once, leaving the map empty with its limit unchanged.
func (m *LRUMap[K, V]) RemoveAll() {
	defer m.checkInvariants()
	m.index = make(map[K]*Entry[K, V])
	m.head = nil
	m.tail = nil
	m.size = 0
}

// Keys returns all indexed keys in no particular order.
func (m *LRUMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.index))
	for key := range m.index {
		keys = append(keys, key)
	}
	return keys
}

// ForEach calls visit for every chain-linked entry, from the least recently used one
// to the most recently used one, or in the opposite direction when newestFirst is true.
// The visit callback must not mutate the map.
func (m *LRUMap[K, V]) ForEach(visit func(key K, value V), newestFirst bool) {
	if newestFirst {
		for e := m.tail; e != nil; e = e.older {
			visit(e.key, e.value)
		}
		return
	}
	for e := m.head; e != nil; e = e.newer {
		visit(e.key, e.value)
	}
}

// Len returns the number of entries the map accounts for.
func (m *LRUMap[K, V]) Len() int {
	return m.size
}

// Limit returns the maximum number of entries the map holds before evicting.
func (m *LRUMap[K, V]) Limit() int {
	return m.limit
}

// Oldest returns the least recently used entry without touching it,
// or nil if the map is empty.
func (m *LRUMap[K, V]) Oldest() *Entry[K, V] {
	return m.head
}

// Newest returns the most recently used entry without touching it,
// or nil if the map is empty.
func (m *LRUMap[K, V]) Newest() *Entry[K, V] {
	return m.tail
}

// String renders the chain as "key:value < key:value" pairs from the least recently used
// entry to the most recently used one. It is meant for diagnostics.
// Implements fmt.Stringer interface.
func (m *LRUMap[K, V]) String() string {
	var sb strings.Builder
	for e := m.head; e != nil; e = e.newer {
		if e != m.head {
			sb.WriteString(" < ")
		}
		fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
	}
	return sb.String()
}

type chainedEntry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON dumps the chain as a JSON array of {"key": ..., "value": ...} objects
// from the least recently used entry to the most recently used one.
// Implements json.Marshaler interface.
func (m *LRUMap[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]chainedEntry[K, V], 0, m.size)
	for e := m.head; e != nil; e = e.newer {
		entries = append(entries, chainedEntry[K, V]{Key: e.key, Value: e.value})
	}
	return json.Marshal(entries)
}

func (m *LRUMap[K, V]) put(key K, value V) (inserted, evicted *Entry[K, V]) {
	inserted = &Entry[K, V]{key: key, value: value}
	if m.tail != nil {
		m.tail.newer = inserted
		inserted.older = m.tail
	} else {
		m.head = inserted
	}
	m.tail = inserted
	m.index[key] = inserted
	if m.size >= m.limit {
		return inserted, m.evict()
	}
	m.size++
	return inserted, nil
}

func (m *LRUMap[K, V]) evict() *Entry[K, V] {
	evicted := m.head
	if evicted == nil {
		return nil
	}
	if evicted.newer != nil {
		evicted.newer.older = nil
		m.head = evicted.newer
	} else {
		m.head = nil
		m.tail = nil
	}
	evicted.newer = nil
	evicted.older = nil
	delete(m.index, evicted.key)
	if m.onEvict != nil {
		m.onEvict(evicted.key, evicted.value)
	}
	return evicted
}

// touch moves a chain-linked entry to the most recently used position.
func (m *LRUMap[K, V]) touch(e *Entry[K, V]) {
	if e == m.tail {
		return
	}
	if e == m.head {
		m.head = e.newer
	}
	e.newer.older = e.older
	if e.older != nil {
		e.older.newer = e.newer
	}
	e.older = m.tail
	e.newer = nil
	m.tail.newer = e
	m.tail = e
}

/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package lrumap

import (
	"github.com/rs/xid"

	"github.com/acronis/go-lrumap/log"
)

// LoggingView wraps LRUMap and writes a debug-level log entry for every operation
// that reads or changes the recency order, which helps to understand why a particular
// entry was or was not evicted. Every log entry carries a generated "lrumap_id" field,
// so views over different maps stay distinguishable in one log stream.
// LoggingView adds no synchronization and mirrors the behavior of the wrapped map exactly.
type LoggingView[K comparable, V any] struct {
	m      *LRUMap[K, V]
	logger log.FieldLogger
}

// NewLoggingView creates a new LoggingView over the provided map.
func NewLoggingView[K comparable, V any](m *LRUMap[K, V], logger log.FieldLogger) *LoggingView[K, V] {
	return &LoggingView[K, V]{
		m:      m,
		logger: logger.With(log.String("lrumap_id", xid.New().String())),
	}
}

// Map returns the wrapped map.
func (v *LoggingView[K, V]) Map() *LRUMap[K, V] {
	return v.m
}

// Put calls Put on the wrapped map and logs the insertion and the eviction it may cause.
func (v *LoggingView[K, V]) Put(key K, value V) *Entry[K, V] {
	evicted := v.m.Put(key, value)
	if evicted != nil {
		v.logger.Debug("lru map entry put, the oldest entry evicted",
			log.Any("key", key), log.Any("evicted_key", evicted.Key()), log.Int("len", v.m.Len()))
		return evicted
	}
	v.logger.Debug("lru map entry put", log.Any("key", key), log.Int("len", v.m.Len()))
	return nil
}

// Evict calls Evict on the wrapped map and logs the evicted entry, if any.
func (v *LoggingView[K, V]) Evict() *Entry[K, V] {
	evicted := v.m.Evict()
	if evicted != nil {
		v.logger.Debug("lru map oldest entry evicted",
			log.Any("evicted_key", evicted.Key()), log.Int("len", v.m.Len()))
	}
	return evicted
}

// Get calls Get on the wrapped map and logs whether the key was found.
func (v *LoggingView[K, V]) Get(key K) (value V, ok bool) {
	value, ok = v.m.Get(key)
	v.logger.Debug("lru map entry requested", log.Any("key", key), log.Bool("hit", ok))
	return value, ok
}

// GetEntry calls GetEntry on the wrapped map and logs whether the key was found.
func (v *LoggingView[K, V]) GetEntry(key K) *Entry[K, V] {
	e := v.m.GetEntry(key)
	v.logger.Debug("lru map entry requested", log.Any("key", key), log.Bool("hit", e != nil))
	return e
}

// Find calls Find on the wrapped map. Lookups that do not affect the recency order are not logged.
func (v *LoggingView[K, V]) Find(key K) *Entry[K, V] {
	return v.m.Find(key)
}

// Peek calls Peek on the wrapped map.
func (v *LoggingView[K, V]) Peek(key K) (value V, ok bool) {
	return v.m.Peek(key)
}

// Contains calls Contains on the wrapped map.
func (v *LoggingView[K, V]) Contains(key K) bool {
	return v.m.Contains(key)
}

// Set calls Set on the wrapped map and logs whether the entry was updated in place,
// inserted, or inserted with an eviction.
func (v *LoggingView[K, V]) Set(key K, value V) (prev V, ok bool) {
	existed := v.m.Contains(key)
	prev, ok = v.m.Set(key, value)
	switch {
	case existed:
		v.logger.Debug("lru map entry updated", log.Any("key", key))
	case ok:
		v.logger.Debug("lru map entry set, the oldest entry evicted",
			log.Any("key", key), log.Int("len", v.m.Len()))
	default:
		v.logger.Debug("lru map entry set", log.Any("key", key), log.Int("len", v.m.Len()))
	}
	return prev, ok
}

// Remove calls Remove on the wrapped map and logs whether the key was found and removed.
func (v *LoggingView[K, V]) Remove(key K) (value V, ok bool) {
	value, ok = v.m.Remove(key)
	v.logger.Debug("lru map entry removal requested",
		log.Any("key", key), log.Bool("removed", ok), log.Int("len", v.m.Len()))
	return value, ok
}

// RemoveAll calls RemoveAll on the wrapped map and logs the number of removed entries.
func (v *LoggingView[K, V]) RemoveAll() {
	removed := v.m.Len()
	v.m.RemoveAll()
	v.logger.Debug("lru map cleared", log.Int("removed", removed))
}

// Keys calls Keys on the wrapped map.
func (v *LoggingView[K, V]) Keys() []K {
	return v.m.Keys()
}

// ForEach calls ForEach on the wrapped map.
func (v *LoggingView[K, V]) ForEach(visit func(key K, value V), newestFirst bool) {
	v.m.ForEach(visit, newestFirst)
}

// Len calls Len on the wrapped map.
func (v *LoggingView[K, V]) Len() int {
	return v.m.Len()
}

// Limit calls Limit on the wrapped map.
func (v *LoggingView[K, V]) Limit() int {
	return v.m.Limit()
}

// Oldest calls Oldest on the wrapped map.
func (v *LoggingView[K, V]) Oldest() *Entry[K, V] {
	return v.m.Oldest()
}

// Newest calls Newest on the wrapped map.
func (v *LoggingView[K, V]) Newest() *Entry[K, V] {
	return v.m.Newest()
}

// String calls String on the wrapped map.
func (v *LoggingView[K, V]) String() string {
	return v.m.String()
}

// MarshalJSON calls MarshalJSON on the wrapped map.
func (v *LoggingView[K, V]) MarshalJSON() ([]byte, error) {
	return v.m.MarshalJSON()
}

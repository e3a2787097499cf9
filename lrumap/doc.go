/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package lrumap provides a generically typed key-value map with a fixed capacity
// and least-recently-used eviction, all operations running in O(1) amortized time.
// The map is not goroutine-safe and is intended to be embedded behind the caller's own synchronization.
package lrumap

/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

//go:build !lrumapdebug

package lrumap

func (m *LRUMap[K, V]) checkInvariants() {}

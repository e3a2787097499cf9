/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

//go:build lrumapdebug

package lrumap

import "fmt"

// checkInvariants revalidates the chain and the index after a mutating operation
// and panics on the first violation it finds. Compiled in only with the lrumapdebug
// build tag; the walk makes every mutation O(n) under it.
func (m *LRUMap[K, V]) checkInvariants() {
	if (m.head == nil) != (m.tail == nil) {
		panic(fmt.Sprintf("lrumap: one chain end is nil and the other is not: head=%p tail=%p", m.head, m.tail))
	}
	if m.head == nil {
		if len(m.index) != 0 {
			panic(fmt.Sprintf("lrumap: index holds %d keys while the chain is empty", len(m.index)))
		}
		return
	}
	if m.head.older != nil {
		panic("lrumap: head has an older neighbor")
	}
	if m.tail.newer != nil {
		panic("lrumap: tail has a newer neighbor")
	}
	chained := make(map[*Entry[K, V]]struct{}, m.size)
	var last *Entry[K, V]
	length := 0
	for e := m.head; e != nil; e = e.newer {
		if length++; length > m.size {
			panic(fmt.Sprintf("lrumap: chain is longer than size %d or contains a cycle", m.size))
		}
		if e.newer != nil && e.newer.older != e {
			panic(fmt.Sprintf("lrumap: one-way link after the entry for key %v", e.key))
		}
		chained[e] = struct{}{}
		last = e
	}
	if last != m.tail {
		panic("lrumap: chain does not end at the tail")
	}
	if len(m.index) > length {
		panic(fmt.Sprintf("lrumap: index holds %d keys for a chain of %d entries", len(m.index), length))
	}
	for key, e := range m.index {
		if e == nil {
			panic(fmt.Sprintf("lrumap: index maps key %v to a nil entry", key))
		}
		if _, ok := chained[e]; !ok {
			panic(fmt.Sprintf("lrumap: index maps key %v to an entry outside the chain", key))
		}
	}
}

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sortedlist

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// DefaultCapacity is the capacity allocated on the first insertion
// into an empty map.
const DefaultCapacity = 4

// Map is an ordered map stored as two parallel sorted arrays.
// It is meant to be embedded by value where many small maps
// are needed, such as the children of trie nodes.
// Keys are kept strictly ascending so lookups can binary search.
// The zero value is an empty map ready to use.
type Map[K constraints.Ordered, V any] struct {
	keys   []K
	values []V
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Cap returns the number of entries the map can hold
// before it needs to reallocate.
func (m *Map[K, V]) Cap() int {
	return cap(m.keys)
}

// Reserve grows the capacity of the map to exactly n
// if its current capacity is smaller than n.
func (m *Map[K, V]) Reserve(n int) {
	if n <= cap(m.keys) {
		return
	}
	m.setCapacity(n)
}

func (m *Map[K, V]) setCapacity(capacity int) {
	count := len(m.keys)
	if capacity == 0 {
		m.keys, m.values = nil, nil
		return
	}

	keys := make([]K, count, capacity)
	values := make([]V, count, capacity)
	copy(keys, m.keys)
	copy(values, m.values)
	m.keys, m.values = keys, values
}

// Get returns the value for the key given and true,
// or the zero value and false if the key is not in the map.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	index, found := slices.BinarySearch(m.keys, key)
	if !found {
		return value, false
	}
	return m.values[index], true
}

// GetOrAdd returns the value for the key given. If the key is not
// in the map, the value returned by create is inserted at its sorted
// position and returned with added set to true.
func (m *Map[K, V]) GetOrAdd(key K, create func() V) (value V, added bool) {
	index, found := slices.BinarySearch(m.keys, key)
	if found {
		return m.values[index], false
	}

	value = create()
	m.insertAt(index, key, value)
	return value, true
}

func (m *Map[K, V]) insertAt(index int, key K, value V) {
	count := len(m.keys)
	if count == cap(m.keys) {
		m.setCapacity(max(DefaultCapacity, 2*cap(m.keys)))
	}

	m.keys = m.keys[:count+1]
	m.values = m.values[:count+1]
	if index < count {
		copy(m.keys[index+1:], m.keys[index:count])
		copy(m.values[index+1:], m.values[index:count])
	}
	m.keys[index] = key
	m.values[index] = value
}

// Remove removes the key given from the map and returns true
// if it was present.
func (m *Map[K, V]) Remove(key K) (removed bool) {
	index, found := slices.BinarySearch(m.keys, key)
	if !found {
		return false
	}

	last := len(m.keys) - 1
	if index < last {
		copy(m.keys[index:], m.keys[index+1:])
		copy(m.values[index:], m.values[index+1:])
	}

	// Clear the vacated slot so the map does not
	// keep the removed value reachable.
	var zeroKey K
	var zeroValue V
	m.keys[last] = zeroKey
	m.values[last] = zeroValue
	m.keys = m.keys[:last]
	m.values = m.values[:last]
	return true
}

// KeyAt returns the key at the index given in ascending order.
func (m *Map[K, V]) KeyAt(index int) K {
	return m.keys[index]
}

// ValueAt returns the value at the index given in ascending key order.
func (m *Map[K, V]) ValueAt(index int) V {
	return m.values[index]
}

// All returns an iterator over the entries of the map
// in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// Clear removes all entries and releases the storage.
func (m *Map[K, V]) Clear() {
	m.keys, m.values = nil, nil
}

// TrimExcess reallocates the storage to fit the number of entries
// if at least 10% of the capacity is unused.
func (m *Map[K, V]) TrimExcess() {
	capacity := cap(m.keys)
	if capacity == len(m.keys) {
		return
	}
	if capacity-len(m.keys) >= capacity/10 {
		m.setCapacity(len(m.keys))
	}
}

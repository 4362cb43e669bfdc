// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"
	"iter"

	"github.com/ChainSafe/gotries/internal/pools"
	"github.com/ChainSafe/gotries/pkg/trie/node"
)

// Entry is a key value pair of the trie.
type Entry[V any] struct {
	Key   string
	Value V
}

// All returns an iterator over the entries of the trie in
// ascending key order. The key yielded is a view into a buffer
// which is only valid until the next iteration step, and must
// be copied to be retained.
func (t *Trie[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func(key []byte, value V) bool) {
		lease := pools.NewLease(max(1, min(t.longest, maxKeyBufferSize)))
		defer lease.Release()

		for key, value := range t.root.Descendants(lease.Bytes(), 0) {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of the trie in ascending order.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return func(yield func(key string) bool) {
		for key := range t.All() {
			if !yield(string(key)) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of the trie
// in ascending order of their keys.
func (t *Trie[V]) Values() iter.Seq[V] {
	return func(yield func(value V) bool) {
		for _, value := range t.root.Descendants(nil, 0) {
			if !yield(value) {
				return
			}
		}
	}
}

// Entries returns all the entries of the trie in ascending key order.
func (t *Trie[V]) Entries() (entries []Entry[V]) {
	entries = make([]Entry[V], 0, t.count)
	for key, value := range t.All() {
		entries = append(entries, Entry[V]{Key: string(key), Value: value})
	}
	return entries
}

// CopyTo copies the entries of the trie in ascending key order
// into the destination given, starting at the index given.
// The destination is left untouched if an error is returned.
func (t *Trie[V]) CopyTo(destination []Entry[V], index int) (err error) {
	switch {
	case destination == nil:
		return ErrNilDestination
	case index < 0:
		return fmt.Errorf("%w: %d", ErrNegativeIndex, index)
	case index > len(destination) || len(destination)-index < t.count:
		return fmt.Errorf("%w: %d entries from index %d do not fit in length %d",
			ErrDestinationTooSmall, t.count, index, len(destination))
	}

	for key, value := range t.All() {
		destination[index] = Entry[V]{Key: string(key), Value: value}
		index++
	}
	return nil
}

// EntriesWithPrefix returns an iterator over the entries of the trie
// whose key starts with the prefix given, in ascending key order.
// An empty prefix yields all the entries. As for All, the key yielded
// is only valid until the next iteration step.
func (t *Trie[V]) EntriesWithPrefix(prefix string) iter.Seq2[[]byte, V] {
	return entriesWithPrefix(t, prefix)
}

// EntriesWithPrefixBytes is like EntriesWithPrefix for a prefix
// given as a byte slice.
func (t *Trie[V]) EntriesWithPrefixBytes(prefix []byte) iter.Seq2[[]byte, V] {
	return entriesWithPrefix(t, prefix)
}

func entriesWithPrefix[V any, K node.Key](t *Trie[V], prefix K) iter.Seq2[[]byte, V] {
	return func(yield func(key []byte, value V) bool) {
		start := find(t, prefix)
		if start == nil {
			return
		}

		lease := pools.NewLease(max(min(t.longest, maxKeyBufferSize), len(prefix)+1))
		defer lease.Release()
		keyBuffer := lease.Bytes()
		copy(keyBuffer, prefix)

		for key, value := range start.Descendants(keyBuffer, len(prefix)) {
			if !yield(key, value) {
				return
			}
		}
	}
}

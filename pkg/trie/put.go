// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/gotries/pkg/trie/node"
)

// Add inserts the key and value given in the trie.
// It returns an error wrapping ErrDuplicateKey if the key
// already exists, in which case the trie is left unchanged.
func (t *Trie[V]) Add(key string, value V) (err error) {
	return add(t, key, value)
}

// AddBytes is like Add for a key given as a byte slice.
func (t *Trie[V]) AddBytes(key []byte, value V) (err error) {
	return add(t, key, value)
}

func add[V any, K node.Key](t *Trie[V], key K, value V) (err error) {
	// A value holding destination has its whole path already
	// present, so no node gets created for a duplicate key.
	destination := getOrAddPath(t, key)
	if destination.HasValue() {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	destination.SetValue(value)
	t.count++
	t.extendLongest(len(key))
	return nil
}

// Set sets the value for the key given, inserting
// the key if it does not exist yet.
func (t *Trie[V]) Set(key string, value V) {
	set(t, key, value)
}

// SetBytes is like Set for a key given as a byte slice.
func (t *Trie[V]) SetBytes(key []byte, value V) {
	set(t, key, value)
}

func set[V any, K node.Key](t *Trie[V], key K, value V) {
	destination := getOrAddPath(t, key)
	if !destination.HasValue() {
		t.count++
		t.extendLongest(len(key))
	}
	destination.SetValue(value)
}

// GetOrAdd returns the value for the key given if it exists.
// Otherwise it inserts the value given for the key and returns it,
// with added set to true.
func (t *Trie[V]) GetOrAdd(key string, value V) (actual V, added bool) {
	destination := getOrAddPath(t, key)
	if existing, ok := destination.Value(); ok {
		return existing, false
	}
	destination.SetValue(value)
	t.count++
	t.extendLongest(len(key))
	return value, true
}

// getOrAddPath returns the node for the key given, creating
// the missing nodes on its path.
func getOrAddPath[V any, K node.Key](t *Trie[V], key K) *node.Node[V] {
	destination, created := node.GetOrAddPath(t.root, key)
	if created > 0 {
		t.nodes += created
		t.metrics.NodesAdd(created)
	}
	return destination
}

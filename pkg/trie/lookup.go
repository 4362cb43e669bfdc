// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/gotries/pkg/trie/node"
)

// Get returns the value for the key given. It returns an
// error wrapping ErrKeyNotFound if the key is not in the trie.
func (t *Trie[V]) Get(key string) (value V, err error) {
	return get(t, key)
}

// GetBytes is like Get for a key given as a byte slice.
func (t *Trie[V]) GetBytes(key []byte) (value V, err error) {
	return get(t, key)
}

func get[V any, K node.Key](t *Trie[V], key K) (value V, err error) {
	value, ok := tryGet(t, key)
	if !ok {
		return value, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// TryGet returns the value for the key given and true,
// or the zero value and false if the key is not in the trie.
func (t *Trie[V]) TryGet(key string) (value V, ok bool) {
	return tryGet(t, key)
}

// TryGetBytes is like TryGet for a key given as a byte slice.
func (t *Trie[V]) TryGetBytes(key []byte) (value V, ok bool) {
	return tryGet(t, key)
}

func tryGet[V any, K node.Key](t *Trie[V], key K) (value V, ok bool) {
	destination := find(t, key)
	if destination == nil {
		return value, false
	}
	return destination.Value()
}

// ContainsKey returns true if the key given is in the trie.
func (t *Trie[V]) ContainsKey(key string) bool {
	_, ok := tryGet(t, key)
	return ok
}

// ContainsKeyBytes is like ContainsKey for a key given as a byte slice.
func (t *Trie[V]) ContainsKeyBytes(key []byte) bool {
	_, ok := tryGet(t, key)
	return ok
}

// find returns the node for the key given or nil if no such node exists.
// Keys longer than the longest possible key length are rejected
// without walking the trie.
func find[V any, K node.Key](t *Trie[V], key K) *node.Node[V] {
	if len(key) > t.longest {
		return nil
	}
	return node.Descend(t.root, key)
}

// ContainsValueFunc returns true if a value of the trie satisfies match.
// It scans all the values of the trie.
func (t *Trie[V]) ContainsValueFunc(match func(value V) bool) bool {
	for _, value := range t.root.Descendants(nil, 0) {
		if match(value) {
			return true
		}
	}
	return false
}

// ContainsValue returns true if the value given is in the trie.
// It scans all the values of the trie.
func ContainsValue[V comparable](t *Trie[V], value V) bool {
	return t.ContainsValueFunc(func(v V) bool {
		return v == value
	})
}

// MatchLongestPrefix returns the length and value of the longest key
// of the trie which is a prefix of the query given. If no such key
// exists, length is -1 and value is the zero value.
// The empty key matches any query with length 0.
func (t *Trie[V]) MatchLongestPrefix(query string) (length int, value V) {
	return matchLongestPrefix(t, query)
}

// MatchLongestPrefixBytes is like MatchLongestPrefix for a query
// given as a byte slice.
func (t *Trie[V]) MatchLongestPrefixBytes(query []byte) (length int, value V) {
	return matchLongestPrefix(t, query)
}

func matchLongestPrefix[V any, K node.Key](t *Trie[V], query K) (length int, value V) {
	length = -1
	maxDepth := min(len(query), t.longest)
	current := t.root
	for depth := 0; ; depth++ {
		if currentValue, ok := current.Value(); ok {
			length, value = depth, currentValue
		}

		if depth == maxDepth {
			break
		}

		current = current.Child(query[depth])
		if current == nil {
			break
		}
	}
	return length, value
}

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/gotries/pkg/trie/node"
)

// maxKeyBufferSize caps the size of the key buffer leased upfront
// for enumerations, so a single pathologically long key does not
// make every enumeration lease a large buffer.
const maxKeyBufferSize = 512

// Trie is an ordered map from byte strings to values of type V,
// queryable by exact key, by prefix and by longest prefix match.
// Keys are enumerated in ascending byte order.
// A Trie is not safe for concurrent use: mutations require
// exclusive access, which is up to the caller to enforce.
type Trie[V any] struct {
	root *node.Node[V]
	// count is the exact number of keys in the trie.
	count int
	// longest is an upper bound of the length of the keys in the trie.
	// It is extended on insertion and never shrunk on removal.
	longest int
	// nodes is the number of nodes in the trie, the root excluded.
	nodes   uint32
	metrics Metrics
}

// New returns a new empty trie.
func New[V any](options ...Option) *Trie[V] {
	return NewFromRoot(node.New[V](), 0, 0, 0, options...)
}

// NewFromRoot returns a trie built around an already populated root node.
// count must be the exact number of value holding nodes, longest an upper
// bound of the depth of the value holding nodes and nodes the number of
// nodes under the root. No node without value nor children must exist
// besides the root.
func NewFromRoot[V any](root *node.Node[V], count, longest int,
	nodes uint32, options ...Option) *Trie[V] {
	settings := newSettings(options)
	if nodes > 0 {
		settings.metrics.NodesAdd(nodes)
	}
	return &Trie[V]{
		root:    root,
		count:   count,
		longest: longest,
		nodes:   nodes,
		metrics: settings.metrics,
	}
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.count
}

// LongestPossibleKeyLength returns an upper bound of the length of
// the keys in the trie. It may overestimate after removals but never
// underestimates.
func (t *Trie[V]) LongestPossibleKeyLength() int {
	return t.longest
}

// RootNode returns the root node of the trie.
func (t *Trie[V]) RootNode() *node.Node[V] {
	return t.root
}

// Clear removes all the keys from the trie.
func (t *Trie[V]) Clear() {
	t.root.UnsetValue()
	t.root.ClearChildren()
	if t.nodes > 0 {
		t.metrics.NodesSub(t.nodes)
	}
	t.nodes = 0
	t.count = 0
	t.longest = 0
}

// TrimExcess releases the unused capacity of the children
// storage of all the nodes of the trie.
func (t *Trie[V]) TrimExcess() {
	t.root.TrimExcess()
}

func (t *Trie[V]) extendLongest(keyLength int) {
	if keyLength > t.longest {
		t.longest = keyLength
	}
}

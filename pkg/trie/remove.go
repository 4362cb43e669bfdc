// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/gotries/pkg/trie/node"
)

// Remove removes the key given from the trie and returns
// true if the key was present.
func (t *Trie[V]) Remove(key string) (removed bool) {
	return remove(t, key)
}

// RemoveBytes is like Remove for a key given as a byte slice.
func (t *Trie[V]) RemoveBytes(key []byte) (removed bool) {
	return remove(t, key)
}

// remove clears the value of the node for the key and prunes the nodes
// left without value nor children. The keep point is the deepest ancestor
// of the destination which is the root, holds a value or has more than one
// child. Nodes below it on the path have a single child and no value, so
// they are all detached at once by removing the edge leaving the keep point.
func remove[V any, K node.Key](t *Trie[V], key K) (removed bool) {
	if len(key) > t.longest {
		return false
	}

	if len(key) == 0 {
		if !t.root.UnsetValue() {
			return false
		}
		t.count--
		return true
	}

	keepPoint := t.root
	keepEdge := key[0]
	keepDepth := 0
	current := t.root
	for depth := 0; depth < len(key); depth++ {
		if current.HasValue() || current.ChildrenCount() > 1 {
			keepPoint, keepEdge, keepDepth = current, key[depth], depth
		}

		current = current.Child(key[depth])
		if current == nil {
			return false
		}
	}

	if !current.UnsetValue() {
		return false
	}
	t.count--

	if current.ChildrenCount() > 0 {
		return true
	}

	keepPoint.RemoveChild(keepEdge)
	pruned := uint32(len(key) - keepDepth)
	t.nodes -= pruned
	t.metrics.NodesSub(pruned)
	return true
}

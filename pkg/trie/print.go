// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

// String returns the trie stringified through pre-order traversal.
func (t *Trie[V]) String() string {
	if t.count == 0 && t.root.ChildrenCount() == 0 {
		return "empty"
	}
	return t.root.String()
}

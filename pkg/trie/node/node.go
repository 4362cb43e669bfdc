// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/gotries/pkg/sortedlist"
)

// Key is the constraint for key segments used to descend
// or build paths in the trie. Each byte is one character.
type Key interface {
	~string | ~[]byte
}

// Node is a node of the trie. It optionally holds a value and
// has children keyed by the next character of the key.
// A node without a value is distinct from a node holding the
// zero value of V.
type Node[V any] struct {
	value    V
	hasValue bool
	children sortedlist.Map[byte, *Node[V]]
}

// New returns a new node without value nor children.
func New[V any]() *Node[V] {
	return new(Node[V])
}

// Value returns the value of the node and true, or the zero value
// and false if the node holds no value.
func (n *Node[V]) Value() (value V, ok bool) {
	return n.value, n.hasValue
}

// HasValue returns true if the node holds a value.
func (n *Node[V]) HasValue() bool {
	return n.hasValue
}

// SetValue sets the value of the node.
func (n *Node[V]) SetValue(value V) {
	n.value = value
	n.hasValue = true
}

// UnsetValue clears the value of the node and returns
// true if the node was holding a value.
func (n *Node[V]) UnsetValue() (cleared bool) {
	if !n.hasValue {
		return false
	}
	var zero V
	n.value = zero
	n.hasValue = false
	return true
}

// Child returns the child for the character given, or nil.
func (n *Node[V]) Child(c byte) *Node[V] {
	child, _ := n.children.Get(c)
	return child
}

// GetOrAddChild returns the child for the character given,
// creating it if needed. added is true if the child was created.
func (n *Node[V]) GetOrAddChild(c byte) (child *Node[V], added bool) {
	return n.children.GetOrAdd(c, New[V])
}

// RemoveChild detaches the child for the character given, with its
// whole subtree, and returns true if it existed.
func (n *Node[V]) RemoveChild(c byte) (removed bool) {
	return n.children.Remove(c)
}

// ClearChildren detaches all the children of the node.
func (n *Node[V]) ClearChildren() {
	n.children.Clear()
}

// ChildrenCount returns the number of children of the node.
func (n *Node[V]) ChildrenCount() int {
	return n.children.Len()
}

// ChildAt returns the character and child at the index given,
// children being ordered by ascending character.
func (n *Node[V]) ChildAt(index int) (c byte, child *Node[V]) {
	return n.children.KeyAt(index), n.children.ValueAt(index)
}

// ReserveChildren makes room for at least count children.
func (n *Node[V]) ReserveChildren(count int) {
	n.children.Reserve(count)
}

// Descend follows the characters of the segment from the node given
// and returns the node reached, or nil if the path does not exist.
// An empty segment returns the node itself.
func Descend[V any, K Key](n *Node[V], segment K) (destination *Node[V]) {
	destination = n
	for i := 0; i < len(segment); i++ {
		destination = destination.Child(segment[i])
		if destination == nil {
			return nil
		}
	}
	return destination
}

// GetOrAddPath follows the characters of the segment from the node given,
// creating the missing nodes, and returns the node reached together with
// the number of nodes created.
func GetOrAddPath[V any, K Key](n *Node[V], segment K) (destination *Node[V], created uint32) {
	destination = n
	for i := 0; i < len(segment); i++ {
		var added bool
		destination, added = destination.GetOrAddChild(segment[i])
		if added {
			created++
		}
	}
	return destination, created
}

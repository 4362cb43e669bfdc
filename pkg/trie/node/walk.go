// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

// frame is a node of the traversal stack together with the
// index of its next child to visit.
type frame[V any] struct {
	node *Node[V]
	next int
}

// Walk visits the node and its descendants in preorder, children
// being visited in ascending character order. The root is visited
// with depth 0 and edge 0. The walk stops as soon as visit returns
// false, in which case Walk returns false.
func (n *Node[V]) Walk(visit func(depth int, edge byte, node *Node[V]) bool) (completed bool) {
	if !visit(0, 0, n) {
		return false
	}

	stack := []frame[V]{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.node.children.Len() {
			stack = stack[:len(stack)-1]
			continue
		}

		edge := top.node.children.KeyAt(top.next)
		child := top.node.children.ValueAt(top.next)
		top.next++

		if !visit(len(stack), edge, child) {
			return false
		}

		if child.children.Len() > 0 {
			stack = append(stack, frame[V]{node: child})
		}
	}
	return true
}

// CountNodes returns the number of nodes of the subtree,
// the node itself included.
func (n *Node[V]) CountNodes() (count uint32) {
	n.Walk(func(int, byte, *Node[V]) bool {
		count++
		return true
	})
	return count
}

// TrimExcess compacts the children storage of every node of the subtree.
func (n *Node[V]) TrimExcess() {
	n.Walk(func(_ int, _ byte, node *Node[V]) bool {
		node.children.TrimExcess()
		return true
	})
}

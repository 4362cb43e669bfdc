// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"strconv"

	"github.com/qdm12/gotree"
)

func (n *Node[V]) String() string {
	return n.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
// Each child is labelled with its edge character and, if any, its value.
func (n *Node[V]) StringNode() (stringNode *gotree.Node) {
	var parents []*gotree.Node
	n.Walk(func(depth int, edge byte, current *Node[V]) bool {
		label := "Root"
		if depth > 0 {
			label = strconv.QuoteRune(rune(edge))
		}
		if current.hasValue {
			label += ": " + valueToString(current.value)
		}

		parents = parents[:depth]
		var treeNode *gotree.Node
		if depth == 0 {
			treeNode = gotree.New("%s", label)
			stringNode = treeNode
		} else {
			treeNode = parents[depth-1].Appendf("%s", label)
		}
		parents = append(parents, treeNode)
		return true
	})
	return stringNode
}

func valueToString(value any) (s string) {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	switch {
	case b == nil:
		return "nil"
	case len(b) <= 20:
		return fmt.Sprintf("%q", b)
	default:
		return fmt.Sprintf("%q...%q", b[:8], b[len(b)-8:])
	}
}

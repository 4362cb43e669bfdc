// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"iter"

	"github.com/ChainSafe/gotries/internal/pools"
)

// Descendants returns an iterator over the value holding nodes of the
// subtree rooted at the node, in ascending key order.
//
// The first prefixLength bytes of keyBuffer must already hold the key
// of the node. The key yielded for each value is a view into the key
// buffer and is only valid until the next iteration step.
// If keyBuffer is nil, keys are not materialised and nil is yielded
// as key. When the buffer is too small it is replaced by a larger one
// leased from the key buffer pool, which is returned to the pool once
// iteration ends. The buffer given is never returned to the pool.
//
// It panics if prefixLength is negative or larger than keyBuffer.
func (n *Node[V]) Descendants(keyBuffer []byte, prefixLength int) iter.Seq2[[]byte, V] {
	if prefixLength < 0 || (keyBuffer != nil && prefixLength > len(keyBuffer)) {
		panic(fmt.Sprintf("prefix length %d out of range for key buffer of length %d",
			prefixLength, len(keyBuffer)))
	}

	return func(yield func(key []byte, value V) bool) {
		buffer := keyBuffer
		var leased []byte
		defer func() {
			if leased != nil {
				pools.Put(leased)
			}
		}()

		if n.hasValue && !yield(keyView(buffer, prefixLength), n.value) {
			return
		}

		stack := []frame[V]{{node: n}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == top.node.children.Len() {
				stack = stack[:len(stack)-1]
				continue
			}

			keyLength := prefixLength + len(stack)
			if buffer != nil {
				if keyLength > len(buffer) {
					grown := pools.Grow(buffer, keyLength)
					if leased != nil {
						pools.Put(leased)
					}
					buffer, leased = grown, grown
				}
				buffer[keyLength-1] = top.node.children.KeyAt(top.next)
			}
			child := top.node.children.ValueAt(top.next)
			top.next++

			if child.hasValue && !yield(keyView(buffer, keyLength), child.value) {
				return
			}

			if child.children.Len() > 0 {
				stack = append(stack, frame[V]{node: child})
			}
		}
	}
}

func keyView(buffer []byte, length int) []byte {
	if buffer == nil {
		return nil
	}
	return buffer[:length:length]
}

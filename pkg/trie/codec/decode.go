// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/ChainSafe/gotries/pkg/trie/node"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Deserialize decodes a trie from the reader. The values of the trie
// returned are sub-slices of a single buffer. All decoding errors wrap
// ErrCorruptFormat, and no partially decoded trie is ever returned.
func Deserialize(reader io.Reader, options ...trie.Option) (t *trie.Trie[[]byte], err error) {
	r, ok := reader.(byteReader)
	if !ok {
		r = bufio.NewReader(reader)
	}

	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	decoder := &decoder{
		reader:    r,
		arena:     newArena(header.ValuePoolSizeHint),
		knownSize: header.ValuePoolSizeHint > 0,
	}

	root, err := decoder.decodeNodes()
	if err != nil {
		return nil, err
	}

	if decoder.arena.regrown {
		logger.Debugf("value arena regrew to %d bytes, fixing up %d values",
			len(decoder.arena.buffer), len(decoder.lengths))
		decoder.fixUp(root)
	}

	return trie.NewFromRoot(root, decoder.count, decoder.longest, decoder.nodes, options...), nil
}

// frame is a decoded node whose children are still to decode.
type frame struct {
	node  *node.Node[[]byte]
	next  int
	depth int
}

type decoder struct {
	reader    byteReader
	arena     *arena
	knownSize bool
	// lengths are the lengths of the non empty values in the order they
	// were decoded, recorded only if the value pool size is unknown.
	lengths []int

	count   int
	longest int
	nodes   uint32
}

// decodeNodes decodes the node stream using an explicit stack.
// Each node is decoded together with its child edges, so the children
// are created upfront and filled in as their encoding is reached.
func (d *decoder) decodeNodes() (root *node.Node[[]byte], err error) {
	root = node.New[[]byte]()
	err = d.decodeNode(root, 0)
	if err != nil {
		return nil, fmt.Errorf("decoding root node: %w", err)
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.node.ChildrenCount() {
			stack = stack[:len(stack)-1]
			continue
		}

		_, child := top.node.ChildAt(top.next)
		top.next++
		depth := top.depth + 1

		err = d.decodeNode(child, depth)
		if err != nil {
			return nil, fmt.Errorf("decoding node at depth %d: %w", depth, err)
		}

		if child.ChildrenCount() > 0 {
			stack = append(stack, frame{node: child, depth: depth})
		}
	}
	return root, nil
}

// decodeNode decodes the value and child edges of the node given.
func (d *decoder) decodeNode(n *node.Node[[]byte], depth int) (err error) {
	marker, err := binary.ReadUvarint(d.reader)
	if err != nil {
		return fmt.Errorf("%w: reading value marker: %w", ErrCorruptFormat, unexpectedEOF(err))
	}

	if marker > 0 {
		err = d.decodeValue(n, marker-1)
		if err != nil {
			return err
		}
		d.count++
		d.longest = max(d.longest, depth)
	}

	childrenCount, err := binary.ReadUvarint(d.reader)
	if err != nil {
		return fmt.Errorf("%w: reading children count: %w", ErrCorruptFormat, unexpectedEOF(err))
	}

	switch {
	case childrenCount > maxChildren:
		return fmt.Errorf("%w: %d", ErrTooManyChildren, childrenCount)
	case childrenCount == 0 && marker == 0 && depth > 0:
		return ErrDeadNode
	}

	n.ReserveChildren(int(childrenCount))
	previousEdge := -1
	for i := uint64(0); i < childrenCount; i++ {
		edge, err := binary.ReadUvarint(d.reader)
		if err != nil {
			return fmt.Errorf("%w: reading child edge: %w", ErrCorruptFormat, unexpectedEOF(err))
		}

		switch {
		case edge > maxEdge:
			return fmt.Errorf("%w: %d", ErrEdgeOutOfRange, edge)
		case int(edge) <= previousEdge:
			return fmt.Errorf("%w: %d after %d", ErrEdgesNotAscending, edge, previousEdge)
		}
		previousEdge = int(edge)

		n.GetOrAddChild(byte(edge))
		d.nodes++
	}
	return nil
}

func (d *decoder) decodeValue(n *node.Node[[]byte], length uint64) (err error) {
	if length > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLong, length)
	}

	if d.knownSize && !d.arena.fits(int(length)) {
		return fmt.Errorf("%w: %d bytes more needed with %d bytes left",
			ErrHintMismatch, length, cap(d.arena.buffer)-len(d.arena.buffer))
	}

	value, err := d.arena.readFrom(d.reader, int(length))
	if err != nil {
		return fmt.Errorf("%w: reading value: %w", ErrCorruptFormat, unexpectedEOF(err))
	}
	n.SetValue(value)

	if !d.knownSize && length > 0 {
		d.lengths = append(d.lengths, int(length))
	}
	return nil
}

// fixUp points all the non empty values into the final arena buffer,
// walking the nodes in the same preorder they were decoded in.
func (d *decoder) fixUp(root *node.Node[[]byte]) {
	offset := 0
	next := 0
	root.Walk(func(_ int, _ byte, n *node.Node[[]byte]) bool {
		value, ok := n.Value()
		if !ok || len(value) == 0 {
			return true
		}

		length := d.lengths[next]
		next++
		n.SetValue(d.arena.view(offset, length))
		offset += length
		return true
	})
}

// unexpectedEOF converts io.EOF to io.ErrUnexpectedEOF, since the
// stream always ends after the last node has been decoded.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

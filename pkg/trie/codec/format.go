// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The encoding starts with a fixed size header followed by the
// nodes of the trie in preorder:
//
//	offset 0:  magic, uint32
//	offset 4:  version, uint32
//	offset 8:  reserved, written as 0
//	offset 12: value pool size hint, int32, 0 if unknown
//	offset 16: reserved, written as 0
//	offset 20: node stream
//
// All header integers are little endian. Each node is encoded as:
//   - a value marker varint: 0 for no value, 1 for an empty
//     value, n+1 for a value of length n
//   - the n value bytes, if any
//   - the children count as varint
//   - the child edges in ascending order, each as varint
//   - the encoding of each child, in the same order
//
// Varints are unsigned LEB128, as encoded by binary.PutUvarint.
const (
	Magic   uint32 = 0x54726948
	Version uint32 = 1

	headerSize = 20
	hintOffset = 12

	maxChildren      = 256
	maxEdge          = 255
	defaultArenaSize = 256
)

// Header is the fixed size header of an encoded trie.
type Header struct {
	Magic   uint32
	Version uint32
	// ValuePoolSizeHint is the total length of all the values
	// of the trie, or 0 if unknown.
	ValuePoolSizeHint int32
}

func (h Header) encode() (b []byte) {
	b = make([]byte, headerSize)
	binary.LittleEndian.PutUint32(b[0:], h.Magic)
	binary.LittleEndian.PutUint32(b[4:], h.Version)
	binary.LittleEndian.PutUint32(b[hintOffset:], uint32(h.ValuePoolSizeHint))
	return b
}

// ReadHeader reads and validates the header of an encoded trie.
func ReadHeader(reader io.Reader) (header Header, err error) {
	b := make([]byte, headerSize)
	_, err = io.ReadFull(reader, b)
	if err != nil {
		return header, fmt.Errorf("%w: %w", ErrReadHeader, err)
	}

	header = Header{
		Magic:             binary.LittleEndian.Uint32(b[0:]),
		Version:           binary.LittleEndian.Uint32(b[4:]),
		ValuePoolSizeHint: int32(binary.LittleEndian.Uint32(b[hintOffset:])),
	}

	switch {
	case header.Magic != Magic:
		return header, fmt.Errorf("%w: expected 0x%08x but got 0x%08x",
			ErrMagicMismatch, Magic, header.Magic)
	case header.Version != Version:
		return header, fmt.Errorf("%w: expected %d but got %d",
			ErrVersionMismatch, Version, header.Version)
	case header.ValuePoolSizeHint < 0:
		return header, fmt.Errorf("%w: %d", ErrNegativeHint, header.ValuePoolSizeHint)
	}
	return header, nil
}

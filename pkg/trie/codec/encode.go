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

// Serialize encodes the trie given to the writer.
// If the writer can seek, the value pool size hint is patched in
// the header once all the nodes are written, so decoding can size
// its value arena exactly. Otherwise the hint is left to 0.
// On error, the content written is undefined.
func Serialize(writer io.Writer, t *trie.Trie[[]byte]) (err error) {
	seeker, start, seekable := seekableStart(writer)

	bufferedWriter := bufio.NewWriter(writer)
	header := Header{Magic: Magic, Version: Version}
	_, err = bufferedWriter.Write(header.encode())
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	encoder := &encoder{writer: bufferedWriter}
	t.RootNode().Walk(func(_ int, _ byte, n *node.Node[[]byte]) bool {
		err = encoder.encodeNode(n)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("writing nodes: %w", err)
	}

	err = bufferedWriter.Flush()
	if err != nil {
		return fmt.Errorf("flushing: %w", err)
	}

	if !seekable {
		logger.Debugf("writer is not seekable, leaving value pool size hint to 0 for %d bytes of values",
			encoder.valuesLength)
		return nil
	}

	if encoder.valuesLength > math.MaxInt32 {
		logger.Debugf("values length %d overflows the value pool size hint, leaving it to 0",
			encoder.valuesLength)
		return nil
	}

	err = patchHint(seeker, start, int32(encoder.valuesLength))
	if err != nil {
		return fmt.Errorf("patching value pool size hint: %w", err)
	}
	return nil
}

// seekableStart returns the writer as a write seeker, its current
// position and true if it can seek. Writers such as pipes implement
// Seek but fail when it is called.
func seekableStart(writer io.Writer) (seeker io.WriteSeeker, start int64, ok bool) {
	seeker, ok = writer.(io.WriteSeeker)
	if !ok {
		return nil, 0, false
	}

	start, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, 0, false
	}
	return seeker, start, true
}

func patchHint(seeker io.WriteSeeker, start int64, hint int32) (err error) {
	end, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("getting end position: %w", err)
	}

	_, err = seeker.Seek(start+hintOffset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("seeking to hint: %w", err)
	}

	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(hint))
	_, err = seeker.Write(b)
	if err != nil {
		return fmt.Errorf("writing hint: %w", err)
	}

	_, err = seeker.Seek(end, io.SeekStart)
	if err != nil {
		return fmt.Errorf("seeking back to end: %w", err)
	}
	return nil
}

type encoder struct {
	writer       *bufio.Writer
	varint       [binary.MaxVarintLen64]byte
	valuesLength int64
}

// encodeNode writes the value and child edges of the node.
// Its children are written after it by the preorder walk.
func (e *encoder) encodeNode(n *node.Node[[]byte]) (err error) {
	value, hasValue := n.Value()
	var marker uint64
	if hasValue {
		marker = uint64(len(value)) + 1
	}

	err = e.writeUvarint(marker)
	if err != nil {
		return fmt.Errorf("writing value marker: %w", err)
	}

	if len(value) > 0 {
		_, err = e.writer.Write(value)
		if err != nil {
			return fmt.Errorf("writing value: %w", err)
		}
		e.valuesLength += int64(len(value))
	}

	childrenCount := n.ChildrenCount()
	err = e.writeUvarint(uint64(childrenCount))
	if err != nil {
		return fmt.Errorf("writing children count: %w", err)
	}

	for i := 0; i < childrenCount; i++ {
		edge, _ := n.ChildAt(i)
		err = e.writeUvarint(uint64(edge))
		if err != nil {
			return fmt.Errorf("writing child edge: %w", err)
		}
	}
	return nil
}

func (e *encoder) writeUvarint(x uint64) (err error) {
	n := binary.PutUvarint(e.varint[:], x)
	_, err = e.writer.Write(e.varint[:n])
	return err
}

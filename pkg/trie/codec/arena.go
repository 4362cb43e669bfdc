// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import "io"

// arena is a single growable buffer values are read into.
// Values are handed out as capped sub-slices of the buffer, so they
// share its memory as long as the buffer is not reallocated.
type arena struct {
	buffer []byte
	// regrown is true if the buffer was reallocated, in which case
	// values handed out before no longer point into the buffer.
	regrown bool
}

func newArena(sizeHint int32) *arena {
	size := int(sizeHint)
	if size == 0 {
		size = defaultArenaSize
	}
	return &arena{buffer: make([]byte, 0, size)}
}

// fits returns true if length more bytes fit without reallocating.
func (a *arena) fits(length int) bool {
	return cap(a.buffer)-len(a.buffer) >= length
}

// readFrom reads length bytes from the reader into the arena and
// returns the sub-slice holding them. An empty non nil slice is
// returned for a zero length.
func (a *arena) readFrom(reader io.Reader, length int) (value []byte, err error) {
	if length == 0 {
		return []byte{}, nil
	}

	start := len(a.buffer)
	if !a.fits(length) {
		grown := make([]byte, start, max(2*cap(a.buffer), start+length))
		copy(grown, a.buffer)
		a.buffer = grown
		a.regrown = true
	}

	end := start + length
	a.buffer = a.buffer[:end]
	_, err = io.ReadFull(reader, a.buffer[start:end])
	if err != nil {
		return nil, err
	}
	return a.buffer[start:end:end], nil
}

// view returns the sub-slice of the arena of the given
// offset and length.
func (a *arena) view(offset, length int) []byte {
	end := offset + length
	return a.buffer[offset:end:end]
}

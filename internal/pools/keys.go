// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pools

import (
	pool "github.com/libp2p/go-buffer-pool"
)

// KeyBuffers is the pool key buffers are leased from
// during trie enumeration.
var KeyBuffers = new(pool.BufferPool)

// Lease is a key buffer leased from KeyBuffers.
// It must be released exactly once, on every exit path.
type Lease struct {
	buffer []byte
}

// NewLease leases a buffer of at least size bytes.
// The whole capacity of the pooled buffer is made available.
func NewLease(size int) *Lease {
	buffer := KeyBuffers.Get(size)
	return &Lease{buffer: buffer[:cap(buffer)]}
}

// Bytes returns the leased buffer. It must not be used
// after Release has been called.
func (l *Lease) Bytes() []byte {
	return l.buffer
}

// Release returns the buffer to the pool. Calling Release
// more than once is a no-op.
func (l *Lease) Release() {
	if l.buffer == nil {
		return
	}
	KeyBuffers.Put(l.buffer)
	l.buffer = nil
}

// Grow leases a buffer of twice the length of the buffer given,
// or minSize if that is larger, and copies the content of the
// buffer given into it. The buffer given is not released.
func Grow(buffer []byte, minSize int) (grown []byte) {
	size := max(2*len(buffer), minSize)
	grown = KeyBuffers.Get(size)
	grown = grown[:cap(grown)]
	copy(grown, buffer)
	return grown
}

// Put returns a buffer obtained from Grow to the pool.
func Put(buffer []byte) {
	KeyBuffers.Put(buffer)
}

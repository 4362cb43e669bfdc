// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/ChainSafe/gotries/internal/textutil"
	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/stretchr/testify/require"
)

// seekBuffer is an in memory io.WriteSeeker.
type seekBuffer struct {
	data     []byte
	position int64
}

func (b *seekBuffer) Write(p []byte) (n int, err error) {
	end := int(b.position) + len(p)
	if end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	copy(b.data[b.position:], p)
	b.position = int64(end)
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (position int64, err error) {
	switch whence {
	case io.SeekStart:
		position = offset
	case io.SeekCurrent:
		position = b.position + offset
	case io.SeekEnd:
		position = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if position < 0 {
		return 0, errors.New("negative position")
	}
	b.position = position
	return position, nil
}

var errSeekNotSupported = errors.New("seek not supported")

// unseekableWriter implements io.Seeker but fails to seek,
// as pipes and terminals do.
type unseekableWriter struct {
	io.Writer
}

func (unseekableWriter) Seek(int64, int) (int64, error) {
	return 0, errSeekNotSupported
}

// errWriter fails writing once limit bytes have been written.
type errWriter struct {
	limit   int
	written int
}

var errWrite = errors.New("test write error")

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.written+len(p) > w.limit {
		return 0, errWrite
	}
	w.written += len(p)
	return len(p), nil
}

func randomWords(count int, seed int64) (words []string) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzéü"
	letters := []rune(alphabet)
	generator := rand.New(rand.NewSource(seed))
	seen := make(map[string]struct{}, count)
	for len(words) < count {
		word := make([]rune, 1+generator.Intn(14))
		for i := range word {
			word[i] = letters[generator.Intn(len(letters))]
		}
		if _, ok := seen[string(word)]; ok {
			continue
		}
		seen[string(word)] = struct{}{}
		words = append(words, string(word))
	}
	return words
}

// newReversedWordsTrie returns a trie mapping each word
// to the word reversed.
func newReversedWordsTrie(t testing.TB, words []string) *trie.Trie[[]byte] {
	t.Helper()
	tr := trie.New[[]byte]()
	for _, word := range words {
		err := tr.Add(word, []byte(textutil.Reverse(word)))
		require.NoError(t, err)
	}
	return tr
}

type entry struct {
	key   string
	value []byte
}

func entriesOf(tr *trie.Trie[[]byte]) (entries []entry) {
	for key, value := range tr.All() {
		entries = append(entries, entry{key: string(key), value: value})
	}
	return entries
}

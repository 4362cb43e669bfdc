// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/ChainSafe/gotries/pkg/trie/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTrie returns a trie holding the given keys,
// each key having its index in keys as value.
func newTestTrie(t testing.TB, keys ...string) *Trie[int] {
	t.Helper()
	trie := New[int]()
	for i, key := range keys {
		err := trie.Add(key, i)
		require.NoError(t, err)
	}
	return trie
}

func collectKeys[V any](trie *Trie[V]) (keys []string) {
	for key := range trie.Keys() {
		keys = append(keys, key)
	}
	return keys
}

func collectPrefix[V any](trie *Trie[V], prefix string) (entries []Entry[V]) {
	for key, value := range trie.EntriesWithPrefix(prefix) {
		entries = append(entries, Entry[V]{Key: string(key), Value: value})
	}
	return entries
}

// assertInvariants checks no node other than the root is left without
// value nor children, and the cached counters match the node tree.
func assertInvariants[V any](t *testing.T, trie *Trie[V]) {
	t.Helper()

	values := 0
	deepest := 0
	trie.root.Walk(func(depth int, _ byte, n *node.Node[V]) bool {
		if n.HasValue() {
			values++
			deepest = max(deepest, depth)
		} else if depth > 0 {
			assert.NotZerof(t, n.ChildrenCount(), "dead node at depth %d", depth)
		}
		return true
	})

	assert.Equal(t, values, trie.Len())
	assert.GreaterOrEqual(t, trie.LongestPossibleKeyLength(), deepest)
	assert.Equal(t, trie.nodes+1, trie.root.CountNodes())
}

// sortedEntries returns the entries of the reference map
// in ascending key order.
func sortedEntries(reference map[string]int) (entries []Entry[int]) {
	entries = make([]Entry[int], 0, len(reference))
	for key, value := range reference {
		entries = append(entries, Entry[int]{Key: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func filterPrefix(entries []Entry[int], prefix string) (filtered []Entry[int]) {
	for _, entry := range entries {
		if strings.HasPrefix(entry.Key, prefix) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func randomKey(generator *rand.Rand, alphabet string, maxLength int) string {
	key := make([]byte, generator.Intn(maxLength+1))
	for i := range key {
		key[i] = alphabet[generator.Intn(len(alphabet))]
	}
	return string(key)
}

// words returns count distinct pseudo random lowercase words.
func words(count int) []string {
	generator := rand.New(rand.NewSource(int64(count)))
	seen := make(map[string]struct{}, count)
	result := make([]string, 0, count)
	for len(result) < count {
		word := randomKey(generator, "abcdefghijklmnopqrstuvwxyz", 12)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		result = append(result, word)
	}
	return result
}

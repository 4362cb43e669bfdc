// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Trie_scenario(t *testing.T) {
	t.Parallel()

	trie := New[int]()
	require.NoError(t, trie.Add("a", 1))
	require.NoError(t, trie.Add("ab", 2))
	require.NoError(t, trie.Add("b", 3))

	length, value := trie.MatchLongestPrefix("abc")
	assert.Equal(t, 2, length)
	assert.Equal(t, 2, value)

	expected := []Entry[int]{
		{Key: "a", Value: 1},
		{Key: "ab", Value: 2},
	}
	assert.Empty(t, cmp.Diff(expected, collectPrefix(trie, "a")))

	assert.True(t, trie.Remove("a"))
	assert.False(t, trie.ContainsKey("a"))
	assert.True(t, trie.ContainsKey("ab"))
	assert.Equal(t, 2, trie.Len())
	assertInvariants(t, trie)
}

func Test_Trie_scenario_emptyKey(t *testing.T) {
	t.Parallel()

	trie := New[string]()
	require.NoError(t, trie.Add("", "x"))

	length, value := trie.MatchLongestPrefix("zzz")

	assert.Equal(t, 0, length)
	assert.Equal(t, "x", value)
}

func Test_Trie_scenario_emptyValue(t *testing.T) {
	t.Parallel()

	trie := New[[]byte]()
	require.NoError(t, trie.Add("empty", []byte{}))
	require.NoError(t, trie.Add("emptyish", []byte("v")))

	value, ok := trie.TryGet("empty")
	assert.True(t, ok)
	assert.NotNil(t, value)
	assert.Empty(t, value)

	_, ok = trie.TryGet("emptyi")
	assert.False(t, ok)
}

// Test_Trie_reference runs random operations against both
// a trie and a Go map, comparing their observable state.
func Test_Trie_reference(t *testing.T) {
	t.Parallel()

	const alphabet = "abc"
	const maxKeyLength = 6
	generator := rand.New(rand.NewSource(42))
	trie := New[int]()
	reference := make(map[string]int)

	for i := 0; i < 20000; i++ {
		key := randomKey(generator, alphabet, maxKeyLength)
		_, exists := reference[key]

		switch generator.Intn(5) {
		case 0:
			err := trie.Add(key, i)
			if exists {
				require.ErrorIs(t, err, ErrDuplicateKey)
			} else {
				require.NoError(t, err)
				reference[key] = i
			}
		case 1:
			trie.Set(key, i)
			reference[key] = i
		case 2:
			removed := trie.Remove(key)
			require.Equal(t, exists, removed, "remove %q", key)
			delete(reference, key)
		case 3:
			value, err := trie.Get(key)
			if exists {
				require.NoError(t, err)
				require.Equal(t, reference[key], value)
			} else {
				require.ErrorIs(t, err, ErrKeyNotFound)
			}
		case 4:
			actual, added := trie.GetOrAdd(key, i)
			require.Equal(t, !exists, added)
			if !exists {
				reference[key] = i
			}
			require.Equal(t, reference[key], actual)
		}

		require.Equal(t, len(reference), trie.Len())
	}

	assertInvariants(t, trie)

	all := sortedEntries(reference)
	assert.Empty(t, cmp.Diff(all, trie.Entries()))
	assert.LessOrEqual(t, trie.LongestPossibleKeyLength(), maxKeyLength)

	keys := make([]string, 0, len(all))
	for _, entry := range all {
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, keys, collectKeys(trie))

	for i := 0; i < 200; i++ {
		query := randomKey(generator, alphabet, maxKeyLength+2)

		assert.Empty(t, cmp.Diff(filterPrefix(all, query), collectPrefix(trie, query)),
			"prefix %q", query)

		expectedLength, expectedValue := -1, 0
		for _, entry := range all {
			if strings.HasPrefix(query, entry.Key) && len(entry.Key) > expectedLength {
				expectedLength, expectedValue = len(entry.Key), entry.Value
			}
		}
		length, value := trie.MatchLongestPrefix(query)
		assert.Equal(t, expectedLength, length, "query %q", query)
		assert.Equal(t, expectedValue, value, "query %q", query)
	}

	for key := range reference {
		require.True(t, trie.Remove(key))
	}
	assert.Equal(t, 0, trie.Len())
	assert.Equal(t, uint32(0), trie.nodes)
	assertInvariants(t, trie)
}

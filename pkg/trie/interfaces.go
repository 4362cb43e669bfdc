// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"iter"

	"github.com/ChainSafe/gotries/pkg/trie/node"
)

type KVStore[V any] interface {
	Add(key string, value V) error
	Set(key string, value V)
	Get(key string) (V, error)
	TryGet(key string) (V, bool)
	GetOrAdd(key string, value V) (actual V, added bool)
	ContainsKey(key string) bool
	Remove(key string) (removed bool)
	Clear()
	Len() int
}

type PrefixTrie[V any] interface {
	EntriesWithPrefix(prefix string) iter.Seq2[[]byte, V]
	MatchLongestPrefix(query string) (length int, value V)
	LongestPossibleKeyLength() int
}

type TrieIterator[V any] interface {
	All() iter.Seq2[[]byte, V]
	Keys() iter.Seq[string]
	Values() iter.Seq[V]
	Entries() []Entry[V]
	CopyTo(destination []Entry[V], index int) error
}

type Printable interface {
	String() string
}

// Map is the interface implemented by Trie.
type Map[V any] interface {
	KVStore[V]
	PrefixTrie[V]
	TrieIterator[V]
	Printable

	ContainsValueFunc(match func(value V) bool) bool
	TrimExcess()
	RootNode() *node.Node[V]
}

var _ Map[[]byte] = (*Trie[[]byte])(nil)

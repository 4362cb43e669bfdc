// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

// Metrics is the metrics interface to use for the trie(s).
type Metrics interface {
	NodesAdd(n uint32)
	NodesSub(n uint32)
}

type noopMetrics struct{}

func (noopMetrics) NodesAdd(uint32) {}
func (noopMetrics) NodesSub(uint32) {}

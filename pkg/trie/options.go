// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

// Option is an option to configure a trie.
type Option func(s *settings)

type settings struct {
	metrics Metrics
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	return s
}

// WithMetrics sets the metrics the trie reports its node count to.
func WithMetrics(metrics Metrics) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}

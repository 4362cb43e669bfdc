// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import "errors"

var (
	ErrDuplicateKey        = errors.New("key already exists")
	ErrKeyNotFound         = errors.New("key not found")
	ErrNilDestination      = errors.New("destination is nil")
	ErrNegativeIndex       = errors.New("index is negative")
	ErrDestinationTooSmall = errors.New("destination is too small")
)

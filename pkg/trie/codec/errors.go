// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"errors"
	"fmt"
)

// ErrCorruptFormat is wrapped by all the errors returned
// when decoding malformed or truncated data.
var ErrCorruptFormat = errors.New("corrupt trie format")

var (
	ErrMagicMismatch     = fmt.Errorf("%w: magic mismatch", ErrCorruptFormat)
	ErrVersionMismatch   = fmt.Errorf("%w: version mismatch", ErrCorruptFormat)
	ErrNegativeHint      = fmt.Errorf("%w: negative value pool size hint", ErrCorruptFormat)
	ErrHintMismatch      = fmt.Errorf("%w: value pool size hint exceeded", ErrCorruptFormat)
	ErrValueTooLong      = fmt.Errorf("%w: value too long", ErrCorruptFormat)
	ErrTooManyChildren   = fmt.Errorf("%w: too many children", ErrCorruptFormat)
	ErrEdgeOutOfRange    = fmt.Errorf("%w: child edge out of range", ErrCorruptFormat)
	ErrEdgesNotAscending = fmt.Errorf("%w: child edges not strictly ascending", ErrCorruptFormat)
	ErrDeadNode          = fmt.Errorf("%w: node without value nor children", ErrCorruptFormat)
	ErrReadHeader        = fmt.Errorf("%w: cannot read header", ErrCorruptFormat)
)

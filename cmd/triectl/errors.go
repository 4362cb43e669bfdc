// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "errors"

var (
	ErrArgumentsCount    = errors.New("wrong number of arguments")
	ErrFlagMissing       = errors.New("required flag missing")
	ErrValuesModeUnknown = errors.New("values mode not recognised")
)

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"github.com/ChainSafe/gotries/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "codec"))

// SetLogLevel sets the level of the codec logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger of the global logger.
// Package level loggers are created this way so they can all
// be patched at once with Patch.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global logger and all its child loggers.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
)

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole logs plain text lines.
	FormatConsole Format = iota
	// FormatColoured logs text lines with a coloured level.
	FormatColoured
)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatColoured:
		return "coloured"
	default:
		return "unknown"
	}
}

var ErrFormatNotRecognised = errors.New("format is not recognised")

// ParseFormat parses a format from its string representation.
func ParseFormat(s string) (format Format, err error) {
	switch s {
	case FormatConsole.String():
		return FormatConsole, nil
	case FormatColoured.String():
		return FormatColoured, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrFormatNotRecognised, s)
}

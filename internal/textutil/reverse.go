// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package textutil

import (
	"golang.org/x/text/unicode/norm"
)

// Reverse returns the string given with its text segments in reverse
// order. A segment is a starter character followed by its combining
// characters, so accents stay attached to the letter they modify.
// The bytes of each segment are left unchanged.
func Reverse(s string) string {
	reversed := make([]byte, len(s))
	end := len(reversed)
	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 {
			n = len(s)
		}
		end -= n
		copy(reversed[end:], s[:n])
		s = s[n:]
	}
	return string(reversed)
}

// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var wordsPath = filepath.Join("testdata", "words.txt")

// runApp runs the command line with the arguments given
// and returns what it printed.
func runApp(t *testing.T, args ...string) (output string, err error) {
	t.Helper()

	buffer := bytes.NewBuffer(nil)
	app := newApp(buffer)
	err = app.Run(append([]string{"triectl"}, args...))
	return buffer.String(), err
}

// buildDump builds a dump of the test word list with the global
// flags and build flags given and returns the dump path.
func buildDump(t *testing.T, globalFlags []string, buildFlags ...string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "words.trie")
	args := append([]string{}, globalFlags...)
	args = append(args, "build", "--words", wordsPath, "--output", path)
	args = append(args, buildFlags...)

	output, err := runApp(t, args...)
	require.NoError(t, err)
	require.Contains(t, output, "9 entries written to "+path+"\n")
	return path
}

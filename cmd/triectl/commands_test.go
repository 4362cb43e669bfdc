// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/gotries/config"
	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/ChainSafe/gotries/pkg/trie/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_queries(t *testing.T) {
	t.Parallel()

	plain := buildDump(t, nil)
	compressed := buildDump(t, []string{"--gzip"})
	indices := buildDump(t, nil, "--values", "index")

	testCases := map[string]struct {
		args   []string
		output string
	}{
		"get": {
			args:   []string{"get", plain, "alpha"},
			output: "ahpla\n",
		},
		"get accented": {
			args:   []string{"get", plain, "café"},
			output: "éfac\n",
		},
		"get compressed": {
			args:   []string{"get", compressed, "alphabet"},
			output: "tebahpla\n",
		},
		"get index": {
			args:   []string{"get", indices, "naïve"},
			output: "9\n",
		},
		"get index of duplicate word": {
			args:   []string{"get", indices, "alpha"},
			output: "0\n",
		},
		"prefix": {
			args:   []string{"prefix", plain, "alph"},
			output: "alpha\tahpla\nalphabet\ttebahpla\n",
		},
		"prefix without match": {
			args: []string{"prefix", compressed, "omega"},
		},
		"prefix all": {
			args: []string{"prefix", indices},
			output: "alpha\t0\nalphabet\t6\nbeta\t1\ncafé\t8\ndelta\t3\n" +
				"epsilon\t4\ngamma\t2\nnaïve\t9\nzeta\t5\n",
		},
		"match": {
			args:   []string{"match", plain, "alphabetical"},
			output: "alphabet\ttebahpla\n",
		},
		"match shorter": {
			args:   []string{"match", compressed, "alphanumeric"},
			output: "alpha\tahpla\n",
		},
		"no match": {
			args:   []string{"match", plain, "alp"},
			output: "no match\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			output, err := runApp(t, testCase.args...)

			require.NoError(t, err)
			assert.Equal(t, testCase.output, output)
		})
	}
}

func Test_build_gzip(t *testing.T) {
	t.Parallel()

	path := buildDump(t, []string{"--gzip"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, gzipMagic[:], data[:2])
}

func Test_inspect(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		globalFlags []string
		hint        string
	}{
		"seekable file": {
			hint: "value pool size hint: 49\n",
		},
		"gzip compressed": {
			globalFlags: []string{"--gzip"},
			hint:        "value pool size hint: 0\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := buildDump(t, testCase.globalFlags)

			output, err := runApp(t, "inspect", path)

			require.NoError(t, err)
			assert.Contains(t, output, "format version: 1\n")
			assert.Contains(t, output, testCase.hint)
			assert.Contains(t, output, "entries: 9\n")
			assert.Contains(t, output, "longest key: 8\n")
			assert.Regexp(t, "xxhash64: [0-9a-f]{16}\n", output)
		})
	}
}

func Test_tree(t *testing.T) {
	t.Parallel()

	path := buildDump(t, nil)

	output, err := runApp(t, "tree", path)

	require.NoError(t, err)
	assert.Contains(t, output, "Root")
	assert.Contains(t, output, `'z'`)
	assert.Contains(t, output, `'a': "ahpla"`)
}

func Test_metrics(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.trie")

	output, err := runApp(t, "--metrics", "build", "--words", wordsPath, "--output", path)

	require.NoError(t, err)
	assert.Contains(t, output, "# TYPE gotries_trie_nodes_total gauge\n")
	assert.Regexp(t, "\ngotries_trie_nodes_total [1-9][0-9]*\n", output)

	output, err = runApp(t, "get", path, "zeta")
	require.NoError(t, err)
	assert.NotContains(t, output, "gotries_trie_nodes_total")
}

func Test_config(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	output, err := runApp(t, "--log", "dbug", "--gzip", "config", path)

	require.NoError(t, err)
	assert.Equal(t, "configuration written to "+path+"\n", output)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dbug", cfg.Global.LogLvl)
	assert.True(t, cfg.Codec.Gzip)

	dump := buildDump(t, []string{"--config", path})
	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Equal(t, gzipMagic[:], data[:2])
}

func Test_errors(t *testing.T) {
	t.Parallel()

	dump := buildDump(t, nil)
	corrupt := filepath.Join(t.TempDir(), "corrupt.trie")
	err := os.WriteFile(corrupt, make([]byte, 20), 0600)
	require.NoError(t, err)

	testCases := map[string]struct {
		args       []string
		errWrapped error
		errMessage string
	}{
		"missing key": {
			args:       []string{"get", dump, "omega"},
			errWrapped: trie.ErrKeyNotFound,
			errMessage: `key not found: "omega"`,
		},
		"missing argument": {
			args:       []string{"get", dump},
			errWrapped: ErrArgumentsCount,
			errMessage: "wrong number of arguments: expected 2 but got 1",
		},
		"too many arguments": {
			args:       []string{"prefix", dump, "a", "b"},
			errWrapped: ErrArgumentsCount,
			errMessage: "wrong number of arguments: expected between 1 and 2 but got 3",
		},
		"missing words flag": {
			args:       []string{"build", "--output", "out.trie"},
			errWrapped: ErrFlagMissing,
			errMessage: "required flag missing: --words",
		},
		"unknown values mode": {
			args: []string{"build", "--words", wordsPath,
				"--output", filepath.Join(t.TempDir(), "out.trie"), "--values", "upper"},
			errWrapped: ErrValuesModeUnknown,
			errMessage: "values mode not recognised: upper",
		},
		"missing dump": {
			args:       []string{"tree", filepath.Join(t.TempDir(), "missing.trie")},
			errWrapped: os.ErrNotExist,
		},
		"corrupt dump": {
			args:       []string{"inspect", corrupt},
			errWrapped: codec.ErrCorruptFormat,
		},
		"invalid log level": {
			args:       []string{"--log", "loud", "tree", dump},
			errMessage: "validating configuration",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := runApp(t, testCase.args...)

			require.Error(t, err)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			if testCase.errMessage != "" {
				assert.ErrorContains(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_buildTrie(t *testing.T) {
	t.Parallel()

	words := []string{"ab", "cd", "ab", "e"}

	tr, err := buildTrie(words, valuesReversed)

	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
	value, err := tr.Get("cd")
	require.NoError(t, err)
	assert.Equal(t, []byte("dc"), value)
	assert.Equal(t, len(value), cap(value))

	tr, err = buildTrie(words, valuesIndex)
	require.NoError(t, err)
	value, err = tr.Get("e")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), value)

	tr, err = buildTrie(words, "upper")
	assert.ErrorIs(t, err, ErrValuesModeUnknown)
	assert.Nil(t, tr)
}

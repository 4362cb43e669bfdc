// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/ChainSafe/gotries/config"
	"github.com/ChainSafe/gotries/internal/textutil"
	"github.com/ChainSafe/gotries/internal/wordlist"
	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/ChainSafe/gotries/pkg/trie/codec"
	"github.com/OneOfOne/xxhash"
	"github.com/urfave/cli"
)

const (
	valuesReversed = "reversed"
	valuesIndex    = "index"
)

func (t *triectl) build(ctx *cli.Context) (err error) {
	wordsPath := ctx.String(WordsFlag.Name)
	if wordsPath == "" {
		return fmt.Errorf("%w: --%s", ErrFlagMissing, WordsFlag.Name)
	}
	output := ctx.String(OutputFlag.Name)
	if output == "" {
		return fmt.Errorf("%w: --%s", ErrFlagMissing, OutputFlag.Name)
	}

	words, err := wordlist.LoadFile(wordsPath)
	if err != nil {
		return fmt.Errorf("loading word list: %w", err)
	}

	tr, err := buildTrie(words, ctx.String(ValuesFlag.Name), t.options...)
	if err != nil {
		return err
	}
	logger.Infof("built trie with %d entries from %d words", tr.Len(), len(words))

	err = t.writeDump(output, tr)
	if err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}

	_, err = fmt.Fprintf(t.writer, "%d entries written to %s\n", tr.Len(), output)
	return err
}

// buildTrie adds each distinct word to a new trie. Reversed word values
// are views into a single buffer holding all the reversed words.
func buildTrie(words []string, valuesMode string, options ...trie.Option) (
	tr *trie.Trie[[]byte], err error) {
	var valueOf func(index int, word string) []byte
	switch valuesMode {
	case valuesReversed:
		totalLength := 0
		for _, word := range words {
			totalLength += len(word)
		}
		pool := make([]byte, 0, totalLength)
		valueOf = func(_ int, word string) []byte {
			start := len(pool)
			pool = append(pool, textutil.Reverse(word)...)
			return pool[start:len(pool):len(pool)]
		}
	case valuesIndex:
		valueOf = func(index int, _ string) []byte {
			return []byte(strconv.Itoa(index))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrValuesModeUnknown, valuesMode)
	}

	tr = trie.New[[]byte](options...)
	for i, word := range words {
		if tr.ContainsKey(word) {
			logger.Debugf("skipping duplicate word %q", word)
			continue
		}
		tr.Set(word, valueOf(i, word))
	}
	return tr, nil
}

func (t *triectl) get(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 2, 2)
	if err != nil {
		return err
	}

	tr, err := t.loadDump(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	value, err := tr.Get(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(t.writer, "%s\n", value)
	return err
}

func (t *triectl) prefix(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 1, 2)
	if err != nil {
		return err
	}

	tr, err := t.loadDump(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	for key, value := range tr.EntriesWithPrefix(ctx.Args().Get(1)) {
		_, err = fmt.Fprintf(t.writer, "%s\t%s\n", key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *triectl) match(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 2, 2)
	if err != nil {
		return err
	}

	tr, err := t.loadDump(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	query := ctx.Args().Get(1)
	length, value := tr.MatchLongestPrefix(query)
	if length == -1 {
		_, err = fmt.Fprintln(t.writer, "no match")
		return err
	}

	_, err = fmt.Fprintf(t.writer, "%s\t%s\n", query[:length], value)
	return err
}

func (t *triectl) inspect(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 1, 1)
	if err != nil {
		return err
	}
	path := ctx.Args().Get(0)

	reader, file, err := openDump(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading dump %s: %w", path, err)
	}

	header, err := codec.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return err
	}

	tr, err := codec.Deserialize(bytes.NewReader(data), t.options...)
	if err != nil {
		return fmt.Errorf("loading dump %s: %w", path, err)
	}

	_, err = fmt.Fprintf(t.writer,
		"format version: %d\nvalue pool size hint: %d\nentries: %d\n"+
			"longest key: %d\nnodes: %d\nsize: %d bytes\nxxhash64: %016x\n",
		header.Version, header.ValuePoolSizeHint, tr.Len(),
		tr.LongestPossibleKeyLength(), tr.RootNode().CountNodes(),
		len(data), xxhash.Checksum64(data))
	return err
}

func (t *triectl) tree(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 1, 1)
	if err != nil {
		return err
	}

	tr, err := t.loadDump(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(t.writer, tr.String())
	return err
}

func (t *triectl) exportConfig(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 1, 1)
	if err != nil {
		return err
	}
	path := ctx.Args().Get(0)

	err = config.Export(t.config, path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(t.writer, "configuration written to %s\n", path)
	return err
}

func checkArgumentsCount(ctx *cli.Context, minimum, maximum int) error {
	count := ctx.NArg()
	if count >= minimum && count <= maximum {
		return nil
	}
	if minimum == maximum {
		return fmt.Errorf("%w: expected %d but got %d", ErrArgumentsCount, minimum, count)
	}
	return fmt.Errorf("%w: expected between %d and %d but got %d",
		ErrArgumentsCount, minimum, maximum, count)
}

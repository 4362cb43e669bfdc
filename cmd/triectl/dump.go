// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/ChainSafe/gotries/pkg/trie/codec"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// writeDump serializes the trie to a file at path, compressed with
// gzip if configured. A compressed dump leaves the value pool size
// hint unknown since the gzip stream cannot be seeked back.
func (t *triectl) writeDump(path string, tr *trie.Trie[[]byte]) (err error) {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing dump file: %w", closeErr)
		}
	}()

	if !t.config.Codec.Gzip {
		return codec.Serialize(file, tr)
	}

	gzipWriter, err := gzip.NewWriterLevel(file, t.config.Codec.CompressionLevel)
	if err != nil {
		return fmt.Errorf("creating gzip writer: %w", err)
	}

	err = codec.Serialize(gzipWriter, tr)
	if err != nil {
		_ = gzipWriter.Close()
		return err
	}

	err = gzipWriter.Close()
	if err != nil {
		return fmt.Errorf("closing gzip writer: %w", err)
	}
	return nil
}

// openDump opens the dump file at path and returns a reader of its
// uncompressed content. Gzip compressed dumps are detected by their magic.
// The caller must close the file returned.
func openDump(path string) (reader io.Reader, file *os.File, err error) {
	file, err = os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("opening dump file: %w", err)
	}

	buffered := bufio.NewReader(file)
	magic, err := buffered.Peek(len(gzipMagic))
	if err != nil || [2]byte(magic) != gzipMagic {
		// Errors peeking are reported by the decoder reading the header.
		return buffered, file, nil
	}

	gzipReader, err := gzip.NewReader(buffered)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	logger.Debugf("reading gzip compressed dump %s", path)
	return gzipReader, file, nil
}

func (t *triectl) loadDump(path string) (tr *trie.Trie[[]byte], err error) {
	reader, file, err := openDump(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tr, err = codec.Deserialize(reader, t.options...)
	if err != nil {
		return nil, fmt.Errorf("loading dump %s: %w", path, err)
	}

	logger.Debugf("loaded %d entries from %s", tr.Len(), path)
	return tr, nil
}

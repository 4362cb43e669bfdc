// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package wordlist loads word lists made of a free text header,
// a separator line starting with ten dashes, and words separated
// by white spaces.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ChainSafe/gotries/internal/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator is the prefix of the line separating
// the header from the words.
const Separator = "----------"

const maxLineLength = 1024 * 1024

var ErrSeparatorNotFound = errors.New("separator line not found")

var logger = log.NewFromGlobal(log.AddContext("pkg", "wordlist"))

// SetLogLevel sets the level of the word list logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// Load reads the words from the reader given. The text is decoded
// as UTF-8, unless it starts with a UTF-16 byte order mark.
func Load(reader io.Reader) (words []string, err error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(reader, decoder))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	headerLines := 0
	separatorFound := false
	for scanner.Scan() {
		line := scanner.Text()
		if !separatorFound {
			if strings.HasPrefix(line, Separator) {
				separatorFound = true
				continue
			}
			headerLines++
			continue
		}
		words = append(words, strings.Fields(line)...)
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}

	if !separatorFound {
		return nil, fmt.Errorf("%w: after %d lines", ErrSeparatorNotFound, headerLines)
	}

	logger.Debugf("loaded %d words after %d header lines", len(words), headerLines)
	return words, nil
}

// LoadFile reads the words from the file at the path given.
func LoadFile(path string) (words []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	words, err = Load(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return nil, err
	}
	return words, nil
}

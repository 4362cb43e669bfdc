// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/gotries/config"
	"github.com/ChainSafe/gotries/internal/log"
	"github.com/ChainSafe/gotries/internal/query"
	"github.com/ChainSafe/gotries/internal/wordlist"
	"github.com/ChainSafe/gotries/pkg/trie/codec"
	terminal "golang.org/x/term"
)

// setupLogger sets up the global logger and the package loggers
// with the levels of the configuration.
func setupLogger(cfg config.Config, writer *os.File) (err error) {
	globalLevel, err := cfg.Level("")
	if err != nil {
		return err
	}

	format := log.FormatConsole
	if terminal.IsTerminal(int(writer.Fd())) {
		format = log.FormatColoured
	}

	log.Patch(
		log.SetWriter(writer),
		log.SetFormat(format),
		log.SetLevel(globalLevel),
	)

	cliLevel, err := cfg.Level(cfg.Log.CLILvl)
	if err != nil {
		return err
	}
	logger.Patch(log.SetLevel(cliLevel))

	codecLevel, err := cfg.Level(cfg.Log.CodecLvl)
	if err != nil {
		return err
	}
	codec.SetLogLevel(codecLevel)

	wordlistLevel, err := cfg.Level(cfg.Log.WordlistLvl)
	if err != nil {
		return err
	}
	wordlist.SetLogLevel(wordlistLevel)

	queryLevel, err := cfg.Level(cfg.Log.QueryLvl)
	if err != nil {
		return err
	}
	query.SetLogLevel(queryLevel)

	return nil
}

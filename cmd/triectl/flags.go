// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import "github.com/urfave/cli"

// Global flags
var (
	// ConfigFlag is the toml configuration file path
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag overrides the global log level of the configuration
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// GzipFlag compresses written dumps
	GzipFlag = cli.BoolFlag{
		Name:  "gzip",
		Usage: "Compress written trie dumps with gzip",
	}
	// MetricsFlag prints the trie metrics after the command
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Print the trie metrics in Prometheus text format once the command is done",
	}
)

// Command flags
var (
	// WordsFlag is the word list file to build the trie from
	WordsFlag = cli.StringFlag{
		Name:  "words",
		Usage: "Word list file: header lines, a line starting with ----------, then whitespace separated words",
	}
	// OutputFlag is the path of the file to write
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Output file path",
	}
	// ValuesFlag selects the values stored for each word
	ValuesFlag = cli.StringFlag{
		Name:  "values",
		Usage: "Values stored for each word: reversed (the reversed word) or index (its position in the list)",
		Value: valuesReversed,
	}
	// AddressFlag is the listening address of the query server
	AddressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "Listening address of the query server",
		Value: "localhost:8545",
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	GzipFlag,
	MetricsFlag,
}

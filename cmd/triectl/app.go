// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ChainSafe/gotries/config"
	prometheusmetrics "github.com/ChainSafe/gotries/internal/trie/metrics/prometheus"
	"github.com/ChainSafe/gotries/pkg/trie"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli"
)

// triectl holds the state shared by the commands of one run.
type triectl struct {
	writer   io.Writer
	config   config.Config
	registry *prometheus.Registry
	options  []trie.Option
}

func newApp(writer io.Writer) *cli.App {
	t := &triectl{writer: writer}

	app := cli.NewApp()
	app.Name = "triectl"
	app.Usage = "Build, query and inspect serialized tries"
	app.Writer = writer
	app.Flags = globalFlags
	app.Before = t.setup
	app.After = t.printMetrics
	app.Commands = []cli.Command{
		{
			Name:   "build",
			Usage:  "Build a trie from a word list and write it to a dump file",
			Flags:  []cli.Flag{WordsFlag, OutputFlag, ValuesFlag},
			Action: t.build,
		},
		{
			Name:      "get",
			Usage:     "Print the value of a key",
			ArgsUsage: "<dump> <key>",
			Action:    t.get,
		},
		{
			Name:      "prefix",
			Usage:     "Print the entries starting with a prefix, in ascending key order",
			ArgsUsage: "<dump> [prefix]",
			Action:    t.prefix,
		},
		{
			Name:      "match",
			Usage:     "Print the longest key being a prefix of the query",
			ArgsUsage: "<dump> <query>",
			Action:    t.match,
		},
		{
			Name:      "inspect",
			Usage:     "Print statistics and the fingerprint of a dump",
			ArgsUsage: "<dump>",
			Action:    t.inspect,
		},
		{
			Name:      "tree",
			Usage:     "Print the node tree of a dump",
			ArgsUsage: "<dump>",
			Action:    t.tree,
		},
		{
			Name:      "serve",
			Usage:     "Serve queries on a dump over HTTP until interrupted",
			ArgsUsage: "<dump>",
			Flags:     []cli.Flag{AddressFlag},
			Action:    t.serve,
		},
		{
			Name:      "config",
			Usage:     "Export the effective configuration to a toml file",
			ArgsUsage: "<path>",
			Action:    t.exportConfig,
		},
	}

	return app
}

// setup loads the configuration, applies the global flags on top of it
// and sets up logging and metrics.
func (t *triectl) setup(ctx *cli.Context) (err error) {
	t.config = config.Default()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		t.config, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if level := ctx.String(LogFlag.Name); level != "" {
		t.config.Global.LogLvl = level
		err = t.config.Validate()
		if err != nil {
			return err
		}
	}

	if ctx.Bool(GzipFlag.Name) {
		t.config.Codec.Gzip = true
	}

	if ctx.Bool(MetricsFlag.Name) {
		t.config.Metrics.Enabled = true
	}

	err = setupLogger(t.config, os.Stderr)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	if !t.config.Metrics.Enabled {
		return nil
	}

	t.registry = prometheus.NewRegistry()
	metrics, err := prometheusmetrics.New(t.registry)
	if err != nil {
		return fmt.Errorf("setting up metrics: %w", err)
	}
	t.options = append(t.options, trie.WithMetrics(metrics))

	return nil
}

func (t *triectl) printMetrics(*cli.Context) (err error) {
	if t.registry == nil {
		return nil
	}

	families, err := t.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	return writeMetrics(t.writer, families)
}

func writeMetrics(writer io.Writer, families []*dto.MetricFamily) (err error) {
	for _, family := range families {
		_, err = expfmt.MetricFamilyToText(writer, family)
		if err != nil {
			return fmt.Errorf("writing metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}

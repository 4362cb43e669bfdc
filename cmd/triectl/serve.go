// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/gotries/internal/httpserver"
	"github.com/ChainSafe/gotries/internal/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

func (t *triectl) serve(ctx *cli.Context) (err error) {
	err = checkArgumentsCount(ctx, 1, 1)
	if err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return t.serveDump(signalCtx, ctx.Args().Get(0), ctx.String(AddressFlag.Name))
}

// serveDump loads the dump at path and serves queries on it
// at the address given until the context is canceled.
func (t *triectl) serveDump(ctx context.Context, path, address string) (err error) {
	tr, err := t.loadDump(path)
	if err != nil {
		return err
	}

	var gatherer prometheus.Gatherer
	if t.registry != nil {
		gatherer = t.registry
	}
	handler := query.NewHandler(tr, gatherer)
	server := httpserver.New("query", address, handler, logger)

	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(ctx, ready, done)

	select {
	case <-ready:
	case err = <-done:
		return fmt.Errorf("starting query server: %w", err)
	}

	_, err = fmt.Fprintf(t.writer, "serving %d entries on http://%s\n",
		tr.Len(), server.GetAddress())
	if err != nil {
		logger.Warnf("writing server address: %s", err)
	}

	err = <-done
	if err != nil {
		return fmt.Errorf("running query server: %w", err)
	}
	return nil
}

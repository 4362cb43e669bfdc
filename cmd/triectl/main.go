// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/gotries/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cli"))

func main() {
	app := newApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

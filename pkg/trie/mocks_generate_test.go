// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

//go:generate mockgen -destination=mock_metrics_test.go -package $GOPACKAGE . Metrics

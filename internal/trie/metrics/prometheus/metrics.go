// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements the trie metrics interface with Prometheus gauges.
type Metrics struct {
	nodesGauge prometheus.Gauge
}

// New creates the trie metrics and registers them on the registerer given.
// Metrics already registered are shared, so tries created with metrics
// from different calls to New report to the same gauges.
func New(registerer prometheus.Registerer) (metrics *Metrics, err error) {
	metrics = new(Metrics)
	err = metrics.setupDefaults(registerer)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func (m *Metrics) setupDefaults(registerer prometheus.Registerer) (err error) {
	m.nodesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gotries",
		Subsystem: "trie",
		Name:      "nodes_total",
		Help:      "total number of nodes in all the tries in memory",
	})

	err = registerer.Register(m.nodesGauge)
	if err == nil {
		return nil
	}

	var alreadyRegisteredErr prometheus.AlreadyRegisteredError
	if !errors.As(err, &alreadyRegisteredErr) {
		return fmt.Errorf("cannot register nodes gauge: %w", err)
	}

	existing, ok := alreadyRegisteredErr.ExistingCollector.(prometheus.Gauge)
	if !ok {
		return fmt.Errorf("cannot register nodes gauge: existing collector is a %T",
			alreadyRegisteredErr.ExistingCollector)
	}
	m.nodesGauge = existing
	return nil
}

func (m *Metrics) NodesAdd(n uint32) {
	m.nodesGauge.Add(float64(n))
}

func (m *Metrics) NodesSub(n uint32) {
	m.nodesGauge.Sub(float64(n))
}

// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry returns a registry preloaded with the go runtime and process
// collectors and an info gauge carrying the version label.
func NewRegistry(version string) *Registry {
	r := prometheus.NewRegistry()

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "info",
		Help:      "mdhash information.",
		ConstLabels: prometheus.Labels{
			"version": version,
		},
	})
	info.Set(1)

	r.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: Namespace}),
		prometheus.NewGoCollector(),
		info,
	)
	return r
}

// MustRegisterAll registers the metrics of every given component.
func MustRegisterAll(r *Registry, components ...MetricsCollector) {
	for _, c := range components {
		r.MustRegister(c.Metrics()...)
	}
}

// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace is prefixed before every metric. If it is changed, it must be done
	// before any metrics collector is registered.
	Namespace = "mdhash"
)

// MetricsCollector is implemented by every component that exposes metrics.
type MetricsCollector interface {
	Metrics() []prometheus.Collector
}

// Prometheus types aliases
type (
	Collector = prometheus.Collector
	Registry  = prometheus.Registry
	Observer  = prometheus.Observer
	Labels    = prometheus.Labels
	Metric    = prometheus.Metric
	Desc      = prometheus.Desc

	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts
	CounterVec  = prometheus.CounterVec

	Gauge     = prometheus.Gauge
	GaugeOpts = prometheus.GaugeOpts

	Histogram     = prometheus.Histogram
	HistogramOpts = prometheus.HistogramOpts
	HistogramVec  = prometheus.HistogramVec

	HandlerOpts = promhttp.HandlerOpts
)

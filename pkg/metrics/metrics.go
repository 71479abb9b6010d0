// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics wraps the prometheus client with the constructors and the
// collector discovery used by every mdhash component.
package metrics

import (
	"net/http"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewCounter(opts CounterOpts) Counter {
	return prometheus.NewCounter(opts)
}

func NewCounterVec(opts CounterOpts, names []string) *CounterVec {
	return prometheus.NewCounterVec(opts, names)
}

func NewGauge(opts GaugeOpts) Gauge {
	return prometheus.NewGauge(opts)
}

func NewHistogram(opts HistogramOpts) Histogram {
	return prometheus.NewHistogram(opts)
}

func NewHistogramVec(opts HistogramOpts, names []string) *HistogramVec {
	return prometheus.NewHistogramVec(opts, names)
}

func HandlerFor(reg *Registry, opts HandlerOpts) http.Handler {
	return promhttp.InstrumentMetricHandler(reg, promhttp.HandlerFor(reg, opts))
}

// PrometheusCollectorsFromFields returns all exported fields of the struct i
// that implement prometheus.Collector. Nil fields are skipped.
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

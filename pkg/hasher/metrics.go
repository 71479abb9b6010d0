// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	m "github.com/ethersphere/mdhash/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	BytesCount       *prometheus.CounterVec
	DigestCount      *prometheus.CounterVec
	UsageErrorCount  prometheus.Counter
	FileErrorCount   prometheus.Counter
	MismatchCount    prometheus.Counter
	HashDurationTime *prometheus.HistogramVec
}

func newMetrics() metrics {
	subsystem := "hasher"

	return metrics{
		BytesCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "bytes_count",
			Help:      "Number of bytes hashed.",
		}, []string{"algorithm"}),
		DigestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "digest_count",
			Help:      "Number of digests computed.",
		}, []string{"algorithm"}),
		UsageErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "usage_error_count",
			Help:      "Number of operations rejected on a finalized context.",
		}),
		FileErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "file_error_count",
			Help:      "Number of files that could not be read.",
		}),
		MismatchCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "checksum_mismatch_count",
			Help:      "Number of checksum list entries that did not match.",
		}),
		HashDurationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "hash_duration_seconds",
			Help:      "Time taken to hash one input.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		}, []string{"algorithm"}),
	}
}

// Metrics returns the service collectors.
func (s *Service) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}

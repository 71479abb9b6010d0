// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api exposes the hashing service over HTTP.
package api

import (
	"net/http"

	"github.com/ethersphere/mdhash/pkg/hasher"
	"github.com/ethersphere/mdhash/pkg/logging"
	m "github.com/ethersphere/mdhash/pkg/metrics"
)

// DefaultMaxBodySize is the request body limit used when Options do not set one.
const DefaultMaxBodySize = 64 * 1024 * 1024

type Service struct {
	http.Handler

	hasher          *hasher.Service
	logger          logging.Logger
	maxBodySize     int64
	metricsRegistry *m.Registry
	metrics         metrics
}

type Options struct {
	// MaxBodySize limits the number of bytes read from a request body.
	MaxBodySize int64
	// MetricsRegistry is served on /metrics. The endpoint is not routed
	// when it is nil.
	MetricsRegistry *m.Registry
}

func New(h *hasher.Service, logger logging.Logger, o Options) *Service {
	if o.MaxBodySize <= 0 {
		o.MaxBodySize = DefaultMaxBodySize
	}
	s := &Service{
		hasher:          h,
		logger:          logger,
		maxBodySize:     o.MaxBodySize,
		metricsRegistry: o.MetricsRegistry,
		metrics:         newMetrics(),
	}

	s.setupRouting()

	return s
}

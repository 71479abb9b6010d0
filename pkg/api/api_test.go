// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"resenje.org/web"

	"github.com/ethersphere/mdhash/pkg/api"
	"github.com/ethersphere/mdhash/pkg/hasher"
	"github.com/ethersphere/mdhash/pkg/logging"
	m "github.com/ethersphere/mdhash/pkg/metrics"
)

type testServerOptions struct {
	Logger          logging.Logger
	MaxBodySize     int64
	MetricsRegistry *m.Registry
}

func newTestServer(t *testing.T, o testServerOptions) (*http.Client, *api.Service) {
	t.Helper()

	if o.Logger == nil {
		o.Logger = logging.New(io.Discard, logrus.TraceLevel)
	}
	h := hasher.NewService(hasher.Options{Logger: o.Logger})
	s := api.New(h, o.Logger, api.Options{
		MaxBodySize:     o.MaxBodySize,
		MetricsRegistry: o.MetricsRegistry,
	})
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return &http.Client{
		Transport: web.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			u, err := url.Parse(ts.URL + r.URL.String())
			if err != nil {
				return nil, err
			}
			r.URL = u
			return ts.Client().Transport.RoundTrip(r)
		}),
	}, s
}

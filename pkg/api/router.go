// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"resenje.org/web"

	"github.com/ethersphere/mdhash/pkg/jsonhttp"
	"github.com/ethersphere/mdhash/pkg/logging/httpaccess"
	m "github.com/ethersphere/mdhash/pkg/metrics"
)

func (s *Service) setupRouting() {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(jsonhttp.NotFoundHandler)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "mdhash")
	})

	router.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "User-agent: *\nDisallow: /")
	})

	router.Handle("/health", jsonhttp.MethodHandler{
		"GET": web.ChainHandlers(
			httpaccess.SetAccessLogLevelHandler(0), // suppress access log messages
			web.FinalHandlerFunc(s.healthHandler),
		),
	})

	if s.metricsRegistry != nil {
		router.Handle("/metrics", web.ChainHandlers(
			httpaccess.SetAccessLogLevelHandler(0), // suppress access log messages
			// responses are compressed by the router middleware
			web.FinalHandler(m.HandlerFor(s.metricsRegistry, m.HandlerOpts{DisableCompression: true})),
		))
	}

	router.Handle("/hash/{algorithm}", jsonhttp.MethodHandler{
		"POST": web.ChainHandlers(
			jsonhttp.NewMaxBodyBytesHandler(s.maxBodySize),
			web.FinalHandlerFunc(s.hashHandler),
		),
	})

	router.Handle("/verify/{algorithm}/{digest}", jsonhttp.MethodHandler{
		"POST": web.ChainHandlers(
			jsonhttp.NewMaxBodyBytesHandler(s.maxBodySize),
			web.FinalHandlerFunc(s.verifyHandler),
		),
	})

	s.Handler = web.ChainHandlers(
		httpaccess.NewHTTPAccessLogHandler(s.logger, logrus.InfoLevel, "api access"),
		handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger})),
		handlers.CompressHandler,
		s.pageviewMetricsHandler,
		s.responseCodeMetricsHandler,
		web.FinalHandler(router),
	)
}

// recoveryLogger reports recovered handler panics through the service logger.
type recoveryLogger struct {
	logger interface {
		Error(args ...interface{})
	}
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error(v...)
}

// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package httpaccess_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
	"resenje.org/web"

	"github.com/ethersphere/mdhash/pkg/logging"
	"github.com/ethersphere/mdhash/pkg/logging/httpaccess"
)

func TestHTTPAccessLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logrus.InfoLevel)

	h := web.ChainHandlers(
		httpaccess.NewHTTPAccessLogHandler(logger, logrus.InfoLevel, "api access"),
		web.FinalHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("body"))
		}),
	)

	r := httptest.NewRequest(http.MethodPost, "/hash/sha1", nil)
	r.Header.Set("User-Agent", "test-agent")
	h.ServeHTTP(httptest.NewRecorder(), r)

	got := buf.String()
	for _, want := range []string{
		`msg="api access"`,
		"method=POST",
		"status=418",
		"size=4",
		"uri=/hash/sha1",
		"user-agent=test-agent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log %q does not contain %q", got, want)
		}
	}
}

func TestSetAccessLogLevelHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logrus.InfoLevel)

	// the level must be reachable through wrapping response writers
	h := web.ChainHandlers(
		httpaccess.NewHTTPAccessLogHandler(logger, logrus.InfoLevel, "api access"),
		handlers.CompressHandler,
		httpaccess.SetAccessLogLevelHandler(0),
		web.FinalHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if buf.Len() != 0 {
		t.Errorf("got log %q, want none", buf.String())
	}
}

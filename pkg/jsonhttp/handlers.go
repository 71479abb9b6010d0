// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonhttp

import (
	"errors"
	"net/http"

	"resenje.org/web"
)

// errBodyTooLargeMessage is the text of the unexported error returned by
// http.MaxBytesReader once its limit is exceeded.
const errBodyTooLargeMessage = "http: request body too large"

var methodNotAllowedBody = `{"message":"` + http.StatusText(http.StatusMethodNotAllowed) + `","code":405}`

// MethodHandler routes a request to the handler registered for its method and
// responds with a JSON 405 status when there is none.
type MethodHandler map[string]http.Handler

func (h MethodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.HandleMethods(h, methodNotAllowedBody, DefaultContentTypeHeader, w, r)
}

// NotFoundHandler responds with a JSON 404 status.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	NotFound(w, nil)
}

// NewMaxBodyBytesHandler limits the number of bytes that can be read from the
// request body. Requests that declare a larger Content-Length are rejected
// before the handler runs; for the rest the read error is detected with
// HandleBodyReadError.
func NewMaxBodyBytesHandler(limit int64) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				RequestEntityTooLarge(w, nil)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			h.ServeHTTP(w, r)
		})
	}
}

// HandleBodyReadError writes a 413 response if err, or any error it wraps,
// reports an exceeded body limit. It returns false without writing anything
// otherwise.
func HandleBodyReadError(err error, w http.ResponseWriter) (responded bool) {
	if !isBodyTooLarge(err) {
		return false
	}
	RequestEntityTooLarge(w, nil)
	return true
}

// isBodyTooLarge walks the wrap chain of err. The error returned by
// http.MaxBytesReader is unexported, so it can only be matched by its text.
func isBodyTooLarge(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if err.Error() == errBodyTooLargeMessage {
			return true
		}
	}
	return false
}

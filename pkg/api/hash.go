// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ethersphere/mdhash/pkg/hasher"
	"github.com/ethersphere/mdhash/pkg/jsonhttp"
)

type hashResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Length    uint64 `json:"length"`
}

type verifyResponse struct {
	Match bool `json:"match"`
}

func (s *Service) hashHandler(w http.ResponseWriter, r *http.Request) {
	v, err := hasher.ParseVariant(mux.Vars(r)["algorithm"])
	if err != nil {
		s.logger.Debugf("hash: parse algorithm: %v", err)
		jsonhttp.BadRequest(w, "unknown algorithm")
		return
	}

	d, ok := s.sumBody(w, r, v)
	if !ok {
		return
	}

	jsonhttp.OK(w, hashResponse{
		Algorithm: v.String(),
		Digest:    d.Hex(),
		Length:    d.Length,
	})
}

func (s *Service) verifyHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	v, err := hasher.ParseVariant(vars["algorithm"])
	if err != nil {
		s.logger.Debugf("verify: parse algorithm: %v", err)
		jsonhttp.BadRequest(w, "unknown algorithm")
		return
	}
	want, err := hasher.ParseHex(vars["digest"], v)
	if err != nil {
		s.logger.Debugf("verify: parse digest: %v", err)
		jsonhttp.BadRequest(w, "invalid digest")
		return
	}

	d, ok := s.sumBody(w, r, v)
	if !ok {
		return
	}

	if !hasher.Equal(d.Sum, want) {
		s.metrics.MismatchCount.WithLabelValues(v.String()).Inc()
		jsonhttp.Conflict(w, hasher.ErrChecksumMismatch)
		return
	}
	jsonhttp.OK(w, verifyResponse{Match: true})
}

// sumBody hashes the request body and writes an error response if that fails.
func (s *Service) sumBody(w http.ResponseWriter, r *http.Request, v hasher.Variant) (hasher.Digest, bool) {
	d, err := s.hasher.SumReader(r.Context(), v, r.Body)
	if err != nil {
		if jsonhttp.HandleBodyReadError(err, w) {
			return hasher.Digest{}, false
		}
		s.logger.Debugf("%s: read body: %v", r.URL.Path, err)
		s.logger.Error("hash request body failed")
		jsonhttp.InternalServerError(w, "hash request body failed")
		return hasher.Digest{}, false
	}
	return d, true
}

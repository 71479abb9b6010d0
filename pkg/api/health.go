// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/ethersphere/mdhash"
	"github.com/ethersphere/mdhash/pkg/jsonhttp"
)

type healthStatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Service) healthHandler(w http.ResponseWriter, _ *http.Request) {
	jsonhttp.OK(w, healthStatusResponse{
		Status:  "ok",
		Version: mdhash.Version,
	})
}

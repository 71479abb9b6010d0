// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ethersphere/mdhash/pkg/jsonhttp"
	"github.com/ethersphere/mdhash/pkg/jsonhttp/jsonhttptest"
)

type hashResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Length    uint64 `json:"length"`
}

func TestHash(t *testing.T) {
	client, _ := newTestServer(t, testServerOptions{})

	data := bytes.Repeat([]byte("0123456789"), 10_000)
	sum1 := sha1.Sum(data)
	sum256 := sha256.Sum256(data)

	for _, tc := range []struct {
		algorithm string
		want      hashResponse
	}{
		{
			algorithm: "sha1",
			want:      hashResponse{Algorithm: "sha1", Digest: hex.EncodeToString(sum1[:]), Length: uint64(len(data))},
		},
		{
			algorithm: "SHA-256",
			want:      hashResponse{Algorithm: "sha256", Digest: hex.EncodeToString(sum256[:]), Length: uint64(len(data))},
		},
	} {
		t.Run(tc.algorithm, func(t *testing.T) {
			jsonhttptest.Request(t, client, http.MethodPost, "/hash/"+tc.algorithm, http.StatusOK,
				jsonhttptest.WithRequestBody(bytes.NewReader(data)),
				jsonhttptest.WithExpectedJSONResponse(tc.want),
			)
		})
	}

	t.Run("empty body", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/hash/sha256", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(hashResponse{
				Algorithm: "sha256",
				Digest:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			}),
		)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/hash/md5", http.StatusBadRequest,
			jsonhttptest.WithRequestBody(strings.NewReader("abc")),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "unknown algorithm",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("method not allowed", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodGet, "/hash/sha1", http.StatusMethodNotAllowed,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: http.StatusText(http.StatusMethodNotAllowed),
				Code:    http.StatusMethodNotAllowed,
			}),
		)
	})
}

func TestHashBodyLimit(t *testing.T) {
	client, _ := newTestServer(t, testServerOptions{MaxBodySize: 100})

	tooLarge := jsonhttp.StatusResponse{
		Message: http.StatusText(http.StatusRequestEntityTooLarge),
		Code:    http.StatusRequestEntityTooLarge,
	}

	t.Run("content length", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/hash/sha1", http.StatusRequestEntityTooLarge,
			jsonhttptest.WithRequestBody(bytes.NewReader(make([]byte, 101))),
			jsonhttptest.WithExpectedJSONResponse(tooLarge),
		)
	})

	t.Run("chunked", func(t *testing.T) {
		// an unknown length body is only caught while it is being hashed
		jsonhttptest.Request(t, client, http.MethodPost, "/hash/sha1", http.StatusRequestEntityTooLarge,
			jsonhttptest.WithRequestBody(iotest.OneByteReader(io.LimitReader(zeroReader{}, 1000))),
			jsonhttptest.WithExpectedJSONResponse(tooLarge),
		)
	})

	t.Run("within limit", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/hash/sha1", http.StatusOK,
			jsonhttptest.WithRequestBody(bytes.NewReader(make([]byte, 100))),
		)
	})
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestVerify(t *testing.T) {
	client, _ := newTestServer(t, testServerOptions{})

	data := []byte("verify me")
	sum1 := sha1.Sum(data)
	sum256 := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/verify/sha1/"+hex.EncodeToString(sum1[:]), http.StatusOK,
			jsonhttptest.WithRequestBody(bytes.NewReader(data)),
			jsonhttptest.WithExpectedJSONResponse(struct {
				Match bool `json:"match"`
			}{Match: true}),
		)
		jsonhttptest.Request(t, client, http.MethodPost, "/verify/sha256/"+hex.EncodeToString(sum256[:]), http.StatusOK,
			jsonhttptest.WithRequestBody(bytes.NewReader(data)),
		)
	})

	t.Run("mismatch", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/verify/sha256/"+hex.EncodeToString(sum256[:]), http.StatusConflict,
			jsonhttptest.WithRequestBody(strings.NewReader("tampered")),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "checksum mismatch",
				Code:    http.StatusConflict,
			}),
		)
	})

	t.Run("digest of other algorithm", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/verify/sha256/"+hex.EncodeToString(sum1[:]), http.StatusBadRequest,
			jsonhttptest.WithRequestBody(bytes.NewReader(data)),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "invalid digest",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		jsonhttptest.Request(t, client, http.MethodPost, "/verify/md5/"+hex.EncodeToString(sum1[:]), http.StatusBadRequest,
			jsonhttptest.WithRequestBody(bytes.NewReader(data)),
		)
	})
}

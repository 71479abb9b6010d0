// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hasher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ethersphere/mdhash/pkg/digest"
	"github.com/ethersphere/mdhash/pkg/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultChunkSize is the read size used when streaming input into a context.
const DefaultChunkSize = 32 * 1024

// Options configure a Service.
type Options struct {
	Fs        afero.Fs
	Logger    logging.Logger
	ChunkSize int
}

// Service hashes readers and files and verifies checksum lists.
type Service struct {
	fs        afero.Fs
	logger    logging.Logger
	chunkSize int
	metrics   metrics
}

// Digest is a computed digest with the number of bytes it covers.
type Digest struct {
	Variant Variant
	Sum     []byte
	Length  uint64
}

// Hex returns the digest in lowercase hex.
func (d Digest) Hex() string {
	return Hex(d.Sum)
}

// Result is the outcome of hashing a single file.
type Result struct {
	Path   string
	Digest Digest
	Err    error
}

// CheckResult is the outcome of verifying a single checksum list entry.
type CheckResult struct {
	Entry Entry
	OK    bool
	Err   error
}

// NewService creates a new hashing service. A nil Fs selects the operating
// system filesystem.
func NewService(o Options) *Service {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	return &Service{
		fs:        o.Fs,
		logger:    o.Logger,
		chunkSize: o.ChunkSize,
		metrics:   newMetrics(),
	}
}

// SumReader streams r through a pooled context of the variant.
// The context is checked for cancellation between chunks.
func (s *Service) SumReader(ctx context.Context, v Variant, r io.Reader) (Digest, error) {
	h, err := Get(v)
	if err != nil {
		return Digest{}, err
	}
	defer Put(v, h)

	start := time.Now()
	buf := make([]byte, s.chunkSize)
	var total uint64
	for {
		select {
		case <-ctx.Done():
			return Digest{}, ctx.Err()
		default:
		}

		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				s.countUsageError(werr)
				return Digest{}, werr
			}
			total += uint64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Digest{}, err
		}
	}

	sum, err := h.Final()
	if err != nil {
		s.countUsageError(err)
		return Digest{}, err
	}

	s.metrics.BytesCount.WithLabelValues(v.String()).Add(float64(total))
	s.metrics.DigestCount.WithLabelValues(v.String()).Inc()
	s.metrics.HashDurationTime.WithLabelValues(v.String()).Observe(time.Since(start).Seconds())

	return Digest{Variant: v, Sum: sum, Length: total}, nil
}

func (s *Service) countUsageError(err error) {
	if errors.Is(err, digest.ErrFinalized) {
		s.metrics.UsageErrorCount.Inc()
	}
}

// SumFile hashes the file at path.
func (s *Service) SumFile(ctx context.Context, v Variant, path string) (Digest, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		s.metrics.FileErrorCount.Inc()
		return Digest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := s.SumReader(ctx, v, f)
	if err != nil {
		if ctx.Err() == nil {
			s.metrics.FileErrorCount.Inc()
		}
		return Digest{}, fmt.Errorf("read %s: %w", path, err)
	}
	if s.logger != nil {
		s.logger.Tracef("hasher: %s %s %d bytes", v, path, d.Length)
	}
	return d, nil
}

// SumFiles hashes paths with at most concurrency files in flight.
// Results are in the order of paths. Errors reading individual files are
// recorded in the corresponding Result; the returned error is only set when
// the context is cancelled.
func (s *Service) SumFiles(ctx context.Context, v Variant, paths []string, concurrency int) ([]Result, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%v: %w", v, ErrUnknownVariant)
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]Result, len(paths))
	sem := semaphore.NewWeighted(int64(concurrency))
	eg, ectx := errgroup.WithContext(ctx)
	for i, p := range paths {
		if err := sem.Acquire(ectx, 1); err != nil {
			break
		}
		i, p := i, p
		eg.Go(func() error {
			defer sem.Release(1)
			d, err := s.SumFile(ectx, v, p)
			results[i] = Result{Path: p, Digest: d, Err: err}
			if err != nil && ectx.Err() != nil {
				return ectx.Err()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Check verifies every entry against the digest of the file it names.
// The returned error aggregates all mismatches and unreadable files.
func (s *Service) Check(ctx context.Context, entries []Entry, concurrency int) ([]CheckResult, error) {
	checked := make([]CheckResult, len(entries))
	paths := make([]string, len(entries))
	for i, e := range entries {
		checked[i].Entry = e
		paths[i] = e.Path
	}

	// entries may mix variants when the list was parsed with inferred sizes
	byVariant := make(map[Variant][]int)
	for i, e := range entries {
		byVariant[e.Variant] = append(byVariant[e.Variant], i)
	}

	var result *multierror.Error
	for _, v := range Variants {
		idx := byVariant[v]
		if len(idx) == 0 {
			continue
		}
		ps := make([]string, len(idx))
		for j, i := range idx {
			ps[j] = paths[i]
		}
		rs, err := s.SumFiles(ctx, v, ps, concurrency)
		if err != nil {
			return nil, err
		}
		for j, r := range rs {
			c := &checked[idx[j]]
			switch {
			case r.Err != nil:
				c.Err = r.Err
			case !Equal(r.Digest.Sum, c.Entry.Digest):
				s.metrics.MismatchCount.Inc()
				c.Err = fmt.Errorf("%s: %w", c.Entry.Path, ErrChecksumMismatch)
			default:
				c.OK = true
			}
		}
	}
	for i, e := range entries {
		if !e.Variant.Valid() {
			checked[i].Err = fmt.Errorf("%s: %w", e.Path, ErrUnknownVariant)
		}
		if checked[i].Err != nil {
			result = multierror.Append(result, checked[i].Err)
		}
	}

	return checked, result.ErrorOrNil()
}

// Package http provides an HTTP-based implementation of docindex.Source for
// search indexes published alongside documentation sites.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docindex"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// DefaultMaxSize bounds the payload size read from a server.
const DefaultMaxSize = 64 << 20

// Ensure Source implements docindex.Source at compile time.
var _ docindex.Source = (*Source)(nil)

// Source retrieves search-index payloads over HTTP.
type Source struct {
	client  *http.Client
	timeout time.Duration
	maxSize int64
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithMaxSize sets the largest payload accepted, in bytes.
func WithMaxSize(n int64) Option {
	return func(s *Source) {
		s.maxSize = n
	}
}

// NewSource creates a new HTTP-based Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		timeout: DefaultTimeout,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Read fetches the payload at url.
func (s *Source) Read(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, docindex.Errorf(docindex.ENOTFOUND, "no search index at %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > s.maxSize {
		return nil, docindex.Errorf(docindex.EINVALID, "payload at %s exceeds %d bytes", url, s.maxSize)
	}

	return body, nil
}

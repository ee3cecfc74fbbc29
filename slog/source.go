// Package slog provides decorators that log calls to docindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingSource implements docindex.Source.
var _ docindex.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with debug logging.
type LoggingSource struct {
	next   docindex.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docindex.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Read delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Read(ctx context.Context, src string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read",
			"src", src,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, src)
}

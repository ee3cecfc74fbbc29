package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingExporter implements docindex.Exporter.
var _ docindex.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with debug logging.
type LoggingExporter struct {
	next   docindex.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next docindex.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (x *LoggingExporter) Export(ctx context.Context, name string, entries []*docindex.Entry) (err error) {
	defer func(begin time.Time) {
		x.logger.Debug("export",
			"name", name,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.Export(ctx, name, entries)
}

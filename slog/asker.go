package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingAsker implements docindex.Asker.
var _ docindex.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with debug logging.
type LoggingAsker struct {
	next   docindex.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next docindex.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation. The question
// and answer text are not logged, only their sizes.
func (a *LoggingAsker) Ask(ctx context.Context, collectionID, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Debug("ask",
			"collection", collectionID,
			"question_len", len(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, collectionID, question)
}

package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Asker = (*Asker)(nil)

// Asker is a mock implementation of docindex.Asker.
type Asker struct {
	AskFn func(ctx context.Context, collectionID, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, collectionID, question string) (string, error) {
	return a.AskFn(ctx, collectionID, question)
}

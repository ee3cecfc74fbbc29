package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of docindex.EntryService.
type EntryService struct {
	CreateEntriesFn func(ctx context.Context, collectionID string, entries []*docindex.Entry) error
	FindEntriesFn   func(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error)
}

func (s *EntryService) CreateEntries(ctx context.Context, collectionID string, entries []*docindex.Entry) error {
	return s.CreateEntriesFn(ctx, collectionID, entries)
}

func (s *EntryService) FindEntries(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

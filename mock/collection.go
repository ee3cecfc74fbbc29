package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of docindex.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, collection *docindex.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*docindex.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter docindex.CollectionFilter) ([]*docindex.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, collection *docindex.Collection) error {
	return s.CreateCollectionFn(ctx, collection)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*docindex.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter docindex.CollectionFilter) ([]*docindex.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}

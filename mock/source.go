package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Source = (*Source)(nil)

// Source is a mock implementation of docindex.Source.
type Source struct {
	ReadFn func(ctx context.Context, src string) ([]byte, error)
}

func (s *Source) Read(ctx context.Context, src string) ([]byte, error) {
	return s.ReadFn(ctx, src)
}

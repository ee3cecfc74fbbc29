package main

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Source = (*RouterSource)(nil)

// RouterSource reads http and https URLs from Remote and everything else
// from Local.
type RouterSource struct {
	Local  docindex.Source
	Remote docindex.Source
}

// Read implements docindex.Source.
func (s *RouterSource) Read(ctx context.Context, src string) ([]byte, error) {
	if docindex.IsRemote(src) {
		return s.Remote.Read(ctx, src)
	}
	return s.Local.Read(ctx, src)
}

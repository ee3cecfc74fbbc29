package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of docindex.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, name string, entries []*docindex.Entry) error
}

func (x *Exporter) Export(ctx context.Context, name string, entries []*docindex.Entry) error {
	return x.ExportFn(ctx, name, entries)
}

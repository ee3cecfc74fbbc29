package main_test

import (
	"bytes"
	"context"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/fwojciec/docindex/xxhash"
)

// gridkitPayload is a small generated search index.
const gridkitPayload = `var documenterSearchIndex = {"docs":[
{"location":"#Gridkit.jl-1","page":"Home","title":"Gridkit.jl","text":"","category":"section"},
{"location":"#Gridkit.step!","page":"Home","title":"Gridkit.step!","text":"<p>Advance the grid.</p>","category":"function"},
{"location":"example/#","page":"Examples","title":"Examples","text":"Rules may be combined.","category":"page"}
]}`

// newDeps returns Dependencies writing to the given buffers.
func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Checksum: xxhash.Checksum,
	}
}

// collectionsNamed returns a CollectionService that knows a single collection.
func collectionsNamed(c *docindex.Collection) *mock.CollectionService {
	return &mock.CollectionService{
		FindCollectionsFn: func(_ context.Context, filter docindex.CollectionFilter) ([]*docindex.Collection, error) {
			if filter.Name != nil && *filter.Name == c.Name {
				return []*docindex.Collection{c}, nil
			}
			return []*docindex.Collection{}, nil
		},
	}
}

// entriesOf returns an EntryService serving the given entries for any filter
// on the collection, applying the category filter.
func entriesOf(collectionID string, entries []*docindex.Entry) *mock.EntryService {
	return &mock.EntryService{
		FindEntriesFn: func(_ context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
			if filter.CollectionID == nil || *filter.CollectionID != collectionID {
				return nil, nil
			}
			var out []*docindex.Entry
			for _, e := range entries {
				if filter.Category != nil && e.Category != *filter.Category {
					continue
				}
				out = append(out, e)
			}
			return out, nil
		},
	}
}

func gridkitEntries() []*docindex.Entry {
	return []*docindex.Entry{
		{Location: "#Gridkit.jl-1", Page: "Home", Title: "Gridkit.jl", Category: docindex.CategorySection},
		{Location: "#Gridkit.step!", Page: "Home", Title: "Gridkit.step!", Text: "Advance the grid.", Category: docindex.CategoryFunction},
		{Location: "example/#", Page: "Examples", Title: "Examples", Text: "Rules may be combined.", Category: docindex.CategoryPage},
	}
}

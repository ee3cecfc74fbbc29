package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// findCollection looks up a collection by name, reporting a missing one on
// stderr.
func findCollection(deps *Dependencies, name string) (*docindex.Collection, error) {
	collections, err := deps.Collections.FindCollections(deps.Ctx, docindex.CollectionFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return nil, err
	}

	if len(collections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'docindex list' to see available collections.\n", name)
		return nil, docindex.Errorf(docindex.ENOTFOUND, "collection %q not found", name)
	}

	return collections[0], nil
}

// loadIndex builds an index over the stored entries of a collection.
func loadIndex(deps *Dependencies, collection *docindex.Collection, filter docindex.EntryFilter) (*docindex.Index, error) {
	filter.CollectionID = &collection.ID
	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return nil, err
	}

	var opts []docindex.IndexOption
	if deps.NewLocationFilter != nil {
		opts = append(opts, docindex.WithLocationFilter(deps.NewLocationFilter))
	}
	return docindex.NewIndex(entries, opts...), nil
}

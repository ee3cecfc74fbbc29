package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	var filter docindex.EntryFilter
	if c.Category != "" {
		category := docindex.Category(c.Category)
		filter.Category = &category
	}

	idx, err := loadIndex(deps, collection, filter)
	if err != nil {
		return err
	}

	hits := idx.SearchN(c.Query, c.Limit)
	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No entries in %s match %q.\n", c.Name, c.Query)
		return nil
	}

	for _, e := range hits {
		fmt.Fprintf(deps.Stdout, "%-9s %s  %s\n", e.Category, e.Location, e.Title)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	idx, err := loadIndex(deps, collection, docindex.EntryFilter{})
	if err != nil {
		return err
	}

	e, ok := idx.ByLocation(c.Location)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no entry at %q in %s. Use 'docindex search %s <query>' to find locations.\n", c.Location, c.Name, c.Name)
		return docindex.Errorf(docindex.ENOTFOUND, "no entry at %q", c.Location)
	}

	fmt.Fprintln(deps.Stdout, docindex.FormatEntries([]*docindex.Entry{e}))
	fmt.Fprintf(deps.Stdout, "\nPage: %s\nCategory: %s\n", e.Page, e.Category)
	return nil
}

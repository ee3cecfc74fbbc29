package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, docindex.EntryFilter{CollectionID: &collection.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if err := deps.NewExporter(c.Dir).Export(deps.Ctx, collection.Name, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(entries), filepath.Join(c.Dir, collection.Name))
	return nil
}

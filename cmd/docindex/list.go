package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, docindex.CollectionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'docindex add' to import one.")
		return nil
	}

	for _, c := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d entries  %s\n", c.ID, c.Name, c.EntryCount, c.Source)
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docindex.Errorf(docindex.EINVALID, "use --force to confirm deletion")
	}

	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}

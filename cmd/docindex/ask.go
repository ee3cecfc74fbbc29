package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	collection, err := findCollection(deps, c.Name)
	if err != nil {
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, collection.ID, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

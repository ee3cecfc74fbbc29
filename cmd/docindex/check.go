package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// checkResult is the outcome of validating one source.
type checkResult struct {
	counts map[docindex.Category]int
	total  int
	err    error
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	results := make([]checkResult, len(c.Sources))

	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}

	for i, src := range c.Sources {
		g.Go(func() error {
			payload, err := deps.Source.Read(ctx, src)
			if err != nil {
				results[i].err = err
				return nil
			}
			idx, err := docindex.Load(payload)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].counts = idx.CountByCategory()
			results[i].total = idx.Len()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for i, src := range c.Sources {
		r := results[i]
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "FAIL  %s: %s\n", src, checkErrorText(r.err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "ok    %s: %d entries (%s)\n", src, r.total, formatCounts(r.counts))
		for _, category := range slices.Sorted(maps.Keys(r.counts)) {
			if !category.Known() {
				fmt.Fprintf(deps.Stdout, "      warning: unknown category %q (%d entries)\n", category, r.counts[category])
			}
		}
	}

	if failed > 0 {
		return docindex.Errorf(docindex.EMALFORMED, "%d of %d sources failed", failed, len(c.Sources))
	}
	return nil
}

func checkErrorText(err error) string {
	if docindex.ErrorCode(err) == docindex.EINTERNAL {
		return err.Error()
	}
	return docindex.ErrorMessage(err)
}

// formatCounts renders per-category counts sorted by category name.
func formatCounts(counts map[docindex.Category]int) string {
	parts := make([]string, 0, len(counts))
	for _, category := range slices.Sorted(maps.Keys(counts)) {
		parts = append(parts, fmt.Sprintf("%s=%d", category, counts[category]))
	}
	return strings.Join(parts, ", ")
}

package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	opts, err := c.loadOptions(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	payload, err := deps.Source.Read(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading %s: %v\n", c.Source, err)
		return err
	}
	checksum := deps.Checksum(c.fingerprint(payload))

	existing, err := deps.Collections.FindCollections(deps.Ctx, docindex.CollectionFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 && !c.Force {
		if existing[0].Checksum == checksum {
			fmt.Fprintf(deps.Stdout, "Collection %q unchanged (%d entries). Use --force to import it again.\n", c.Name, existing[0].EntryCount)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: collection %q already exists with different content or options. Use --force to replace it.\n", c.Name)
		return docindex.Errorf(docindex.ECONFLICT, "collection %q already exists", c.Name)
	}

	// The stored collection is only replaced once the new payload is known
	// to be importable.
	entries, err := docindex.ParseEntries(payload, opts...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Source, docindex.ErrorMessage(err))
		return err
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: entry %d: %s\n", c.Source, i, docindex.ErrorMessage(err))
			return err
		}
	}

	if len(existing) > 0 {
		if err := deps.Collections.DeleteCollection(deps.Ctx, existing[0].ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
	}

	collection := &docindex.Collection{
		Name:     c.Name,
		Source:   c.Source,
		Checksum: checksum,
	}
	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if err := deps.Entries.CreateEntries(deps.Ctx, collection.ID, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		// Do not leave an empty collection behind.
		_ = deps.Collections.DeleteCollection(deps.Ctx, collection.ID)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added collection %q (%s)\n", c.Name, collection.ID)
	fmt.Fprintf(deps.Stdout, "  Stored %d entries\n", len(entries))
	return nil
}

// fingerprint identifies an import: the payload plus the options that change
// what gets stored from it.
func (c *AddCmd) fingerprint(payload []byte) []byte {
	text := c.Text
	if text == "" {
		text = string(docindex.TextRaw)
	}
	b := make([]byte, 0, len(payload)+32)
	b = append(b, payload...)
	return fmt.Appendf(b, "\x00text=%s\x00skip-malformed=%t", text, c.SkipMalformed)
}

func (c *AddCmd) loadOptions(deps *Dependencies) ([]docindex.LoadOption, error) {
	var opts []docindex.LoadOption

	if c.SkipMalformed {
		opts = append(opts, docindex.SkipMalformed(func(e *docindex.MalformedDataError) {
			fmt.Fprintf(deps.Stderr, "  skip %v\n", e)
		}))
	}

	mode := docindex.TextMode(c.Text)
	if mode != "" && mode != docindex.TextRaw {
		n, ok := deps.Normalizers[mode]
		if !ok {
			return nil, docindex.Errorf(docindex.EINVALID, "unsupported text mode %q", c.Text)
		}
		opts = append(opts, docindex.WithNormalizer(n))
	}

	return opts, nil
}

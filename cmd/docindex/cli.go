package main

import (
	"context"
	"io"

	"github.com/fwojciec/docindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Collections docindex.CollectionService
	Entries     docindex.EntryService
	Source      docindex.Source
	Asker       docindex.Asker

	// Normalizers maps text modes other than raw to their implementation.
	Normalizers map[docindex.TextMode]docindex.Normalizer

	// NewLocationFilter, if set, sizes a location filter for an index.
	NewLocationFilter func(n uint) docindex.LocationFilter

	// NewExporter returns an exporter writing below dir.
	NewExporter func(dir string) docindex.Exporter

	// Checksum fingerprints raw payloads to detect unchanged re-imports.
	Checksum func(data []byte) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Add    AddCmd    `cmd:"" help:"Import a search index as a named collection"`
	List   ListCmd   `cmd:"" help:"List all collections"`
	Search SearchCmd `cmd:"" help:"Search a collection for entries containing text"`
	Show   ShowCmd   `cmd:"" help:"Show the entry at a location"`
	Delete DeleteCmd `cmd:"" help:"Delete a collection and its entries"`
	Check  CheckCmd  `cmd:"" help:"Validate search indexes without importing them"`
	Export ExportCmd `cmd:"" help:"Export a collection as markdown files"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a collection"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name          string `arg:"" help:"Collection name"`
	Source        string `arg:"" help:"Path, directory or URL of the search index"`
	Force         bool   `short:"f" help:"Replace an existing collection"`
	SkipMalformed bool   `help:"Skip malformed records instead of failing"`
	Text          string `enum:"raw,plain,markdown" default:"raw" help:"How to normalize entry text (raw, plain, markdown)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name     string `arg:"" help:"Collection name"`
	Query    string `arg:"" help:"Text to search for"`
	Limit    int    `short:"n" default:"0" help:"Maximum number of results (0 for all)"`
	Category string `short:"c" help:"Only entries of this category"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name     string `arg:"" help:"Collection name"`
	Location string `arg:"" help:"Entry location, e.g. api/#Gridkit.step!"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Sources     []string `arg:"" help:"Paths, directories or URLs of search indexes"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent read limit"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Collection name"`
	Dir  string `arg:"" help:"Output directory"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Collection name"`
	Question string `arg:"" help:"Question to ask about the documentation"`
}

package docindex

import (
	"context"
	"strings"
)

// FormatEntries formats entries for display or LLM context.
// Each entry gets a header of its title and location followed by its text.
// Entries are separated by blank lines.
func FormatEntries(entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		header := "## " + e.Title + " (" + e.Location + ")"
		if e.Text == "" {
			parts = append(parts, header)
			continue
		}
		parts = append(parts, header+"\n"+strings.TrimSpace(e.Text))
	}

	return strings.Join(parts, "\n\n")
}

// Exporter writes the entries of a collection to an external destination.
type Exporter interface {
	Export(ctx context.Context, name string, entries []*Entry) error
}

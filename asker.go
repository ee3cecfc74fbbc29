package docindex

import "context"

// Asker provides natural language question answering over documentation.
type Asker interface {
	// Ask answers a natural language question about a collection.
	// Returns ENOTFOUND if the collection has no entries.
	Ask(ctx context.Context, collectionID string, question string) (string, error)
}

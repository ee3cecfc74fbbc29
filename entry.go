package docindex

import "context"

// Category classifies the kind of documentation unit an entry describes.
type Category string

// Category values emitted by documentation generators. The set is open;
// generators may add kinds not listed here.
const (
	CategorySection  Category = "section"
	CategoryPage     Category = "page"
	CategoryModule   Category = "module"
	CategoryType     Category = "type"
	CategoryFunction Category = "function"
	CategoryMacro    Category = "macro"
	CategoryConstant Category = "constant"
)

// Known reports whether c is one of the predefined categories.
func (c Category) Known() bool {
	switch c {
	case CategorySection, CategoryPage, CategoryModule, CategoryType,
		CategoryFunction, CategoryMacro, CategoryConstant:
		return true
	}
	return false
}

// Entry is one addressable unit of documentation in a search index.
type Entry struct {
	Location string   `json:"location"`
	Page     string   `json:"page"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Location == "" {
		return Errorf(EINVALID, "entry location required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.Category == "" {
		return Errorf(EINVALID, "entry category required")
	}
	return nil
}

// EntryService represents a service for managing the stored entries of a
// collection.
type EntryService interface {
	// CreateEntries stores entries for a collection, preserving their order.
	// Returns ENOTFOUND if the collection does not exist.
	CreateEntries(ctx context.Context, collectionID string, entries []*Entry) error

	// FindEntries retrieves entries matching the filter in insertion order.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	CollectionID *string   `json:"collectionId"`
	Category     *Category `json:"category"`
	Location     *string   `json:"location"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

package docindex

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// LocationFilter is a probabilistic set of locations. Test may report false
// positives but never false negatives.
type LocationFilter interface {
	Add(location string)
	Test(location string) bool
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithLocationFilter makes ByLocation consult a filter built by newFilter
// before scanning. newFilter receives the number of entries to size for.
func WithLocationFilter(newFilter func(n uint) LocationFilter) IndexOption {
	return func(idx *Index) {
		idx.newFilter = newFilter
	}
}

// Index is an immutable, ordered collection of entries. It is safe for
// concurrent use by any number of readers.
type Index struct {
	entries []Entry
	folded  []foldedEntry

	newFilter func(n uint) LocationFilter
	filter    LocationFilter
}

// foldedEntry holds the case-folded searchable fields of an entry.
type foldedEntry struct {
	title string
	text  string
	page  string
}

// NewIndex builds an Index over entries in the given order. The entries are
// copied; later changes to the slice or its elements do not affect the index.
// Nil elements are ignored.
func NewIndex(entries []*Entry, opts ...IndexOption) *Index {
	idx := &Index{}
	for _, opt := range opts {
		opt(idx)
	}

	idx.entries = make([]Entry, 0, len(entries))
	idx.folded = make([]foldedEntry, 0, len(entries))

	fold := cases.Fold()
	for _, e := range entries {
		if e == nil {
			continue
		}
		idx.entries = append(idx.entries, *e)
		idx.folded = append(idx.folded, foldedEntry{
			title: fold.String(e.Title),
			text:  fold.String(e.Text),
			page:  fold.String(e.Page),
		})
	}

	if idx.newFilter != nil {
		idx.filter = idx.newFilter(uint(max(len(idx.entries), 1)))
		for i := range idx.entries {
			idx.filter.Add(idx.entries[i].Location)
		}
	}

	return idx
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// All returns every entry in insertion order.
func (idx *Index) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for i := range idx.entries {
			e := idx.entries[i]
			if !yield(&e) {
				return
			}
		}
	}
}

// Search returns, in insertion order, every entry whose title, text or page
// contains query, ignoring case. An empty query matches nothing. The
// returned sequence may be iterated any number of times.
func (idx *Index) Search(query string) iter.Seq[*Entry] {
	if query == "" {
		return func(func(*Entry) bool) {}
	}

	q := cases.Fold().String(query)
	return func(yield func(*Entry) bool) {
		for i := range idx.entries {
			if !idx.folded[i].contains(q) {
				continue
			}
			e := idx.entries[i]
			if !yield(&e) {
				return
			}
		}
	}
}

// SearchN collects up to limit results of Search. A limit of zero or less
// collects every match.
func (idx *Index) SearchN(query string, limit int) []*Entry {
	var out []*Entry
	for e := range idx.Search(query) {
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ByLocation returns the first entry whose location equals location.
func (idx *Index) ByLocation(location string) (*Entry, bool) {
	if idx.filter != nil && !idx.filter.Test(location) {
		return nil, false
	}
	for i := range idx.entries {
		if idx.entries[i].Location == location {
			e := idx.entries[i]
			return &e, true
		}
	}
	return nil, false
}

// CountByCategory returns the number of entries in each category.
func (idx *Index) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for i := range idx.entries {
		counts[idx.entries[i].Category]++
	}
	return counts
}

func (f foldedEntry) contains(q string) bool {
	return strings.Contains(f.title, q) ||
		strings.Contains(f.text, q) ||
		strings.Contains(f.page, q)
}

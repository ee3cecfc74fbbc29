package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("formats single entry", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.Entry{
			{Location: "#a", Title: "Foo", Text: "bar\n\n"},
		}

		assert.Equal(t, "## Foo (#a)\nbar", docindex.FormatEntries(entries))
	})

	t.Run("omits body when text is empty", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.Entry{
			{Location: "#Growth-rules-1", Title: "Growth rules"},
		}

		assert.Equal(t, "## Growth rules (#Growth-rules-1)", docindex.FormatEntries(entries))
	})

	t.Run("separates entries with blank line", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.Entry{
			{Location: "#a", Title: "One", Text: "First."},
			{Location: "#b", Title: "Two", Text: "Second."},
		}

		assert.Equal(t, "## One (#a)\nFirst.\n\n## Two (#b)\nSecond.", docindex.FormatEntries(entries))
	})

	t.Run("returns empty string for no entries", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.FormatEntries(nil))
	})
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	assert.True(t, docindex.IsRemote("https://example.com/search_index.js"))
	assert.True(t, docindex.IsRemote("http://localhost:8000/search_index.js"))
	assert.False(t, docindex.IsRemote("docs/build/search_index.js"))
	assert.False(t, docindex.IsRemote("/tmp/https-file.js"))
}

func TestContainsMarkup(t *testing.T) {
	t.Parallel()

	assert.True(t, docindex.ContainsMarkup("<p>Hello</p>"))
	assert.True(t, docindex.ContainsMarkup(`see <a href="#x">x</a>`))
	assert.True(t, docindex.ContainsMarkup("line<br/>break"))
	assert.False(t, docindex.ContainsMarkup("if a < b and b > c"))
	assert.False(t, docindex.ContainsMarkup("x &amp; y"))
	assert.False(t, docindex.ContainsMarkup(""))
}

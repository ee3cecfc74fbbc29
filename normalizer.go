package docindex

import "regexp"

// Normalizer rewrites the rendered text of an entry, for example to strip
// markup that some generators leave in the index.
type Normalizer interface {
	// Normalize returns the rewritten text. Text without markup is
	// returned unchanged.
	Normalize(text string) (string, error)
}

// TextMode selects how entry text is normalized on import.
type TextMode string

// TextMode values.
const (
	TextRaw      TextMode = "raw"
	TextPlain    TextMode = "plain"
	TextMarkdown TextMode = "markdown"
)

var markupRe = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?/?>`)

// ContainsMarkup reports whether text contains something that looks like an
// HTML tag. Comparisons such as "a < b" do not count.
func ContainsMarkup(text string) bool {
	return markupRe.MatchString(text)
}

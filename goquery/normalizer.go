// Package goquery provides a docindex.Normalizer that reduces HTML entry
// text to plain text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
)

// blockSelector matches elements that end a line of text when rendered.
const blockSelector = "p, div, pre, li, ul, ol, table, tr, br, h1, h2, h3, h4, h5, h6, blockquote, dt, dd"

// Ensure TextNormalizer implements docindex.Normalizer at compile time.
var _ docindex.Normalizer = (*TextNormalizer)(nil)

// TextNormalizer strips markup from entry text, keeping line breaks between
// block elements.
type TextNormalizer struct{}

// NewTextNormalizer creates a new TextNormalizer.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize returns the plain text of an HTML fragment. Text without markup
// is returned unchanged.
func (n *TextNormalizer) Normalize(text string) (string, error) {
	if !docindex.ContainsMarkup(text) {
		return text, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style").Remove()
	doc.Find(blockSelector).AfterHtml("\n")

	return collapseLines(doc.Text()), nil
}

// collapseLines squeezes runs of whitespace within lines and drops blank
// lines.
func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Package htmltomarkdown provides a docindex.Normalizer that converts HTML
// entry text to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docindex"
)

// Ensure Normalizer implements docindex.Normalizer at compile time.
var _ docindex.Normalizer = (*Normalizer)(nil)

// Normalizer wraps html-to-markdown to convert entry text to Markdown.
type Normalizer struct {
	conv *converter.Converter
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Normalizer{conv: conv}
}

// Normalize converts HTML text into Markdown. Text without markup is
// returned unchanged.
func (n *Normalizer) Normalize(text string) (string, error) {
	if !docindex.ContainsMarkup(text) {
		return text, nil
	}

	result, err := n.conv.ConvertString(text)
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "failed to convert HTML: %v", err)
	}

	return strings.TrimSpace(result), nil
}

// Package gemini answers questions about imported documentation using
// Google Gemini, with search hits from the collection as context.
package gemini

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/fwojciec/docindex"
	"google.golang.org/genai"
)

// DefaultMaxEntries caps how many entries are sent as context.
const DefaultMaxEntries = 40

// Ensure Asker implements docindex.Asker at compile time.
var _ docindex.Asker = (*Asker)(nil)

// Asker implements docindex.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	entries docindex.EntryService
	model   string

	// MaxEntries caps the number of context entries.
	MaxEntries int

	// Tokens and TokenBudget, when both set, limit the context to what
	// FitEntries keeps.
	Tokens      docindex.TokenCounter
	TokenBudget int
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, entries docindex.EntryService, model string) *Asker {
	return &Asker{client: client, entries: entries, model: model, MaxEntries: DefaultMaxEntries}
}

// Ask answers a natural language question about a collection.
func (a *Asker) Ask(ctx context.Context, collectionID, question string) (string, error) {
	if collectionID == "" {
		return "", docindex.Errorf(docindex.EINVALID, "collection ID required")
	}
	if strings.TrimSpace(question) == "" {
		return "", docindex.Errorf(docindex.EINVALID, "question required")
	}

	stored, err := a.entries.FindEntries(ctx, docindex.EntryFilter{CollectionID: &collectionID})
	if err != nil {
		return "", err
	}
	if len(stored) == 0 {
		return "", docindex.Errorf(docindex.ENOTFOUND, "no entries found for collection %q", collectionID)
	}

	selected := SelectContext(docindex.NewIndex(stored), question, a.MaxEntries)
	prompt, err := a.fitPrompt(ctx, selected, question)
	if err != nil {
		return "", err
	}

	if a.client == nil {
		return "", docindex.Errorf(docindex.EINTERNAL, "gemini client not configured")
	}
	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docindex.Errorf(docindex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// fitPrompt builds the prompt from as many leading entries as fit the
// token budget.
func (a *Asker) fitPrompt(ctx context.Context, entries []*docindex.Entry, question string) (string, error) {
	if a.Tokens != nil && a.TokenBudget > 0 {
		fitted, err := FitEntries(ctx, a.Tokens, entries, question, a.TokenBudget)
		if err != nil {
			return "", err
		}
		entries = fitted
	}
	return BuildUserPrompt(entries, question), nil
}

// FitEntries returns the longest prefix of entries whose prompt stays within
// budget tokens. The question and prompt framing are counted once and every
// entry block once, so the result is an estimate at block boundaries. The
// first entry is always kept.
func FitEntries(ctx context.Context, counter docindex.TokenCounter, entries []*docindex.Entry, question string, budget int) ([]*docindex.Entry, error) {
	used, err := counter.CountTokens(ctx, BuildUserPrompt(nil, question))
	if err != nil {
		return nil, fmt.Errorf("count prompt tokens: %w", err)
	}

	n := 0
	for i, e := range entries {
		cost, err := counter.CountTokens(ctx, entryBlock(i, e))
		if err != nil {
			return nil, fmt.Errorf("count tokens of entry %s: %w", e.Location, err)
		}
		if n > 0 && used+cost > budget {
			break
		}
		used += cost
		n++
	}
	return entries[:n], nil
}

// SelectContext picks the entries to send with a question: hits for each
// keyword of the question in keyword order, without repeats, up to limit.
// When no keyword matches, the first limit entries of the index are used.
func SelectContext(idx *docindex.Index, question string, limit int) []*docindex.Entry {
	seen := make(map[docindex.Entry]bool)
	var out []*docindex.Entry

	full := func() bool { return limit > 0 && len(out) >= limit }

	for _, kw := range Keywords(question) {
		for e := range idx.Search(kw) {
			if full() {
				return out
			}
			if seen[*e] {
				continue
			}
			seen[*e] = true
			out = append(out, e)
		}
	}
	if len(out) > 0 {
		return out
	}

	for e := range idx.All() {
		if full() {
			break
		}
		out = append(out, e)
	}
	return out
}

// stopwords are dropped from questions before searching.
var stopwords = []string{
	"about", "does", "from", "have", "how", "into", "that", "the", "then",
	"there", "this", "what", "when", "where", "which", "who", "why", "with", "you", "your",
}

// Keywords splits a question into lowercase search terms of three or more
// characters, skipping common question words.
func Keywords(question string) []string {
	fields := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '!' && r != '.'
	})

	var out []string
	for _, f := range fields {
		f = strings.Trim(f, ".!")
		if len([]rune(f)) < 3 || slices.Contains(stopwords, f) || slices.Contains(out, f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software library documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documentation entries
// and the question.
func BuildUserPrompt(entries []*docindex.Entry, question string) string {
	var sb strings.Builder
	sb.WriteString("<documentation>\n")
	for i, e := range entries {
		sb.WriteString(entryBlock(i, e))
	}
	sb.WriteString("</documentation>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// entryBlock renders the i-th context entry of a prompt.
func entryBlock(i int, e *docindex.Entry) string {
	var sb strings.Builder
	sb.WriteString("<entry>\n")
	fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
	fmt.Fprintf(&sb, "<title>%s</title>\n", e.Title)
	fmt.Fprintf(&sb, "<page>%s</page>\n", e.Page)
	fmt.Fprintf(&sb, "<location>%s</location>\n", e.Location)
	fmt.Fprintf(&sb, "<category>%s</category>\n", e.Category)
	fmt.Fprintf(&sb, "<text>%s</text>\n", strings.TrimSpace(e.Text))
	sb.WriteString("</entry>\n")
	return sb.String()
}

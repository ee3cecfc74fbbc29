package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/docindex"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docindex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens offline with the tokenizer of one Gemini
// model. Counts are of a single user turn, which is how Asker sends prompts.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model. The tokenizer vocabulary is
// downloaded on first use and cached by the genai package.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer for %s: %w", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the number of tokens text occupies as a user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, fmt.Errorf("count tokens for %s: %w", tc.model, err)
	}
	return int(result.TotalTokens), nil
}

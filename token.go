package docindex

import "context"

// TokenCounter measures text in model tokens, used to keep the context sent
// with a question within the model's budget.
type TokenCounter interface {
	// CountTokens returns the number of tokens in text. Empty text is zero.
	CountTokens(ctx context.Context, text string) (int, error)
}

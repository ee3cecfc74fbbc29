package mock

import "github.com/fwojciec/docindex"

var _ docindex.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of docindex.Normalizer.
type Normalizer struct {
	NormalizeFn func(text string) (string, error)
}

func (n *Normalizer) Normalize(text string) (string, error) {
	return n.NormalizeFn(text)
}

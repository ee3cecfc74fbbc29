// Package fs provides file-based reading and exporting of search indexes.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// IndexFileName is the name documentation generators give the payload in
// their build directory.
const IndexFileName = "search_index.js"

// Ensure Source implements docindex.Source at compile time.
var _ docindex.Source = (*Source)(nil)

// Source reads payloads from the local filesystem. A directory is read as
// the IndexFileName inside it.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Read returns the contents of the file at path.
func (s *Source) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "no search index at %s", path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		path = filepath.Join(path, IndexFileName)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "no search index at %s", path)
	}
	return data, err
}

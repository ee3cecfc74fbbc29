package docindex

import (
	"context"
	"strings"
)

// Source reads raw search-index payloads.
type Source interface {
	// Read returns the payload stored at src.
	// Returns ENOTFOUND if nothing exists at src.
	Read(ctx context.Context, src string) ([]byte, error)
}

// IsRemote reports whether src names an http or https resource.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

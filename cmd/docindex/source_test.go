package main_test

import (
	"context"
	"testing"

	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterSource_Read(t *testing.T) {
	t.Parallel()

	named := func(name string) *mock.Source {
		return &mock.Source{
			ReadFn: func(context.Context, string) ([]byte, error) {
				return []byte(name), nil
			},
		}
	}
	router := &main.RouterSource{Local: named("local"), Remote: named("remote")}

	tests := []struct {
		src  string
		want string
	}{
		{"docs/build/search_index.js", "local"},
		{"/abs/search_index.js", "local"},
		{"http://localhost:8000/search_index.js", "remote"},
		{"https://example.com/dev/search_index.js", "remote"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			got, err := router.Read(context.Background(), tt.src)

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

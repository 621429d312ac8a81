package router

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern(t *testing.T) {
	t.Run("extracts a single parameter", func(t *testing.T) {
		res := MatchPattern("/users/{id}", "/users/42")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 1)
		assert.Equal(t, Param{Value: "42", Present: true}, res.Params[0])
	})

	t.Run("requires the parameter segment", func(t *testing.T) {
		assert.False(t, MatchPattern("/users/{id}", "/users").Matched)
		assert.False(t, MatchPattern("/users/{id}", "/users/").Matched)
	})

	t.Run("no match yields empty params", func(t *testing.T) {
		res := MatchPattern("/users/{id}", "/orders/42")
		assert.False(t, res.Matched)
		assert.Empty(t, res.Params)
	})

	t.Run("reconstructs adjacent placeholder boundaries", func(t *testing.T) {
		res := MatchPattern("/files/{dir}/{name}", "/files/a/b/c.txt")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 2)
		assert.Equal(t, "a/b", res.Params[0].Value)
		assert.Equal(t, "c.txt", res.Params[1].Value)
	})

	t.Run("two plain segments", func(t *testing.T) {
		res := MatchPattern("/files/{dir}/{name}", "/files/docs/readme.md")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 2)
		assert.Equal(t, "docs", res.Params[0].Value)
		assert.Equal(t, "readme.md", res.Params[1].Value)
	})

	t.Run("static pattern matches with no params", func(t *testing.T) {
		res := MatchPattern("/about", "/about")
		assert.True(t, res.Matched)
		assert.Empty(t, res.Params)
	})

	t.Run("absent optional group yields an absent param", func(t *testing.T) {
		res := MatchPattern(`/blog(/{id})?`, "/blog")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 2)
		assert.False(t, res.Params[0].Present)
		assert.False(t, res.Params[1].Present)
	})

	t.Run("nested optional segment bounds the outer group", func(t *testing.T) {
		res := MatchPattern(`/blog(/{id})?`, "/blog/5")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 2)
		assert.Equal(t, Param{Value: "", Present: true}, res.Params[0])
		assert.Equal(t, Param{Value: "5", Present: true}, res.Params[1])
	})

	t.Run("participating optional group yields its value", func(t *testing.T) {
		res := MatchPattern(`/blog(/\d+)?`, "/blog/2024")
		require.True(t, res.Matched)
		require.Len(t, res.Params, 1)
		assert.Equal(t, Param{Value: "2024", Present: true}, res.Params[0])
	})

	t.Run("invalid pattern matches nothing", func(t *testing.T) {
		assert.False(t, MatchPattern(`/broken/(`, "/broken/(").Matched)
	})

	t.Run("placeholder count equals param count", func(t *testing.T) {
		tests := []struct {
			pattern string
			path    string
			want    []string
		}{
			{"/{a}", "/x", []string{"x"}},
			{"/{a}/{b}", "/x/y", []string{"x", "y"}},
			{"/{a}/{b}/{c}", "/x/y/z", []string{"x", "y", "z"}},
			{"/v/{a}/s/{b}", "/v/x/s/y", []string{"x", "y"}},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s vs %s", tt.pattern, tt.path), func(t *testing.T) {
				res := MatchPattern(tt.pattern, tt.path)
				require.True(t, res.Matched)
				require.Len(t, res.Params, len(tt.want))
				for i, want := range tt.want {
					assert.Equal(t, Param{Value: want, Present: true}, res.Params[i])
				}
			})
		}
	})
}

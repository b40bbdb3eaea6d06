package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandSubstitutesExactPlaceholderTokens(t *testing.T) {
	got := Expand([]string{"open", "%U", "--flag"}, "http://x")

	assert.Equal(t, []string{"open", "http://x", "--flag"}, got)
}

func TestExpandIgnoresPartialPlaceholderMatches(t *testing.T) {
	// Substitution is exact-token-match, never substring replacement.
	got := Expand([]string{"open%U"}, "http://x")

	assert.Equal(t, []string{"open%U"}, got)
}

func TestExpandReplacesEveryPlaceholderOccurrence(t *testing.T) {
	got := Expand([]string{"%U", "mirror", "%U"}, "https://example.com")

	assert.Equal(t, []string{"https://example.com", "mirror", "https://example.com"}, got)
}

func TestExpandEmptyTemplate(t *testing.T) {
	assert.Empty(t, Expand(nil, "https://example.com"))
	assert.Empty(t, Expand([]string{}, "https://example.com"))
}

func TestExpandDoesNotMutateTemplate(t *testing.T) {
	tokens := []string{"open", "%U"}

	Expand(tokens, "http://x")

	assert.Equal(t, []string{"open", "%U"}, tokens)
}

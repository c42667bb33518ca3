package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDigest(t *testing.T) {
	pages := []*PageRecord{
		{
			URL:         "https://example.com/",
			Path:        "/",
			Title:       "Home",
			Description: "The example site.",
			Headings:    []Heading{{Level: 1, Text: "Welcome"}, {Level: 3, Text: "Deep heading"}},
			Paragraphs:  []string{"An introduction paragraph about the site."},
		},
		{
			URL:   "https://example.com/empty",
			Path:  "/empty",
			Title: "Empty",
		},
	}

	digest := generateDigest(pages, "https://example.com")

	assert.True(t, strings.HasPrefix(digest, "# example.com\n"))
	assert.Contains(t, digest, "> The example site.")
	assert.Contains(t, digest, "- [Home](https://example.com/)")
	assert.Contains(t, digest, "- [Empty](https://example.com/empty)")

	// Only pages with headings or paragraphs get a subsection.
	assert.Contains(t, digest, "### Home")
	assert.NotContains(t, digest, "### Empty")

	// Headings above level 2 are left out of the subsection bullets.
	assert.Contains(t, digest, "- Welcome")
	assert.NotContains(t, digest, "- Deep heading")
	assert.Contains(t, digest, "An introduction paragraph about the site.")
}

func TestGenerateDigestNoRootDescription(t *testing.T) {
	pages := []*PageRecord{{URL: "https://example.com/a", Path: "/a", Title: "A"}}
	digest := generateDigest(pages, "https://example.com")
	assert.NotContains(t, digest, ">")
}

func TestDigestParagraphTruncation(t *testing.T) {
	long := strings.Repeat("x", 310)
	exact := strings.Repeat("y", 300)

	pages := []*PageRecord{
		{URL: "https://example.com/long", Path: "/long", Title: "Long", Paragraphs: []string{long}},
		{URL: "https://example.com/exact", Path: "/exact", Title: "Exact", Paragraphs: []string{exact}},
	}
	digest := generateDigest(pages, "https://example.com")

	assert.Contains(t, digest, strings.Repeat("x", 300)+"...")
	assert.NotContains(t, digest, strings.Repeat("x", 301))
	assert.Contains(t, digest, exact)
	assert.NotContains(t, digest, exact+"...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcde", 5))
	assert.Equal(t, "abcde...", truncate("abcdef", 5))
}

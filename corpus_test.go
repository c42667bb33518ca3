package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCorpus(t *testing.T) {
	pages := []*PageRecord{
		{
			URL:     "https://example.com/",
			Title:   "Home",
			RawHTML: "<html><body><h1>Home</h1><p>Welcome to the site.</p></body></html>",
		},
		{
			URL:           "https://example.com/about",
			Title:         "About",
			RawHTML:       "",
			ExtractedText: "Fallback text for the about page.",
		},
	}

	corpus := generateCorpus(pages)

	assert.True(t, strings.HasPrefix(corpus, "# Home\n\nSource: https://example.com/\n"))
	assert.Contains(t, corpus, "Welcome to the site.")
	assert.Contains(t, corpus, "# About")
	assert.Contains(t, corpus, "Fallback text for the about page.")
}

func TestGenerateCorpusEmpty(t *testing.T) {
	assert.Empty(t, generateCorpus(nil))
}

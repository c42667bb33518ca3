package main

import (
	"fmt"
	"strings"

	"github.com/jaytaylor/html2text"
)

// generateCorpus concatenates every page as plain text, banner first,
// for offline or LLM consumption. Pages whose HTML cannot be rendered
// to text fall back to the already-flattened extraction text.
func generateCorpus(pages []*PageRecord) string {
	var b strings.Builder

	for i, page := range pages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "# %s\n\nSource: %s\n\n---\n\n", page.Title, page.URL)

		text, err := html2text.FromString(page.RawHTML, html2text.Options{OmitLinks: true})
		if err != nil || strings.TrimSpace(text) == "" {
			text = page.ExtractedText
		}
		b.WriteString(strings.TrimSpace(text))
		b.WriteString("\n")
	}

	return b.String()
}

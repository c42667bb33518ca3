package main

import (
	"fmt"
	"strings"
)

// maxDigestParagraph caps the first-paragraph excerpt in a page's
// digest subsection.
const maxDigestParagraph = 300

// generateDigest folds all extracted pages into a condensed site summary:
// a site heading, the root page's description, a flat link list, and one
// subsection per page that has headings or paragraphs.
func generateDigest(pages []*PageRecord, baseURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", urlHost(baseURL))

	if root := rootPage(pages); root != nil && root.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", root.Description)
	}

	b.WriteString("## Pages\n\n")
	for _, page := range pages {
		fmt.Fprintf(&b, "- [%s](%s)\n", page.Title, page.URL)
		if page.Description != "" {
			fmt.Fprintf(&b, "  %s\n", page.Description)
		}
	}

	for _, page := range pages {
		if len(page.Headings) == 0 && len(page.Paragraphs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n\n%s\n\n", page.Title, page.URL)
		for _, h := range page.Headings {
			if h.Level <= 2 {
				fmt.Fprintf(&b, "- %s\n", h.Text)
			}
		}
		if len(page.Paragraphs) > 0 {
			fmt.Fprintf(&b, "\n%s\n", truncate(page.Paragraphs[0], maxDigestParagraph))
		}
	}

	return b.String()
}

// rootPage finds the page whose path is the site root.
func rootPage(pages []*PageRecord) *PageRecord {
	for _, page := range pages {
		if page.Path == "/" || page.Path == "" {
			return page
		}
	}
	return nil
}

// truncate cuts s to at most limit runes, appending an ellipsis only
// when something was actually cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

package main

import (
	"fmt"
	"strings"
	"time"
)

// maxReportParagraphs caps the Content section of each page in the
// markdown report. Paragraph text itself is never truncated here.
const maxReportParagraphs = 10

// generateReport renders the long-form markdown report: a document
// header followed by one section per page in input order.
func generateReport(pages []*PageRecord, baseURL string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Site Report: %s\n\n", urlHost(baseURL))
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "Total pages: %d\n\n---\n\n", len(pages))

	for _, page := range pages {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", page.Title, page.URL)
		if page.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", page.Description)
		}

		if len(page.Headings) > 0 {
			b.WriteString("### Structure\n\n")
			for _, h := range page.Headings {
				indent := strings.Repeat("  ", h.Level-1)
				fmt.Fprintf(&b, "%s- %s\n", indent, h.Text)
			}
			b.WriteString("\n")
		}

		if len(page.Paragraphs) > 0 {
			b.WriteString("### Content\n\n")
			for i, p := range page.Paragraphs {
				if i >= maxReportParagraphs {
					break
				}
				fmt.Fprintf(&b, "%s\n\n", p)
			}
		}

		if len(page.Images) > 0 {
			b.WriteString("### Images\n\n")
			for _, img := range page.Images {
				alt := img.Alt
				if alt == "" {
					alt = "image"
				}
				fmt.Fprintf(&b, "- %s: %s\n", alt, img.Src)
			}
			b.WriteString("\n")
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}

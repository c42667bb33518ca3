package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReport(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	long := strings.Repeat("z", 500)

	pages := []*PageRecord{
		{
			URL:         "https://example.com/",
			Path:        "/",
			Title:       "Home",
			Description: "Front page.",
			Headings:    []Heading{{Level: 1, Text: "Top"}, {Level: 3, Text: "Inner"}},
			Paragraphs:  []string{long},
			Images:      []ImageRef{{Src: "/logo.png", Alt: "Logo"}, {Src: "/plain.png"}},
		},
	}

	report := generateReport(pages, "https://example.com", now)

	assert.True(t, strings.HasPrefix(report, "# Site Report: example.com\n"))
	assert.Contains(t, report, "Generated: 2025-06-01T12:00:00Z")
	assert.Contains(t, report, "Total pages: 1")
	assert.Contains(t, report, "## Home")
	assert.Contains(t, report, "Front page.")

	// Heading indentation is (level-1) two-space units.
	assert.Contains(t, report, "- Top\n")
	assert.Contains(t, report, "    - Inner\n")

	// Report paragraphs are emitted verbatim, never truncated.
	assert.Contains(t, report, long)
	assert.NotContains(t, report, "...")

	assert.Contains(t, report, "- Logo: /logo.png")
	assert.Contains(t, report, "- image: /plain.png")
}

func TestGenerateReportParagraphCap(t *testing.T) {
	var paragraphs []string
	for i := 0; i < 15; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf("Paragraph number %02d with enough length.", i))
	}
	pages := []*PageRecord{{URL: "https://example.com/", Path: "/", Title: "Home", Paragraphs: paragraphs}}

	report := generateReport(pages, "https://example.com", time.Now())

	assert.Contains(t, report, "Paragraph number 09")
	assert.NotContains(t, report, "Paragraph number 10")
}

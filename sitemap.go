package main

import (
	"sort"
	"strings"
)

// buildSitemap derives one entry per page, ordered by nesting depth.
// Depth is the raw count of slash characters in the page path; entries
// of equal depth keep their input order.
func buildSitemap(pages []*PageRecord) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, SitemapEntry{
			URL:   page.URL,
			Title: page.Title,
			Depth: strings.Count(page.Path, "/"),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Depth < entries[j].Depth
	})
	return entries
}

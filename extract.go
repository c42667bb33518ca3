package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Paragraphs at or below this length are assumed to be UI chrome
// (buttons, labels, cookie banners) rather than content.
const minParagraphLen = 20

// Flattened text fragments at or below this length are dropped.
const minFragmentLen = 5

// extractPage parses one page's HTML into a structured record. Extraction
// degrades field by field on malformed markup; it only fails when the
// document cannot be parsed at all.
func extractPage(htmlSrc, pageURL string) (*PageRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, fmt.Errorf("parse html for %s: %w", pageURL, err)
	}

	rec := &PageRecord{
		URL:        pageURL,
		Path:       urlPath(pageURL),
		Headings:   []Heading{},
		Paragraphs: []string{},
		Lists:      []ListBlock{},
		Links:      []LinkRef{},
		Images:     []ImageRef{},
		RawHTML:    htmlSrc,
	}

	rec.Title = extractTitle(doc)
	rec.Description = extractDescription(doc)
	extractHeadings(doc, rec)
	extractParagraphs(doc, rec)
	extractLists(doc, rec)
	extractLinks(doc, rec, pageURL)
	extractImages(doc, rec)
	rec.Meta = extractMetadata(doc)
	rec.ExtractedText = flattenText(doc)

	return rec, nil
}

// extractTitle resolves the page title: <title>, then the first h1,
// then a literal placeholder. First non-empty wins.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "Untitled"
}

func extractDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && strings.TrimSpace(desc) != "" {
		return strings.TrimSpace(desc)
	}
	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}

func extractHeadings(doc *goquery.Document, rec *PageRecord) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		rec.Headings = append(rec.Headings, Heading{Level: level, Text: text})
	})
}

func extractParagraphs(doc *goquery.Document, rec *PageRecord) {
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minParagraphLen {
			rec.Paragraphs = append(rec.Paragraphs, text)
		}
	})
}

// extractLists collects ul/ol blocks with only their direct li children,
// so items of nested sub-lists are not counted twice.
func extractLists(doc *goquery.Document, rec *PageRecord) {
	doc.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		kind := "unordered"
		if goquery.NodeName(s) == "ol" {
			kind = "ordered"
		}
		var items []string
		s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) > 0 {
			rec.Lists = append(rec.Lists, ListBlock{Kind: kind, Items: items})
		}
	})
}

func extractLinks(doc *goquery.Document, rec *PageRecord, pageURL string) {
	pageHost := urlHost(pageURL)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		rec.Links = append(rec.Links, LinkRef{
			Href:     href,
			Text:     strings.TrimSpace(s.Text()),
			External: isExternalHref(href, pageHost),
		})
	})
}

// isExternalHref flags absolute links whose host does not contain the
// page's own hostname. Substring containment rather than exact host
// equality is kept for compatibility with prior output.
func isExternalHref(href, pageHost string) bool {
	if !strings.HasPrefix(href, "http") {
		return false
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return false
	}
	return !strings.Contains(parsed.Hostname(), pageHost)
}

func extractImages(doc *goquery.Document, rec *PageRecord) {
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			return
		}
		rec.Images = append(rec.Images, ImageRef{Src: src, Alt: s.AttrOr("alt", "")})
	})
}

func extractMetadata(doc *goquery.Document) PageMetadata {
	meta := PageMetadata{}
	meta.Charset, _ = doc.Find("meta[charset]").Attr("charset")
	meta.Viewport, _ = doc.Find(`meta[name="viewport"]`).Attr("content")
	meta.Robots, _ = doc.Find(`meta[name="robots"]`).Attr("content")
	meta.Canonical, _ = doc.Find(`link[rel="canonical"]`).Attr("href")
	meta.OGTitle, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	meta.OGDescription, _ = doc.Find(`meta[property="og:description"]`).Attr("content")
	meta.OGImage, _ = doc.Find(`meta[property="og:image"]`).Attr("content")

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var block any
		// A block that fails to parse is skipped; it never fails the page.
		if err := json.Unmarshal([]byte(s.Text()), &block); err != nil {
			return
		}
		meta.StructuredData = append(meta.StructuredData, block)
	})
	return meta
}

// textSelectors are the elements whose trimmed text makes up the
// flattened full-text view of a page.
const textSelectors = "h1, h2, h3, h4, h5, h6, p, li, td, th, blockquote, figcaption"

// flattenText renders the page's readable text: non-content subtrees are
// stripped from a working copy, then text-bearing elements are collected
// in document order and joined with blank lines.
func flattenText(doc *goquery.Document) string {
	clone := goquery.CloneDocument(doc)
	clone.Find("script, style, noscript, iframe").Remove()

	body := clone.Find("body")
	if body.Length() == 0 {
		return ""
	}

	var parts []string
	body.Find(textSelectors).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minFragmentLen {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}

func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Path
}

func urlHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

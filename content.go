package main

import "time"

// PageRecord holds the structured content extracted from a single HTML page.
type PageRecord struct {
	URL           string       `json:"url"`
	Path          string       `json:"path"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Headings      []Heading    `json:"headings"`
	Paragraphs    []string     `json:"paragraphs"`
	Lists         []ListBlock  `json:"lists"`
	Links         []LinkRef    `json:"links"`
	Images        []ImageRef   `json:"images"`
	Meta          PageMetadata `json:"meta"`
	RawHTML       string       `json:"raw_html"`
	ExtractedText string       `json:"extracted_text"`
}

// Heading is one h1-h6 element in document order.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// ListBlock is one ul/ol element with its direct item texts.
type ListBlock struct {
	Kind  string   `json:"kind"` // "unordered" or "ordered"
	Items []string `json:"items"`
}

// LinkRef is one anchor with a usable href.
type LinkRef struct {
	Href     string `json:"href"`
	Text     string `json:"text"`
	External bool   `json:"external"`
}

// ImageRef is one img element with a non-empty src.
type ImageRef struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// PageMetadata holds head-section metadata for a page.
type PageMetadata struct {
	Charset        string `json:"charset,omitempty"`
	Viewport       string `json:"viewport,omitempty"`
	Robots         string `json:"robots,omitempty"`
	Canonical      string `json:"canonical,omitempty"`
	OGTitle        string `json:"og_title,omitempty"`
	OGDescription  string `json:"og_description,omitempty"`
	OGImage        string `json:"og_image,omitempty"`
	StructuredData []any  `json:"structured_data,omitempty"`
}

// AssetRecord describes one downloaded non-page resource.
type AssetRecord struct {
	URL       string `json:"url"`
	LocalPath string `json:"local_path"`
	Kind      string `json:"kind"` // style, script, image, font, other
	Size      int64  `json:"size"`
}

// SitemapEntry is derived from a PageRecord; recomputed every run.
type SitemapEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Depth int    `json:"depth"`
}

// SiteContent is the aggregate result of one crawl run. It is assembled
// once by the crawler and never mutated afterwards.
type SiteContent struct {
	BaseURL    string         `json:"base_url"`
	FetchedAt  time.Time      `json:"fetched_at"`
	PageCount  int            `json:"page_count"`
	AssetCount int            `json:"asset_count"`
	Pages      []*PageRecord  `json:"pages"`
	Assets     []AssetRecord  `json:"assets"`
	Sitemap    []SitemapEntry `json:"sitemap"`
	Digest     string         `json:"digest,omitempty"`
	Config     Config         `json:"config"`
}

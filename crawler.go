package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const defaultUserAgent = "sitegrab/1.0 (+https://github.com/helgesverre/sitegrab)"

// mirrorDirName is the subdirectory of the output dir holding the raw
// downloaded files. It is wiped at the start of every run.
const mirrorDirName = "site"

// Config is the full configuration surface of one crawl run.
type Config struct {
	SeedURL        string `json:"seed_url"`
	OutputDir      string `json:"output_dir"`
	Recursive      bool   `json:"recursive"`
	MaxDepth       int    `json:"max_depth"`
	IncludeCSS     bool   `json:"include_css"`
	IncludeJS      bool   `json:"include_js"`
	IncludeImages  bool   `json:"include_images"`
	IncludeAssets  bool   `json:"include_assets"`
	ExtractContent bool   `json:"extract_content"`
	Digest         bool   `json:"digest"`
	Report         bool   `json:"report"`
	Corpus         bool   `json:"corpus"`
	Concurrency    int    `json:"concurrency"`
	TimeoutMS      int    `json:"timeout_ms"`
	UserAgent      string `json:"user_agent"`
}

// RunResult pairs the assembled site content with every non-fatal error
// collected along the way. A run succeeded iff Errors is empty.
type RunResult struct {
	Content *SiteContent
	Errors  []string
}

// Crawler sequences one full run: fetch, reconstruct, extract,
// synthesize, persist.
type Crawler struct {
	cfg     Config
	fetcher Fetcher
	verbose bool
}

// NewCrawler validates the seed URL and builds a crawler around the
// given fetch engine.
func NewCrawler(cfg Config, fetcher Fetcher, verbose bool) (*Crawler, error) {
	parsed, err := url.Parse(cfg.SeedURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", cfg.SeedURL)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Crawler{cfg: cfg, fetcher: fetcher, verbose: verbose}, nil
}

// Run executes the crawl and persists all outputs. Non-fatal errors
// accumulate in the result; only output-directory setup can fail the
// run outright.
func (c *Crawler) Run() (*RunResult, error) {
	result := &RunResult{}
	mirrorDir := filepath.Join(c.cfg.OutputDir, mirrorDirName)

	// Clean slate: no record survives across runs.
	if err := os.RemoveAll(mirrorDir); err != nil {
		return nil, fmt.Errorf("failed to clear mirror directory: %w", err)
	}
	if err := os.MkdirAll(mirrorDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	resources, err := c.fetcher.Fetch(FetchConfig{
		SeedURL:       c.cfg.SeedURL,
		TargetDir:     mirrorDir,
		Recursive:     c.cfg.Recursive,
		MaxDepth:      c.cfg.MaxDepth,
		Concurrency:   c.cfg.Concurrency,
		Timeout:       time.Duration(c.cfg.TimeoutMS) * time.Millisecond,
		UserAgent:     c.cfg.UserAgent,
		IncludeCSS:    c.cfg.IncludeCSS,
		IncludeJS:     c.cfg.IncludeJS,
		IncludeImages: c.cfg.IncludeImages,
		IncludeAssets: c.cfg.IncludeAssets,
	}, admitURL)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("fetch failed: %v", err))
		resources = nil
	}
	if c.verbose {
		logInfo("Fetched %d resources", len(resources))
	}

	content := &SiteContent{
		BaseURL:   c.cfg.SeedURL,
		FetchedAt: time.Now().UTC(),
		Pages:     []*PageRecord{},
		Assets:    []AssetRecord{},
		Config:    c.cfg,
	}

	// Extraction runs sequentially over whatever the fetch phase
	// managed to download.
	var contentPaths map[string]string
	if c.cfg.ExtractContent {
		contentPaths = make(map[string]string)
	}
	for _, res := range resources {
		if res.Kind != "page" {
			content.Assets = append(content.Assets, AssetRecord{
				URL:       res.URL,
				LocalPath: res.LocalPath,
				Kind:      res.Kind,
				Size:      res.Size,
			})
			continue
		}
		if !c.cfg.ExtractContent {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(mirrorDir, filepath.FromSlash(res.LocalPath)))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("read %s: %v", res.LocalPath, err))
			continue
		}
		pageURL := reconstructURL(c.cfg.SeedURL, res.LocalPath)
		rec, err := extractPage(string(raw), pageURL)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("extract %s: %v", res.LocalPath, err))
			continue
		}
		content.Pages = append(content.Pages, rec)
		contentPaths[rec.URL] = contentFilePath(c.cfg.SeedURL, res.LocalPath)
		if c.verbose {
			logVisit(rec.URL)
		}
	}

	content.PageCount = len(content.Pages)
	content.AssetCount = len(content.Assets)
	content.Sitemap = buildSitemap(content.Pages)
	if c.cfg.Digest {
		content.Digest = generateDigest(content.Pages, c.cfg.SeedURL)
	}

	c.persist(content, contentPaths, result)

	result.Content = content
	return result, nil
}

// persist writes every configured output, folding write failures into
// the run's error list.
func (c *Crawler) persist(content *SiteContent, contentPaths map[string]string, result *RunResult) {
	out := c.cfg.OutputDir

	if err := writeJSON(filepath.Join(out, "site-content.json"), content); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("write site-content.json: %v", err))
	}
	if err := writeJSON(filepath.Join(out, "assets.json"), content.Assets); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("write assets.json: %v", err))
	}
	if c.cfg.Digest {
		if err := writeText(filepath.Join(out, "digest.txt"), content.Digest); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write digest.txt: %v", err))
		}
	}
	if c.cfg.Report {
		report := generateReport(content.Pages, c.cfg.SeedURL, content.FetchedAt)
		if err := writeText(filepath.Join(out, "report.md"), report); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write report.md: %v", err))
		}
	}
	if c.cfg.Corpus {
		if err := writeText(filepath.Join(out, "corpus.txt"), generateCorpus(content.Pages)); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write corpus.txt: %v", err))
		}
	}

	for _, rec := range content.Pages {
		rel, ok := contentPaths[rec.URL]
		if !ok {
			continue
		}
		dest := filepath.Join(out, "content", filepath.FromSlash(rel))
		if err := writeJSON(dest, rec); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write %s: %v", rel, err))
		}
	}
}

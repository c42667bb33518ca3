package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
)

// Resource describes one downloaded file, page or asset.
type Resource struct {
	URL       string
	LocalPath string // relative to the mirror root
	Kind      string // "page", "style", "script", "image", "font", "other"
	Size      int64
}

// AdmitFunc gates which discovered URLs the fetch engine may follow.
// Implementations must be pure; the engine calls them concurrently.
type AdmitFunc func(candidate, seed string) bool

// FetchConfig is the slice of the run configuration the fetch engine
// needs.
type FetchConfig struct {
	SeedURL       string
	TargetDir     string
	Recursive     bool
	MaxDepth      int
	Concurrency   int
	Timeout       time.Duration
	UserAgent     string
	IncludeCSS    bool
	IncludeJS     bool
	IncludeImages bool
	IncludeAssets bool
}

// Fetcher retrieves a site's reachable resources into a local mirror
// directory and reports what it downloaded. Tests inject a fixture
// implementation so the pipeline runs without network access.
type Fetcher interface {
	Fetch(cfg FetchConfig, admit AdmitFunc) ([]Resource, error)
}

// collyFetcher is the production Fetcher backed by a colly collector.
type collyFetcher struct{}

func newCollyFetcher() Fetcher {
	return &collyFetcher{}
}

func (f *collyFetcher) Fetch(cfg FetchConfig, admit AdmitFunc) ([]Resource, error) {
	opts := []colly.CollectorOption{colly.Async(true)}
	if cfg.Recursive {
		opts = append(opts, colly.MaxDepth(cfg.MaxDepth))
	} else {
		opts = append(opts, colly.MaxDepth(1))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(cfg.UserAgent))
	}

	collector := colly.NewCollector(opts...)
	collector.SetRequestTimeout(cfg.Timeout)

	if err := collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: cfg.Concurrency,
	}); err != nil {
		return nil, fmt.Errorf("failed to set rate limit: %w", err)
	}

	var (
		mu        sync.Mutex
		resources []Resource
	)

	collector.OnResponse(func(r *colly.Response) {
		localRel := localResourcePath(r.Request.URL)
		fullPath := filepath.Join(cfg.TargetDir, filepath.FromSlash(localRel))

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			logError("Failed to create directory for %s: %v", localRel, err)
			return
		}
		if err := os.WriteFile(fullPath, r.Body, 0644); err != nil {
			logError("Failed to write %s: %v", localRel, err)
			return
		}

		kind := classifyResource(localRel, r.Headers.Get("Content-Type"))
		mu.Lock()
		resources = append(resources, Resource{
			URL:       r.Request.URL.String(),
			LocalPath: localRel,
			Kind:      kind,
			Size:      int64(len(r.Body)),
		})
		mu.Unlock()
	})

	if cfg.Recursive {
		collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
			link := e.Request.AbsoluteURL(e.Attr("href"))
			if link != "" && admit(link, cfg.SeedURL) {
				_ = e.Request.Visit(link)
			}
		})
	}

	visitAsset := func(e *colly.HTMLElement, attr string) {
		link := e.Request.AbsoluteURL(e.Attr(attr))
		if link != "" && admit(link, cfg.SeedURL) {
			_ = e.Request.Visit(link)
		}
	}
	if cfg.IncludeCSS {
		collector.OnHTML(`link[rel="stylesheet"]`, func(e *colly.HTMLElement) {
			visitAsset(e, "href")
		})
	}
	if cfg.IncludeJS {
		collector.OnHTML("script[src]", func(e *colly.HTMLElement) {
			visitAsset(e, "src")
		})
	}
	if cfg.IncludeImages {
		collector.OnHTML("img[src]", func(e *colly.HTMLElement) {
			visitAsset(e, "src")
		})
	}
	if cfg.IncludeAssets {
		collector.OnHTML(`link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"], link[rel="preload"]`, func(e *colly.HTMLElement) {
			visitAsset(e, "href")
		})
	}

	collector.OnError(func(r *colly.Response, err error) {
		logWarn("Error visiting %s: %v", r.Request.URL, err)
	})

	if err := collector.Visit(cfg.SeedURL); err != nil {
		return nil, fmt.Errorf("failed to start crawling: %w", err)
	}
	collector.Wait()

	return resources, nil
}

// classifyResource tags a downloaded file by content type, falling back
// to its extension.
func classifyResource(localRel, contentType string) string {
	if strings.Contains(contentType, "text/html") {
		return "page"
	}
	switch path.Ext(localRel) {
	case ".html", ".htm":
		return "page"
	case ".css":
		return "style"
	case ".js", ".mjs":
		return "script"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".avif":
		return "image"
	case ".woff", ".woff2", ".ttf", ".otf", ".eot":
		return "font"
	default:
		return "other"
	}
}

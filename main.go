package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const (
	defaultOutputDir   = "./fetched"
	defaultMaxDepth    = 10
	defaultConcurrency = 5
	defaultTimeoutMS   = 30000
)

func main() {
	var (
		seedURL     = flag.String("url", "", "Seed URL to crawl (required)")
		outputDir   = flag.String("out", defaultOutputDir, "Output directory")
		recursive   = flag.Bool("recursive", true, "Follow links recursively")
		maxDepth    = flag.Int("depth", defaultMaxDepth, "Maximum recursion depth")
		includeCSS  = flag.Bool("css", true, "Download stylesheets")
		includeJS   = flag.Bool("js", true, "Download scripts")
		includeImg  = flag.Bool("images", true, "Download images")
		includeRest = flag.Bool("assets", true, "Download other assets (icons, fonts)")
		extract     = flag.Bool("extract", true, "Extract structured content from pages")
		digest      = flag.Bool("digest", true, "Generate the site digest")
		report      = flag.Bool("report", true, "Generate the markdown report")
		corpus      = flag.Bool("corpus", true, "Generate the plain-text corpus")
		concurrency = flag.Int("concurrency", defaultConcurrency, "Maximum concurrent requests")
		timeoutMS   = flag.Int("timeout", defaultTimeoutMS, "Request timeout in milliseconds")
		userAgent   = flag.String("ua", "", "Custom user-agent string")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *seedURL == "" {
		fmt.Println("Usage: sitegrab -url=<URL> [-out=<dir>] [-depth=<n>] [-concurrency=<n>] [-v]")
		fmt.Println("Example: sitegrab -url=https://example.com")
		os.Exit(1)
	}

	cfg := Config{
		SeedURL:        *seedURL,
		OutputDir:      *outputDir,
		Recursive:      *recursive,
		MaxDepth:       *maxDepth,
		IncludeCSS:     *includeCSS,
		IncludeJS:      *includeJS,
		IncludeImages:  *includeImg,
		IncludeAssets:  *includeRest,
		ExtractContent: *extract,
		Digest:         *digest,
		Report:         *report,
		Corpus:         *corpus,
		Concurrency:    *concurrency,
		TimeoutMS:      *timeoutMS,
		UserAgent:      *userAgent,
	}

	crawler, err := NewCrawler(cfg, newCollyFetcher(), *verbose)
	if err != nil {
		log.Fatal(err)
	}

	result, err := crawler.Run()
	if err != nil {
		log.Fatal("Crawling failed: ", err)
	}

	logSuccess("Crawling completed! %d pages, %d assets saved to %s/",
		result.Content.PageCount, result.Content.AssetCount, cfg.OutputDir)

	if len(result.Errors) > 0 {
		logWarn("%d error(s) during the run:", len(result.Errors))
		for _, e := range result.Errors {
			logError("%s", e)
		}
		os.Exit(1)
	}
}

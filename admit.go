package main

import (
	"net/url"
	"strings"
)

// rejectedPrefixes are checked syntactically when a candidate URL cannot
// be parsed at all. Anything else unparseable is admitted so that odd but
// legitimate relative links are not silently dropped.
var rejectedPrefixes = []string{"mailto:", "tel:", "javascript:", "#"}

// adminMarkers are path segments that lead into CMS login/admin surfaces.
var adminMarkers = []string{"/wp-admin", "/wp-login"}

// admitURL reports whether a discovered URL may be traversed and
// downloaded. It is pure and safe for concurrent use; the fetch engine
// calls it from multiple workers.
func admitURL(candidate, seed string) bool {
	seedURL, err := url.Parse(seed)
	if err != nil {
		return false
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		for _, prefix := range rejectedPrefixes {
			if strings.HasPrefix(candidate, prefix) {
				return false
			}
		}
		return true
	}
	if !parsed.IsAbs() {
		parsed = seedURL.ResolveReference(parsed)
	}

	if !sameSite(parsed.Hostname(), seedURL.Hostname()) {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	lowerPath := strings.ToLower(parsed.Path)
	for _, marker := range adminMarkers {
		if strings.Contains(lowerPath, marker) {
			return false
		}
	}

	return true
}

// sameSite compares hostnames case-insensitively, treating example.com
// and www.example.com as the same site.
func sameSite(a, b string) bool {
	return stripWWW(strings.ToLower(a)) == stripWWW(strings.ToLower(b))
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}

package main

import (
	"net/url"
	"path"
	"strings"
)

// localResourcePath maps a resource URL to the relative path the fetch
// engine stores it under: a folder named after the host, mirroring the
// URL path, with directory URLs landing on index.html and extensionless
// page URLs gaining a .html suffix.
func localResourcePath(u *url.URL) string {
	p := u.Path
	switch {
	case p == "" || p == "/":
		p = "/index.html"
	case strings.HasSuffix(p, "/"):
		p += "index.html"
	case path.Ext(p) == "":
		p += ".html"
	}
	return path.Join(u.Host, p)
}

// reconstructURL maps a downloaded file's relative path back to the
// canonical site URL it was fetched from, undoing localResourcePath.
// It performs no I/O and is deterministic.
func reconstructURL(seed, localRel string) string {
	seedURL, err := url.Parse(seed)
	if err != nil {
		return localRel
	}
	origin := seedURL.Scheme + "://" + seedURL.Host

	rel := strings.TrimPrefix(strings.ReplaceAll(localRel, "\\", "/"), "/")

	// The host folder may have been written with or without a www prefix.
	host := seedURL.Hostname()
	for _, folder := range []string{host, stripWWW(host), "www." + host} {
		if rel == folder {
			rel = ""
			break
		}
		if strings.HasPrefix(rel, folder+"/") {
			rel = rel[len(folder)+1:]
			break
		}
	}

	if rel == "" || rel == "index.html" {
		return origin + "/"
	}
	if strings.HasSuffix(rel, "/index.html") {
		return origin + "/" + strings.TrimSuffix(rel, "index.html")
	}
	return origin + "/" + strings.TrimSuffix(rel, ".html")
}

// contentFilePath maps a downloaded page's relative path to the location
// of its structured record under the content output directory.
func contentFilePath(seed, localRel string) string {
	seedURL, err := url.Parse(seed)
	if err != nil {
		return localRel
	}
	rel := strings.TrimPrefix(strings.ReplaceAll(localRel, "\\", "/"), "/")
	host := seedURL.Hostname()
	for _, folder := range []string{host, stripWWW(host), "www." + host} {
		if strings.HasPrefix(rel, folder+"/") {
			rel = rel[len(folder)+1:]
			break
		}
	}
	if strings.HasSuffix(rel, ".html") {
		rel = strings.TrimSuffix(rel, ".html") + ".json"
	}
	return rel
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmitURL(t *testing.T) {
	seed := "https://example.com"

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"same host", "https://example.com/about", true},
		{"relative path", "/docs/intro", true},
		{"www variant of seed host", "https://www.example.com/about", true},
		{"other host", "https://other.com/about", false},
		{"subdomain is a different site", "https://blog.example.com/", false},
		{"mailto", "mailto:hi@example.com", false},
		{"javascript pseudo-url", "javascript:void(0)", false},
		{"ftp protocol", "ftp://example.com/file", false},
		{"wp-admin path", "https://example.com/wp-admin/options.php", false},
		{"wp-login path", "https://example.com/wp-login.php", false},
		{"uppercase host", "https://EXAMPLE.com/page", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, admitURL(tt.candidate, seed))
		})
	}
}

func TestAdmitURLWWWSeedEquivalence(t *testing.T) {
	// A www seed and a bare seed admit the same URLs.
	urls := []string{
		"https://example.com/a",
		"https://www.example.com/a",
		"https://other.com/a",
		"https://example.com/wp-admin/",
	}
	for _, u := range urls {
		bare := admitURL(u, "https://example.com")
		www := admitURL(u, "https://www.example.com")
		assert.Equal(t, bare, www, "admission differs between seeds for %s", u)
	}
}

func TestAdmitURLAdminPathAnyHost(t *testing.T) {
	assert.False(t, admitURL("https://example.com/blog/wp-login/", "https://example.com"))
	assert.False(t, admitURL("/wp-admin", "https://example.com"))
}

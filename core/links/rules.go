// Package links classifies the URLs that appear in fixture content: image
// references must point at remote assets rather than embed binary data, and
// autolinks are deduplicated in a stable order.
package links

import (
	"net/url"
	"path"
	"strings"
)

// imageExtensions are the file extensions treated as image assets.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true, ".avif": true,
}

// IsRemote reports whether rawURL is an absolute http(s) URL with a host.
func IsRemote(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsEmbedded reports whether rawURL carries its payload inline (a data: URI).
func IsEmbedded(rawURL string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(rawURL)), "data:")
}

// IsImageAsset checks if a URL path ends in a known image extension.
func IsImageAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return imageExtensions[ext]
}

// IsMailto reports whether rawURL is an email link.
func IsMailto(rawURL string) bool {
	return strings.HasPrefix(strings.ToLower(rawURL), "mailto:")
}

// ValidImageRef reports whether src is a usable image reference: a remote
// URL, never embedded binary.
func ValidImageRef(src string) bool {
	return !IsEmbedded(src) && IsRemote(src)
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// Remove fragment.
	parsed.Fragment = ""

	// Remove trailing slash (but keep root "/").
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

// Dedupe normalizes urls and drops repeats, keeping first-seen order.
func Dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		n := NormalizeURL(u)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

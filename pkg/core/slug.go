package core

import (
	"regexp"
	"strings"
)

const maxSlugLen = 64

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugHyphens  = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, trimmed,
// characters outside [a-z0-9 -] stripped, whitespace runs collapsed to
// single hyphens, repeated hyphens collapsed, truncated to 64 bytes.
// Deterministic and idempotent; an empty title yields an empty slug.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}

package core

import (
	"regexp"
	"strings"
)

// linkMarker matches a [[Title]] wiki link. The inner text may not contain
// a closing bracket, which keeps adjacent markers from merging.
var linkMarker = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractLinks scans free text for [[Title]] markers and returns the
// trimmed inner titles, deduplicated, in first-occurrence order.
// Empty titles (e.g. "[[  ]]") are dropped.
func ExtractLinks(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range linkMarker.FindAllStringSubmatch(text, -1) {
		title := strings.TrimSpace(m[1])
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}

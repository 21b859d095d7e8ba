package gir

import (
	"regexp"
	"strings"
)

var categoryRe = regexp.MustCompile(`(?i)\[\[\s*Category\s*:\s*([^\]|#]*?)\s*(?:#[^\]|]*)?(?:\|[^\]]*)?\]\]`)

// ParseCategories finds every [[Category:NAME(|…)?]] in rawBody and
// normalises each name (spaces -> underscores, fragment after # stripped),
// returning them in source order with duplicates preserved — de-
// duplication happens only once ids are assigned (spec §4.2 "Category
// parser").
func ParseCategories(rawBody string) []string {
	matches := categoryRe.FindAllStringSubmatch(rawBody, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		name = strings.ReplaceAll(name, " ", "_")
		out = append(out, name)
	}
	return out
}

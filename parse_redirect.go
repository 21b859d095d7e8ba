package gir

import (
	"regexp"
)

var redirectRe = regexp.MustCompile(`(?i)<redirect\s+title\s*=\s*"([^"]*)"\s*/?>`)

// ParseRedirect matches <redirect title="…"/> and returns the target
// title in canonical form (NormaliseTitle: trimmed, entities decoded,
// spaces turned to underscores), or ok=false if the body has no redirect
// marker (spec §4.2 "Redirect parser").
func ParseRedirect(rawBody string) (target string, ok bool) {
	m := redirectRe.FindStringSubmatch(rawBody)
	if m == nil {
		return "", false
	}
	return NormaliseTitle(m[1]), true
}

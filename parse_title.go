package gir

import "strings"

// NormaliseTitle reads the raw <title> text, trims whitespace, decodes the
// two HTML entities the dump actually uses in titles, and replaces spaces
// with underscores to produce the canonical title form used everywhere
// else in the pipeline (spec §4.2 "Title normaliser").
func NormaliseTitle(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.ReplaceAll(t, "&quot;", "\"")
	t = strings.ReplaceAll(t, "&amp;", "&")
	t = strings.ReplaceAll(t, " ", "_")
	return t
}

// DenormaliseTitle reverses the underscore substitution, useful when a
// normalised title must be matched against prose ("_" -> " ", spec
// references this conversion in the located-at parser's entity predicate).
func DenormaliseTitle(title string) string {
	return strings.ReplaceAll(title, "_", " ")
}

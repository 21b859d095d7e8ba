package gir

import (
	"regexp"
	"strings"
)

var (
	textSegmentRe = regexp.MustCompile(`(?s)<text[^>]*>(.*?)</text>`)
	wikiLinkRe    = regexp.MustCompile(`\[\[([^\[\]]*)\]\]`)
	citationRe    = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	tableRe       = regexp.MustCompile(`\{[^{}]*\}`)
	htmlEncTagRe  = regexp.MustCompile(`&lt;[^&]*?&gt;`)
	headingRe     = regexp.MustCompile(`(?m)^=\={0,2}[^=\n]+=\={0,2}\s*$`)
)

// escapeSequenceReplacer is the fixed set of HTML escape sequences the
// clean-text parser normalises away (spec §4.2 step (d)).
var escapeSequenceReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&ndash;", "-",
	"&mdash;", "-",
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&ldquo;", "\"",
	"&rdquo;", "\"",
	"&apos;", "'",
)

// collapseOneWikiLink applies the §4.2 step (a) rule to the content of a
// single [[…]] pair (without the brackets): File: links vanish, and the
// first |-delimited alternate is kept, except for two context-sensitive
// overrides that keep the second alternate instead. Shared by the
// clean-text parser and the contained-entities parser, which both need to
// agree on how many words a link contributes once collapsed.
func collapseOneWikiLink(inner string) string {
	lower := strings.ToLower(inner)
	if strings.HasPrefix(lower, "file:") {
		return ""
	}

	parts := strings.SplitN(inner, "|", 2)
	first := parts[0]
	if len(parts) > 1 {
		lf := strings.ToLower(strings.TrimSpace(first))
		ls := strings.ToLower(strings.TrimSpace(parts[1]))
		switch {
		case lf == "sculpture" && ls == "sculptor":
			return "sculptor"
		case lf == "musical theatre" && ls == "musical":
			return "musical"
		}
	}
	return first
}

// collapseWikiLinks runs one pass of [[…]] collapsing over text (spec
// §4.2 step (a)).
func collapseWikiLinks(text string) string {
	return wikiLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		return collapseOneWikiLink(m[2 : len(m)-2])
	})
}

// dropMarkupLines implements step (e): drop any line whose first
// non-whitespace character is one of |, !, *, # or which begins with
// "Category:" or "Image:".
func dropMarkupLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			kept = append(kept, line)
			continue
		}
		switch trimmed[0] {
		case '|', '!', '*', '#':
			continue
		}
		if strings.HasPrefix(trimmed, "Category:") || strings.HasPrefix(trimmed, "Image:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// trimBeforeBoldTitle implements step (f): any prefix preceding
// '''<title>''' within the first MaxTitleLengthForRemoval characters is
// dropped, so the clean text starts at the article's own bolded subject.
func trimBeforeBoldTitle(text, title string, limits Limits) string {
	window := limits.MaxTitleLengthForRemoval
	if window <= 0 || window > len(text) {
		window = len(text)
	}

	marker := "'''" + DenormaliseTitle(title) + "'''"
	idx := strings.Index(text[:window], marker)
	if idx < 0 {
		return text
	}
	return text[idx:]
}

// isolateTextSegment extracts the <text xml…>…</text> body, or returns
// rawBody unchanged if no such segment is found.
func isolateTextSegment(rawBody string) string {
	match := textSegmentRe.FindStringSubmatch(rawBody)
	if match == nil {
		return rawBody
	}
	return match[1]
}

// applyNonLinkCleanup runs steps (b)-(d) of the clean-text parser:
// citation and table removal (three passes each), HTML-encoded tag and
// heading removal, and the fixed escape-sequence substitution. It
// deliberately excludes step (a) (wikilink collapsing) so the
// contained-entities parser can reuse it while still seeing raw [[…]]
// markup.
func applyNonLinkCleanup(text string) string {
	for i := 0; i < 3; i++ {
		text = citationRe.ReplaceAllString(text, "")
	}
	for i := 0; i < 3; i++ {
		text = tableRe.ReplaceAllString(text, "")
	}

	text = htmlEncTagRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = escapeSequenceReplacer.Replace(text)
	return text
}

// CleanText implements the clean-text parser end to end (spec §4.2): it
// isolates the <text>…</text> segment, iteratively strips wikitext markup
// in three passes per construct, removes HTML-encoded tags, depth 1-3
// headings, and a fixed escape-sequence set, drops non-prose lines, and
// finally trims any lead-in before the article's own bolded title.
func CleanText(rawBody, title string, limits Limits) string {
	text := isolateTextSegment(rawBody)

	for i := 0; i < 3; i++ {
		text = collapseWikiLinks(text)
	}
	text = applyNonLinkCleanup(text)

	text = dropMarkupLines(text)
	text = trimBeforeBoldTitle(text, title, limits)

	return strings.TrimSpace(text)
}

// linksPreservedText produces the same markup-stripped text as CleanText
// but without collapsing [[…]] links, for parsers that need both the word
// positions of the final clean text and the raw link syntax at those
// positions (contained-entities, is-a-in, located-at).
func linksPreservedText(rawBody, title string, limits Limits) string {
	text := isolateTextSegment(rawBody)
	text = applyNonLinkCleanup(text)
	text = dropMarkupLines(text)
	text = trimBeforeBoldTitle(text, title, limits)
	return text
}

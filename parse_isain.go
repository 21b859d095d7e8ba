package gir

import (
	"regexp"
	"strings"
)

var (
	isAInDistanceRe = regexp.MustCompile(`(?i)\d{2,}\s*(km|kilometer|mile|mi)\b`)
	convertMarkerRe = regexp.MustCompile(`(?i)\{\{\s*convert`)
	wordRe          = regexp.MustCompile(`\S+`)
)

var isAInVerbs = map[string]bool{"is": true, "was": true, "are": true, "were": true}
var isAInPrepositions = map[string]bool{"in": true, "on": true, "at": true}

// titleKeyFromLinkText converts the text of a [[…]] link target into the
// canonical, underscore-separated title key used by the coordinate and
// redirect tables.
func titleKeyFromLinkText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}

// trimWordPunctuation strips leading/trailing punctuation and lowercases a
// token, for keyword comparisons.
func trimWordPunctuation(tok string) string {
	return strings.ToLower(strings.Trim(tok, ".,;:!?\"'()"))
}

// ParseIsAIn implements the "is-a-in" parser (spec §4.2): it requires the
// article to already have coordinates, scans a bounded segment after the
// article's bolded title for a rejection pattern, locates a
// copula-then-preposition phrase within the first sentence, and resolves
// any [[…]] entity references in the following scan region against the
// coordinate table (following redirects).
func ParseIsAIn(rawBody, title string, hasCoordinates bool, redirects *RedirectTable, coords *CoordinateTable, limits Limits) []string {
	if !hasCoordinates {
		return nil
	}

	text := linksPreservedText(rawBody, title, limits)

	marker := "'''" + DenormaliseTitle(title) + "'''"
	anchor := strings.Index(text, marker)
	if anchor < 0 {
		return nil
	}

	start := anchor + len(marker)
	end := start + limits.SegmentCharactersSize
	if end > len(text) || limits.SegmentCharactersSize <= 0 {
		end = len(text)
	}
	if start > len(text) {
		return nil
	}
	segment := text[start:end]

	if isAInDistanceRe.MatchString(segment) || convertMarkerRe.MatchString(segment) {
		return nil
	}

	idxs := wordRe.FindAllStringIndex(segment, -1)

	verbIdx := -1
	periodIdx := len(idxs)
	maxVerb := limits.MaxWordsTillVerb
	if maxVerb <= 0 || maxVerb > len(idxs) {
		maxVerb = len(idxs)
	}

	for i := 0; i < len(idxs); i++ {
		raw := segment[idxs[i][0]:idxs[i][1]]
		tok := trimWordPunctuation(raw)

		if verbIdx < 0 && i < maxVerb && isAInVerbs[tok] {
			verbIdx = i
		}
		if strings.Contains(raw, ".") {
			periodIdx = i
			break
		}
	}

	if verbIdx < 0 || verbIdx >= periodIdx {
		return nil
	}

	phraseIdx := -1
	for i := verbIdx + 1; i < periodIdx; i++ {
		raw := segment[idxs[i][0]:idxs[i][1]]
		tok := trimWordPunctuation(raw)
		if isAInPrepositions[tok] {
			phraseIdx = i
			break
		}
	}
	if phraseIdx < 0 {
		return nil
	}

	scanStart := idxs[phraseIdx][1]
	scanEnd := len(segment)
	if dot := strings.IndexByte(segment[scanStart:], '.'); dot >= 0 {
		scanEnd = scanStart + dot
	}

	region := segment[scanStart:scanEnd]

	seen := make(map[string]bool)
	var out []string

	for _, m := range wikiLinkRe.FindAllStringSubmatch(region, -1) {
		inner := m[1]
		entityParts := strings.SplitN(inner, "|", 2)
		key := titleKeyFromLinkText(entityParts[0])
		if key == "" {
			continue
		}
		resolved := redirects.Resolve(key)
		if _, ok := coords.Lookup(resolved); !ok {
			continue
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, resolved)
	}

	return out
}

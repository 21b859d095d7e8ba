package gir

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var locatedAtPhrases = []string{
	"located in ", "located at ", "located outside ", "located inside ",
	"located east ", "located west ", "located north ", "located south ",
	"located near ", "headquartered in ", "headquartered at ", "found in ",
}

var locatedAtDistanceRe = regexp.MustCompile(`(?i)\d{2,}\s*(nautical\s+)?(km|kilomet|mile)`)
var convertDigitMarkerRe = regexp.MustCompile(`(?i)\{\{\s*convert\s*\|\s*\d{2,}`)

var titleCaser = cases.Title(language.English)

// locatedAtOutcome is the three-way classification a located-at candidate
// falls into (spec §4.2 "located-at" parser).
type locatedAtOutcome int

const (
	notEntity locatedAtOutcome = iota
	location
	isEntityNotLocation
)

// ParseLocatedAt implements the "located-at" parser (spec §4.2). It scans
// for the first qualifying phrase, rejects on excessive computed entity
// diameter or an explicit distance marker, then grows word-by-word
// candidates after the phrase. For the first starting word that yields a
// candidate which is both a known link entity and has coordinates, it
// returns the longest such candidate starting at that word.
func ParseLocatedAt(rawBody, title string, articleTypes *ArticleTypeTable, redirects *RedirectTable, coords *CoordinateTable, limits Limits) (string, bool) {
	text := linksPreservedText(rawBody, title, limits)
	lower := strings.ToLower(text)

	firstPeriod := strings.IndexByte(text, '.')
	if firstPeriod < 0 {
		firstPeriod = len(text)
	}

	phraseStart, phraseLen := findFirstPhrase(lower, locatedAtPhrases, firstPeriod)
	if phraseStart < 0 {
		return "", false
	}

	wordsBeforePhrase := len(wordRe.FindAllString(text[:phraseStart], -1))
	if limits.MaxWordsTillPhrase > 0 && wordsBeforePhrase > limits.MaxWordsTillPhrase {
		return "", false
	}

	phraseEnd := phraseStart + phraseLen

	windowStart := phraseStart - limits.MaxCharactersPostPhrase
	if windowStart < 0 {
		windowStart = 0
	}
	windowEnd := phraseEnd + limits.MaxCharactersPostPhrase
	if windowEnd > len(text) {
		windowEnd = len(text)
	}
	window := text[windowStart:windowEnd]

	if locatedAtDistanceRe.MatchString(window) {
		return "", false
	}
	if convertDigitMarkerRe.MatchString(rawBody) {
		return "", false
	}

	if diameterExceeds(window, articleTypes, redirects, coords, limits.MaxEntitiesDiameterKM) {
		return "", false
	}

	scanEnd := windowEnd
	if dot := strings.IndexByte(text[phraseEnd:windowEnd], '.'); dot >= 0 {
		scanEnd = phraseEnd + dot
	}
	region := text[phraseEnd:scanEnd]
	rawLowerSpaced := strings.ToLower(strings.ReplaceAll(text, "_", " "))

	return scanLocatedAtCandidates(region, rawLowerSpaced, redirects, coords)
}

// findFirstPhrase returns the earliest (start, length) of any phrase in
// phrases found within lower[:limit], or (-1, 0) if none qualify.
func findFirstPhrase(lower string, phrases []string, limit int) (int, int) {
	best := -1
	bestLen := 0
	bound := lower
	if limit < len(lower) {
		bound = lower[:limit]
	}
	for _, p := range phrases {
		if idx := strings.Index(bound, p); idx >= 0 {
			if best < 0 || idx < best {
				best = idx
				bestLen = len(p)
			}
		}
	}
	return best, bestLen
}

// diameterExceeds computes the largest pairwise haversine distance among
// coordinates of link-entities (and their redirect resolutions) in window
// whose article type has location-priority >= 3, and reports whether it
// exceeds maxKM.
func diameterExceeds(window string, articleTypes *ArticleTypeTable, redirects *RedirectTable, coords *CoordinateTable, maxKM float64) bool {
	if maxKM <= 0 {
		return false
	}

	var pts []Coordinate
	for _, m := range wikiLinkRe.FindAllStringSubmatch(window, -1) {
		entityParts := strings.SplitN(m[1], "|", 2)
		key := titleKeyFromLinkText(entityParts[0])
		resolved := redirects.Resolve(key)

		t, ok := articleTypes.Lookup(resolved)
		if !ok {
			t, ok = articleTypes.Lookup(key)
		}
		if !ok || t.LocationPriority() < 3 {
			continue
		}

		if c, ok := coords.Lookup(resolved); ok {
			pts = append(pts, c)
		} else if c, ok := coords.Lookup(key); ok {
			pts = append(pts, c)
		}
	}

	return MaxPairwiseDistanceKM(pts) > maxKM
}

// scanLocatedAtCandidates runs the word-by-word growth scan described in
// spec §4.2 over region, classifying each growing candidate against
// rawLowerSpaced (the links-preserved text, lowercased with underscores
// turned to spaces) and the coordinate table.
func scanLocatedAtCandidates(region, rawLowerSpaced string, redirects *RedirectTable, coords *CoordinateTable) (string, bool) {
	idxs := wordRe.FindAllStringIndex(region, -1)

	for start := 0; start < len(idxs); start++ {
		if start > 0 {
			prev := trimWordPunctuation(region[idxs[start-1][0]:idxs[start-1][1]])
			if prev == "new" {
				continue
			}
		}

		best := ""

		for end := start; end < len(idxs); end++ {
			candidateRaw := region[idxs[start][0]:idxs[end][1]]
			candidate := stripOneTrailingPunct(candidateRaw)
			candidate = uppercaseFirstRune(candidate)

			outcome := classifyLocatedAtCandidate(candidate, rawLowerSpaced, redirects, coords)

			switch outcome {
			case location:
				best = candidate
			case isEntityNotLocation:
				best = ""
			}
			if outcome == isEntityNotLocation {
				break
			}
		}

		if best != "" {
			return best, true
		}
	}

	return "", false
}

func classifyLocatedAtCandidate(candidate, rawLowerSpaced string, redirects *RedirectTable, coords *CoordinateTable) locatedAtOutcome {
	candLower := strings.ToLower(candidate)

	isEntity := strings.Contains(rawLowerSpaced, "[["+candLower+"|") || strings.Contains(rawLowerSpaced, "[["+candLower+"]]")
	if !isEntity {
		return notEntity
	}

	key := titleKeyFromLinkText(candidate)
	if _, ok := coords.Lookup(key); ok {
		return location
	}
	if resolved := redirects.Resolve(key); resolved != key {
		if _, ok := coords.Lookup(resolved); ok {
			return location
		}
	}
	return isEntityNotLocation
}

// stripOneTrailingPunct removes exactly one trailing punctuation rune, if
// present.
func stripOneTrailingPunct(s string) string {
	if s == "" {
		return s
	}
	last := s[len(s)-1]
	switch last {
	case '.', ',', ';', ':', '!', '?', ')', ']', '"', '\'':
		return s[:len(s)-1]
	}
	return s
}

// uppercaseFirstRune uppercases only the first rune of s, leaving the rest
// untouched, using golang.org/x/text/cases for locale-aware casing rather
// than a byte-level ToUpper.
func uppercaseFirstRune(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	head := titleCaser.String(string(r[0]))
	return head + string(r[1:])
}

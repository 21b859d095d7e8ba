package gir

import (
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/gedex/inflector"
)

// ArticleType is the closed enumeration of geographic article types (spec
// §6.2), each carrying a location-priority: lower means broader extent,
// -1 means "not a location article".
type ArticleType int

const (
	TypeNone ArticleType = iota
	TypeShip
	TypePerson
	TypeLand
	TypeSea
	TypeCountry
	TypeState
	TypeAutonomous
	TypeRegion
	TypeNature
	TypeSettlement
	TypeSpot
)

var articleTypeNames = map[ArticleType]string{
	TypeNone:       "NONE",
	TypeShip:       "SHIP",
	TypePerson:     "PERSON",
	TypeLand:       "LAND",
	TypeSea:        "SEA",
	TypeCountry:    "COUNTRY",
	TypeState:      "STATE",
	TypeAutonomous: "AUTONOMOUS",
	TypeRegion:     "REGION",
	TypeNature:     "NATURE",
	TypeSettlement: "SETTLEMENT",
	TypeSpot:       "SPOT",
}

var articleTypeByName = func() map[string]ArticleType {
	m := make(map[string]ArticleType, len(articleTypeNames))
	for t, n := range articleTypeNames {
		m[n] = t
	}
	return m
}()

// String returns the enum's persisted name (spec §6.1 "Article types").
func (t ArticleType) String() string {
	if n, ok := articleTypeNames[t]; ok {
		return n
	}
	return "NONE"
}

// ArticleTypeFromString parses a name written by String.
func ArticleTypeFromString(s string) ArticleType {
	if t, ok := articleTypeByName[s]; ok {
		return t
	}
	return TypeNone
}

// LocationPriority returns the type's location-priority (spec §6.2).
func (t ArticleType) LocationPriority() int {
	switch t {
	case TypeLand, TypeSea:
		return 0
	case TypeCountry:
		return 1
	case TypeState:
		return 2
	case TypeAutonomous:
		return 3
	case TypeRegion, TypeNature:
		return 4
	case TypeSettlement:
		return 5
	case TypeSpot:
		return 6
	default:
		return -1
	}
}

// typeVariants holds the singular variant phrases of each non-NONE type;
// the plural of each is derived with inflector.Pluralize (spec §4.2 "each
// non-NONE type carries a closed set of singular+plural variants").
var typeVariants = map[ArticleType][]string{
	TypeShip:       {"ship", "vessel", "submarine", "destroyer", "frigate"},
	TypeLand:       {"continent", "island", "peninsula", "archipelago"},
	TypeSea:        {"sea", "ocean", "bay", "gulf", "strait", "channel"},
	TypeCountry:    {"country", "nation", "republic", "kingdom"},
	TypeState:      {"state", "province", "prefecture", "county"},
	TypeAutonomous: {"autonomous region", "autonomous community", "territory", "dependency"},
	TypeRegion:     {"region", "area", "district", "zone"},
	TypeNature:     {"mountain", "river", "lake", "forest", "park", "nature reserve", "valley", "desert"},
	TypeSettlement: {"settlement", "city", "town", "village", "municipality", "borough", "hamlet", "suburb"},
	TypeSpot:       {"landmark", "building", "structure", "monument", "bridge", "station"},
}

// variantForms expands each type's singular list with its inflector
// plural, producing the full matchable variant set.
var variantForms = func() map[ArticleType][]string {
	out := make(map[ArticleType][]string, len(typeVariants))
	for t, singulars := range typeVariants {
		forms := make([]string, 0, len(singulars)*2)
		for _, s := range singulars {
			forms = append(forms, s, inflector.Pluralize(s))
		}
		out[t] = forms
	}
	return out
}()

// priorityOrderedTypes lists the geographic types from highest to lowest
// location-priority, used when several variants match and the "highest
// priority matched type" must be chosen (spec §4.2 (ii)).
var priorityOrderedTypes = []ArticleType{
	TypeSpot, TypeSettlement, TypeRegion, TypeNature, TypeAutonomous,
	TypeState, TypeCountry, TypeSea, TypeLand,
}

var (
	personBirthDeathRe = regexp.MustCompile(`(?i)^\d+s?_(births|deaths)$`)
	personPeopleRe     = regexp.MustCompile(`(?i)^people_(from|in|of)`)
	settlementTypeRe   = regexp.MustCompile(`(?i)\|\s*settlement_type\s*=\s*\[\[([^\]|]+)`)
)

var shipSuffixExceptions = map[string]bool{
	"scholarship": true, "fellowship": true, "ownership": true, "membership": true,
}

// normaliseCategoryForMatch strips leading digits/-/_ and lowercases a
// category string, converting underscores to spaces (spec §4.2 (i)).
func normaliseCategoryForMatch(cat string) string {
	cat = strings.TrimLeft(cat, "0123456789-_")
	cat = strings.ReplaceAll(cat, "_", " ")
	return strings.ToLower(strings.TrimSpace(cat))
}

// matchVariant reports whether norm (an already-normalised category or
// phrase) equals one of t's variants, or starts with one and contains
// "in"/"of" as its own word (spec §4.2 "_in_"/"_of_" generalised to the
// space-normalised form).
func matchVariant(norm string, t ArticleType) bool {
	for _, v := range variantForms[t] {
		if norm == v {
			return true
		}
		if strings.HasPrefix(norm, v+" ") && (strings.Contains(norm, " in ") || strings.Contains(norm, " of ")) {
			return true
		}
	}
	return false
}

// isPersonCategory detects the person special cases (spec §4.2 (i)).
func isPersonCategory(rawCategory string) bool {
	lower := strings.ToLower(rawCategory)
	if personBirthDeathRe.MatchString(lower) {
		return true
	}
	if personPeopleRe.MatchString(lower) {
		return true
	}
	if lower == "living_people" {
		return true
	}
	if strings.HasSuffix(lower, "_alumni") {
		return true
	}
	return false
}

// categoryCorroboratesCountryOrState reports whether any raw category
// begins with "countries"/"states" and contains "_in_"/"_of_", required to
// confirm a text-heuristic COUNTRY/STATE match (spec §4.2 (iii)).
func categoryCorroboratesCountryOrState(rawCategories []string, t ArticleType) bool {
	var prefix string
	switch t {
	case TypeCountry:
		prefix = "countries"
	case TypeState:
		prefix = "states"
	default:
		return true
	}
	for _, c := range rawCategories {
		lower := strings.ToLower(c)
		if strings.HasPrefix(lower, prefix) && (strings.Contains(lower, "_in_") || strings.Contains(lower, "_of_")) {
			return true
		}
	}
	return false
}

// matchFromCategories implements heuristic (i): person special-casing
// first, then the priority-ordered variant scan over every category
// string.
func matchFromCategories(rawCategories []string) (ArticleType, bool) {
	for _, c := range rawCategories {
		if isPersonCategory(c) {
			return TypePerson, true
		}
	}

	for _, c := range rawCategories {
		norm := normaliseCategoryForMatch(c)
		for _, t := range priorityOrderedTypes {
			if matchVariant(norm, t) {
				return t, true
			}
		}
	}

	return TypeNone, false
}

// matchFromSettlementTypeField implements heuristic (ii): a
// "| settlement_type = [[…]]" infobox field in the raw text.
func matchFromSettlementTypeField(rawBody string) (ArticleType, bool) {
	m := settlementTypeRe.FindStringSubmatch(rawBody)
	if m == nil {
		return TypeNone, false
	}

	best := TypeNone
	found := false
	for _, tok := range strings.Split(m[1], "|") {
		norm := normaliseCategoryForMatch(tok)
		for _, t := range priorityOrderedTypes {
			if matchVariant(norm, t) {
				if !found || t.LocationPriority() > best.LocationPriority() {
					best = t
					found = true
				}
			}
		}
	}
	return best, found
}

const (
	maxInitialWords = 50
	verbProximity   = 10
)

// matchFromTextHeuristic implements heuristic (iii): find the first
// is/was/are/were in the first maxInitialWords words of clean text, then
// look for a variant within the next verbProximity words, preferring a
// higher-priority variant if it immediately follows.
func matchFromTextHeuristic(cleanText string, rawCategories []string) (ArticleType, bool) {
	idxs := wordRe.FindAllStringIndex(cleanText, -1)
	limit := maxInitialWords
	if limit > len(idxs) {
		limit = len(idxs)
	}

	verbIdx := -1
	for i := 0; i < limit; i++ {
		tok := trimWordPunctuation(cleanText[idxs[i][0]:idxs[i][1]])
		if isAInVerbs[tok] {
			verbIdx = i
			break
		}
	}
	if verbIdx < 0 {
		return TypeNone, false
	}

	end := verbIdx + 1 + verbProximity
	if end > len(idxs) {
		end = len(idxs)
	}

	for i := verbIdx + 1; i < end; i++ {
		tok := cleanText[idxs[i][0]:idxs[i][1]]
		matched, ok := matchWordAgainstTypes(tok)
		if !ok {
			continue
		}

		if matched == TypeCountry || matched == TypeState {
			if !categoryCorroboratesCountryOrState(rawCategories, matched) {
				continue
			}
		}

		if i+1 < end {
			nextTok := cleanText[idxs[i+1][0]:idxs[i+1][1]]
			if nextMatched, ok := matchWordAgainstTypes(nextTok); ok && nextMatched.LocationPriority() > matched.LocationPriority() {
				matched = nextMatched
			}
		}
		return matched, true
	}

	return TypeNone, false
}

func matchWordAgainstTypes(word string) (ArticleType, bool) {
	norm := normaliseCategoryForMatch(word)
	for _, t := range priorityOrderedTypes {
		if matchVariant(norm, t) {
			return t, true
		}
	}
	return TypeNone, false
}

// matchFromTitleSuffix is the SHIP last resort: a title ending in "ship)"
// that is not one of the known non-ship suffix words.
func matchFromTitleSuffix(title string) (ArticleType, bool) {
	lower := strings.ToLower(DenormaliseTitle(title))
	if !strings.HasSuffix(lower, "ship)") {
		return TypeNone, false
	}
	for exc := range shipSuffixExceptions {
		if strings.HasSuffix(lower, exc+")") {
			return TypeNone, false
		}
	}
	return TypeShip, true
}

// ParseArticleType implements the article-type parser end to end (spec
// §4.2): categories first, then the settlement_type infobox field, then
// the text heuristic, then the title-suffix SHIP last resort.
func ParseArticleType(title string, rawBody string, cleanText string, rawCategories []string) ArticleType {
	if t, ok := matchFromCategories(rawCategories); ok {
		return t
	}
	if t, ok := matchFromSettlementTypeField(rawBody); ok {
		return t
	}
	if t, ok := matchFromTextHeuristic(cleanText, rawCategories); ok {
		return t
	}
	if t, ok := matchFromTitleSuffix(title); ok {
		return t
	}
	return TypeNone
}

// ArticleTypeTable is the per-title map produced by the article-type
// parser, shared with the located-at parser's diameter calculation (spec
// §4.2 "located-at" parser needs other articles' location-priority). One
// mutex guards the map, one insertion per article, matching the other
// per-article tables (spec §5).
type ArticleTypeTable struct {
	mu sync.RWMutex
	m  map[string]ArticleType
}

// NewArticleTypeTable returns an empty table.
func NewArticleTypeTable() *ArticleTypeTable {
	return &ArticleTypeTable{m: make(map[string]ArticleType)}
}

// Set records the type for title.
func (t *ArticleTypeTable) Set(title string, at ArticleType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[title] = at
}

// Lookup returns the type for title and whether it is present.
func (t *ArticleTypeTable) Lookup(title string) (ArticleType, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	at, ok := t.m[title]
	return at, ok
}

// Len returns the number of typed titles.
func (t *ArticleTypeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// Write persists the table per §6.1: N:int; Nx(title:string, type-name:string).
func (t *ArticleTypeTable) Write(w io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := WriteInt32(w, int32(len(t.m))); err != nil {
		return err
	}
	for title, at := range t.m {
		if err := WriteString(w, title); err != nil {
			return err
		}
		if err := WriteString(w, at.String()); err != nil {
			return err
		}
	}
	return nil
}

// ReadArticleTypeTable reads a table previously written by Write.
func ReadArticleTypeTable(r io.Reader) (*ArticleTypeTable, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	t := &ArticleTypeTable{m: make(map[string]ArticleType, n)}
	for i := int32(0); i < n; i++ {
		title, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		name, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		t.m[title] = ArticleTypeFromString(name)
	}
	return t, nil
}

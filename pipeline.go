package gir

import "sort"

// Resources bundles every shared, long-lived structure the per-article
// pipeline reads from and writes to: the id registries, the dictionary,
// and the per-article result tables (spec §5 "shared-mutation points").
// Each table guards its own mutex; Resources itself holds no lock.
type Resources struct {
	Titles     *IDRegistry
	Categories *IDRegistry
	Dictionary *Dictionary

	Coordinates       *CoordinateTable
	Redirects         *RedirectTable
	ContainedEntities *ContainedEntitiesTable
	ArticleCategories *ArticleCategoriesTable
	ArticleTypes      *ArticleTypeTable
	LocatedAt         *LocatedAtTable
	IsAIn             *IsAInTable

	Limits Limits
}

// NewResources returns a fresh, empty Resources bundle.
func NewResources(limits Limits) *Resources {
	return &Resources{
		Titles:            NewIDRegistry(),
		Categories:        NewIDRegistry(),
		Dictionary:        NewDictionary(),
		Coordinates:       NewCoordinateTable(),
		Redirects:         NewRedirectTable(),
		ContainedEntities: NewContainedEntitiesTable(),
		ArticleCategories: NewArticleCategoriesTable(),
		ArticleTypes:      NewArticleTypeTable(),
		LocatedAt:         NewLocatedAtTable(),
		IsAIn:             NewIsAInTable(),
		Limits:            limits,
	}
}

// ArticlePrelude holds the phase-1 outputs for one article: everything
// computable without reference to any OTHER article's tables. Kept in
// memory between phases (spec §5 "memory-heavy by design").
type ArticlePrelude struct {
	Title     string
	RawBody   string
	CleanText string

	HasCoordinates    bool
	ContainedEntities map[string]ContainedEntity
}

// ProcessArticlePhase1 runs every field parser whose output depends only
// on the article's own body (title, clean text, coordinates, categories,
// redirect, contained-entities, article-type), registers the title and
// category ids, records results into res's tables, and folds the clean
// text into the dictionary (C4 producing outputs consumed by C5, spec
// §2 "control flow"). It returns the prelude phase 2 needs.
func ProcessArticlePhase1(rec ArticleRecord, res *Resources) ArticlePrelude {
	title := NormaliseTitle(rec.Title)
	res.Titles.Intern(title)

	if target, ok := ParseRedirect(rec.Body); ok {
		res.Redirects.Set(title, target)
	}

	cleanText := CleanText(rec.Body, title, res.Limits)
	res.Dictionary.AddDocument(cleanText)

	hasCoordinates := false
	if c, ok := ParseCoordinate(rec.Body); ok {
		res.Coordinates.Set(title, c)
		hasCoordinates = true
	}

	rawCategories := ParseCategories(rec.Body)
	if len(rawCategories) > 0 {
		seen := make(map[int32]bool, len(rawCategories))
		ids := make([]int32, 0, len(rawCategories))
		for _, c := range rawCategories {
			id := res.Categories.Intern(c)
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		res.ArticleCategories.Set(title, ids)
	}

	entities := ParseContainedEntities(rec.Body, title, res.Limits)
	if len(entities) > 0 {
		res.ContainedEntities.Set(title, entities)
	}

	articleType := ParseArticleType(title, rec.Body, cleanText, rawCategories)
	res.ArticleTypes.Set(title, articleType)

	return ArticlePrelude{
		Title:             title,
		RawBody:           rec.Body,
		CleanText:         cleanText,
		HasCoordinates:    hasCoordinates,
		ContainedEntities: entities,
	}
}

// ProcessArticlePhase2 runs the field parsers and vector builders that
// need the fully-populated corpus-wide tables (located-at, is-a-in,
// named-location scoring reference other articles' coordinates/types),
// then performs the C8 join into a finished Article. Call it only after
// every article's phase 1 has completed, so the dictionary is final
// (spec §4.3 "single pass... across the single build").
func ProcessArticlePhase2(p ArticlePrelude, res *Resources) Article {
	id := res.Titles.Intern(p.Title)

	coord, hasCoord := res.Coordinates.Lookup(p.Title)
	articleType, _ := res.ArticleTypes.Lookup(p.Title)

	categoryIDs, _ := res.ArticleCategories.Lookup(p.Title)

	tfidf := BuildTFIDFVector(p.CleanText, res.Dictionary, res.Limits)
	namedLocations := BuildNamedLocationVector(p.ContainedEntities, p.CleanText, res.Coordinates, res.Redirects, res.Titles, res.Limits)

	if locatedAt, ok := ParseLocatedAt(p.RawBody, p.Title, res.ArticleTypes, res.Redirects, res.Coordinates, res.Limits); ok {
		res.LocatedAt.Set(p.Title, locatedAt)
	}

	isAIn := ParseIsAIn(p.RawBody, p.Title, p.HasCoordinates, res.Redirects, res.Coordinates, res.Limits)
	if len(isAIn) > 0 {
		res.IsAIn.Set(p.Title, isAIn)
	}

	locatedAtTitle, _ := res.LocatedAt.Lookup(p.Title)

	return Article{
		ID:             id,
		Title:          p.Title,
		HasCoordinates: hasCoord,
		Coordinate:     coord,
		Type:           articleType,
		CategoryIDs:    categoryIDs,
		TFIDF:          tfidf,
		NamedLocations: namedLocations,
		LocatedAt:      locatedAtTitle,
		IsAIn:          isAIn,
	}
}

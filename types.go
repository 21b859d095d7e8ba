package gir

// Coordinate is a WGS84 latitude/longitude pair. Both fields are finite and
// within [-90,90] / [-180,180] for any Coordinate produced by the coordinate
// parser (spec §3 "Article record").
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether c is a well-formed Earth coordinate.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// SparseVector is the shared shape for TF-IDF vectors, named-location
// vectors, and any other sparse per-article score vector: parallel arrays
// of strictly-ascending ids and their scores (spec §3, §8 "Vector
// well-formedness").
type SparseVector struct {
	IDs    []int32
	Scores []float64
}

// Len returns the number of non-zero elements.
func (v SparseVector) Len() int { return len(v.IDs) }

// Posting is one entry of a posting list: an article id and its quantised
// score (spec §3 "Posting list": round(score * 1e6)).
type Posting struct {
	ArticleID int32
	Quantised int32
}

// QuantiseScore implements the posting-list score quantisation rule.
func QuantiseScore(score float64) int32 {
	if score >= 0 {
		return int32(score*1e6 + 0.5)
	}
	return int32(score*1e6 - 0.5)
}

// DequantiseScore inverts QuantiseScore for scoring code that wants a float
// back (not required on the persisted-file hot path, but useful in tests).
func DequantiseScore(q int32) float64 {
	return float64(q) / 1e6
}

// ContainedEntity is one link target found in an article's clean text,
// with the word index of its first occurrence and the set of `|`-delimited
// textual variants under which it may appear (spec §4.2 "Contained-entities
// parser").
type ContainedEntity struct {
	Title        string
	FirstWordIdx int
	Variants     []string // lowercased, official variant is Variants[0]
}

// Article is the fully joined per-article record produced by C8 once every
// field parser and vector builder has run (spec §3 "Article record").
// Immutable after construction.
type Article struct {
	ID    int32
	Title string

	HasCoordinates bool
	Coordinate     Coordinate

	Type ArticleType

	// CategoryIDs is sorted ascending, unique.
	CategoryIDs []int32

	TFIDF          SparseVector
	NamedLocations SparseVector

	LocatedAt string   // optional title; "" means absent
	IsAIn     []string // possibly empty; titles
}

// WikiEntity is the sum type referenced in spec §9 ("the 'WikiEntity'
// abstraction is used only for the coordinate-lookup contract"): a source
// text can reference either an Article or a bare Category as a link
// target, and both need a uniform "does this have coordinates" query.
// Expressed as a two-variant sum rather than an interface hierarchy,
// matching the note that this is sum-type territory, not inheritance.
type WikiEntity struct {
	isCategory bool
	title      string
}

// ArticleEntity wraps an article title as a WikiEntity.
func ArticleEntity(title string) WikiEntity { return WikiEntity{title: title} }

// CategoryEntity wraps a category title as a WikiEntity.
func CategoryEntity(title string) WikiEntity { return WikiEntity{isCategory: true, title: title} }

// Title returns the wrapped title.
func (e WikiEntity) Title() string { return e.title }

// IsCategory reports whether e wraps a category rather than an article.
func (e WikiEntity) IsCategory() bool { return e.isCategory }

// Coordinates resolves e's coordinates from the shared coordinate table,
// returning ok=false for category entities (categories never have
// coordinates) or unresolved article titles.
func (e WikiEntity) Coordinates(coords *CoordinateTable) (Coordinate, bool) {
	if e.isCategory {
		return Coordinate{}, false
	}
	return coords.Lookup(e.title)
}

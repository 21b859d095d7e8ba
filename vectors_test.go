package gir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildNamedLocationVector_CountsAndNormalisation(t *testing.T) {
	coords := NewCoordinateTable()
	coords.Set("Paris", Coordinate{Lat: 48.8566, Lon: 2.3522})
	coords.Set("Lyon", Coordinate{Lat: 45.75, Lon: 4.85})
	redirects := NewRedirectTable()
	titles := NewIDRegistry()

	cleanText := "Paris is nice. Paris hosts events. Paris is old. Lyon is nice too."

	entities := map[string]ContainedEntity{
		"Paris": {Title: "Paris", FirstWordIdx: 0, Variants: []string{"paris"}},
		"Lyon":  {Title: "Lyon", FirstWordIdx: 10, Variants: []string{"lyon"}},
	}

	vec := BuildNamedLocationVector(entities, cleanText, coords, redirects, titles, DefaultLimits())

	require.Len(t, vec.IDs, 2)

	parisID, _ := titles.Lookup("Paris")
	lyonID, _ := titles.Lookup("Lyon")

	parisScore := scoreForID(vec, parisID)
	lyonScore := scoreForID(vec, lyonID)

	require.Greater(t, parisScore, lyonScore)
	require.InDelta(t, 0.8660254, parisScore, 1e-6) // sqrt(3/4)
	require.InDelta(t, 0.5, lyonScore, 1e-6)         // sqrt(1/4)

	var sumSq float64
	for _, s := range vec.Scores {
		sumSq += s * s
	}
	require.InDelta(t, 1.0, sumSq, 1e-6)
}

func TestBuildNamedLocationVector_DropsEntitiesWithoutCoordinates(t *testing.T) {
	coords := NewCoordinateTable()
	coords.Set("Paris", Coordinate{Lat: 48.8566, Lon: 2.3522})
	redirects := NewRedirectTable()
	titles := NewIDRegistry()

	cleanText := "Paris is nice. Atlantis is lost."

	entities := map[string]ContainedEntity{
		"Paris":    {Title: "Paris", Variants: []string{"paris"}},
		"Atlantis": {Title: "Atlantis", Variants: []string{"atlantis"}},
	}

	vec := BuildNamedLocationVector(entities, cleanText, coords, redirects, titles, DefaultLimits())
	require.Len(t, vec.IDs, 1)
}

func TestBuildNamedLocationVector_ResolvesThroughRedirect(t *testing.T) {
	coords := NewCoordinateTable()
	coords.Set("Lutetia", Coordinate{Lat: 48.8566, Lon: 2.3522})
	redirects := NewRedirectTable()
	redirects.Set("Paris", "Lutetia")
	titles := NewIDRegistry()

	cleanText := "Paris is nice."
	entities := map[string]ContainedEntity{
		"Paris": {Title: "Paris", Variants: []string{"paris"}},
	}

	vec := BuildNamedLocationVector(entities, cleanText, coords, redirects, titles, DefaultLimits())
	require.Len(t, vec.IDs, 1)

	lutetiaID, ok := titles.Lookup("Lutetia")
	require.True(t, ok)
	require.Equal(t, lutetiaID, vec.IDs[0])
}

func TestDropSubstringVariants(t *testing.T) {
	out := dropSubstringVariants([]string{"york", "new york"})
	require.Equal(t, []string{"new york"}, out)
}

func TestCountVariantOccurrences_DelimiterBounded(t *testing.T) {
	require.Equal(t, 1, countVariantOccurrences("I live in Paris.", "paris"))
	require.Equal(t, 0, countVariantOccurrences("Parisians are nice.", "paris"))
	require.Equal(t, 2, countVariantOccurrences("[Paris] and (Paris)", "paris"))
}

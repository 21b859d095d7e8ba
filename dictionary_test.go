package gir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionary_DocumentFrequencyAndIdf(t *testing.T) {
	dict := NewDictionary()
	dict.AddDocument("Paris is a city in France")
	dict.AddDocument("Berlin is a city in Germany")

	cityID, ok := dict.WordToID("citi")
	require.True(t, ok, "expected stemmed form of 'city' to be interned")

	parisID, ok := dict.WordToID(Tokenize("Paris")[0])
	require.True(t, ok)

	franceID, ok := dict.WordToID(Tokenize("France")[0])
	require.True(t, ok)

	require.EqualValues(t, 2, dict.TotalDocuments())

	// "city" appears in both documents (df=2): logIdf(city) = log10(2/2) = 0.
	require.InDelta(t, 0, dict.LogIdf(cityID), 1e-9)

	// "paris"/"france" appear in one document each (df=1):
	// logIdf = log10(2/1) = log10(2).
	require.InDelta(t, 0.30102999566, dict.LogIdf(parisID), 1e-6)
	require.InDelta(t, 0.30102999566, dict.LogIdf(franceID), 1e-6)
}

func TestDictionary_UnknownIDUsesLog10TotalDocuments(t *testing.T) {
	dict := NewDictionary()
	dict.AddDocument("alpha beta")
	dict.AddDocument("gamma delta")

	idf := dict.LogIdf(9999)
	require.InDelta(t, 0.30102999566, idf, 1e-6) // log10(2)
}

func TestDictionary_WriteRead_RoundTrips(t *testing.T) {
	dict := NewDictionary()
	dict.AddDocument("Paris is a city in France")
	dict.AddDocument("Berlin is a city in Germany")

	var buf bytes.Buffer
	require.NoError(t, dict.Write(&buf))

	read, err := ReadDictionary(&buf)
	require.NoError(t, err)

	require.Equal(t, dict.TotalDocuments(), read.TotalDocuments())
	require.Equal(t, dict.TotalWords(), read.TotalWords())
	require.Equal(t, dict.Len(), read.Len())

	id, ok := dict.WordToID("citi")
	require.True(t, ok)
	readID, ok := read.WordToID("citi")
	require.True(t, ok)
	require.Equal(t, id, readID)
}

func TestBuildTFIDFVector_ParisScoresHigherThanCity(t *testing.T) {
	dict := NewDictionary()
	d1 := "Paris is a city in France"
	d2 := "Berlin is a city in Germany"
	dict.AddDocument(d1)
	dict.AddDocument(d2)

	limits := DefaultLimits()
	v1 := BuildTFIDFVector(d1, dict, limits)

	require.NotEmpty(t, v1.IDs)
	require.True(t, sort32Ascending(v1.IDs))

	parisID, _ := dict.WordToID(Tokenize("Paris")[0])
	cityID, _ := dict.WordToID("citi")

	parisScore := scoreForID(v1, parisID)
	cityScore := scoreForID(v1, cityID)

	require.Greater(t, parisScore, cityScore)

	var sumSq float64
	for _, s := range v1.Scores {
		sumSq += s * s
	}
	require.InDelta(t, 1.0, sumSq, 1e-6)
}

func scoreForID(v SparseVector, id int32) float64 {
	for i, vid := range v.IDs {
		if vid == id {
			return v.Scores[i]
		}
	}
	return 0
}

func sort32Ascending(ids []int32) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

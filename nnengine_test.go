package gir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildWeightDisciplineArticles() []Article {
	return []Article{
		{ // source
			ID:             0,
			HasCoordinates: true,
			TFIDF:          SparseVector{IDs: []int32{1, 2}, Scores: []float64{0.8, 0.6}},
			CategoryIDs:    []int32{10},
		},
		{ // A: identical text vector, disjoint category
			ID:             1,
			HasCoordinates: true,
			TFIDF:          SparseVector{IDs: []int32{1, 2}, Scores: []float64{0.8, 0.6}},
			CategoryIDs:    []int32{20},
		},
		{ // B: disjoint text vector, identical category
			ID:             2,
			HasCoordinates: true,
			TFIDF:          SparseVector{IDs: []int32{3}, Scores: []float64{1.0}},
			CategoryIDs:    []int32{10},
		},
	}
}

func TestNNEngine_TextOnlyWeightSurfacesOnlyTextNeighbor(t *testing.T) {
	articles := buildWeightDisciplineArticles()
	indices := BuildIndexSet(articles)

	engine := &NNEngine{
		Articles: articles,
		Indices:  indices,
		Pruner:   PrunerTunings{ScratchSize: 100, MaxIteration: 1000},
		Tunings: NNTunings{
			TextThreshold:     1,
			LocationThreshold: 1,
			CategoryThreshold: 1,
			MaxNeighbors:      10,
			Weights:           Weights{Text: 1, Locations: 0, Categories: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Run(&buf))

	recs := readAllNeighborRecords(t, &buf)
	source := recs[0]
	require.Len(t, source.Neighbors, 1)
	require.EqualValues(t, 1, source.Neighbors[0].NeighborID)
	require.InDelta(t, 1.0, source.Neighbors[0].Score, 1e-9)
}

func TestNNEngine_CategoryOnlyWeightSurfacesOnlyCategoryNeighbor(t *testing.T) {
	articles := buildWeightDisciplineArticles()
	indices := BuildIndexSet(articles)

	engine := &NNEngine{
		Articles: articles,
		Indices:  indices,
		Pruner:   PrunerTunings{ScratchSize: 100, MaxIteration: 1000},
		Tunings: NNTunings{
			TextThreshold:     1,
			LocationThreshold: 1,
			CategoryThreshold: 1,
			MaxNeighbors:      10,
			Weights:           Weights{Text: 0, Locations: 0, Categories: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Run(&buf))

	recs := readAllNeighborRecords(t, &buf)
	source := recs[0]
	require.Len(t, source.Neighbors, 1)
	require.EqualValues(t, 2, source.Neighbors[0].NeighborID)
	require.InDelta(t, 1.0, source.Neighbors[0].Score, 1e-9)
}

func TestNNEngine_RespectsMinSimilarityAndMaxNeighborsAndNoSelf(t *testing.T) {
	articles := []Article{
		{ID: 0, HasCoordinates: true, TFIDF: SparseVector{IDs: []int32{1}, Scores: []float64{1.0}}},
		{ID: 1, HasCoordinates: true, TFIDF: SparseVector{IDs: []int32{1}, Scores: []float64{1.0}}},
		{ID: 2, HasCoordinates: true, TFIDF: SparseVector{IDs: []int32{1}, Scores: []float64{0.01}}},
	}
	indices := BuildIndexSet(articles)

	engine := &NNEngine{
		Articles: articles,
		Indices:  indices,
		Pruner:   PrunerTunings{ScratchSize: 100, MaxIteration: 1000},
		Tunings: NNTunings{
			TextThreshold: 1,
			MaxNeighbors:  1,
			MinSimilarity: 0.5,
			Weights:       Weights{Text: 1, Locations: 0, Categories: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Run(&buf))

	recs := readAllNeighborRecords(t, &buf)
	for _, rec := range recs {
		require.LessOrEqual(t, len(rec.Neighbors), 1)
		for i := 1; i < len(rec.Neighbors); i++ {
			require.GreaterOrEqual(t, rec.Neighbors[i-1].Score, rec.Neighbors[i].Score)
		}
		for _, n := range rec.Neighbors {
			require.NotEqual(t, rec.SourceID, n.NeighborID)
			require.GreaterOrEqual(t, n.Score, 0.5)
		}
	}
}

func readAllNeighborRecords(t *testing.T, r *bytes.Buffer) map[int32]NeighborRecord {
	t.Helper()
	out := make(map[int32]NeighborRecord)
	for r.Len() > 0 {
		rec, err := ReadNeighborRecord(r)
		require.NoError(t, err)
		out[rec.SourceID] = rec
	}
	return out
}

package gir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertedIndex_AddGrowsAndTrims(t *testing.T) {
	idx := NewInvertedIndex()
	idx.Add(5, Posting{ArticleID: 5, Quantised: 42})

	require.GreaterOrEqual(t, idx.Len(), 6)

	idx.Trim()
	require.Equal(t, 6, idx.Len())

	got := idx.Get(5)
	require.Len(t, got, 1)
	require.Equal(t, int32(42), got[0].Quantised)
}

func TestInvertedIndex_GetOutOfRangeIsNil(t *testing.T) {
	idx := NewInvertedIndex()
	idx.Add(0, Posting{ArticleID: 0, Quantised: 1})

	require.Nil(t, idx.Get(-1))
	require.Nil(t, idx.Get(999))
}

func TestInvertedIndex_PostingListsAreMonotoneAfterSort(t *testing.T) {
	idx := NewInvertedIndex()
	idx.Add(3, Posting{ArticleID: 9, Quantised: 1})
	idx.Add(3, Posting{ArticleID: 2, Quantised: 1})
	idx.Add(3, Posting{ArticleID: 5, Quantised: 1})

	sortIndexPostings(idx)

	cell := idx.Get(3)
	for i := 1; i < len(cell); i++ {
		require.Less(t, cell[i-1].ArticleID, cell[i].ArticleID)
	}
}

func TestInvertedIndex_WriteRead_RoundTrips(t *testing.T) {
	idx := NewInvertedIndex()
	idx.Add(0, Posting{ArticleID: 7, Quantised: 100})
	idx.Add(2, Posting{ArticleID: 8, Quantised: 200})
	idx.Trim()

	var buf bytes.Buffer
	require.NoError(t, idx.Write(&buf))

	read, err := ReadInvertedIndex(&buf)
	require.NoError(t, err)
	require.Equal(t, idx.Len(), read.Len())
	require.Equal(t, idx.Get(0), read.Get(0))
	require.Equal(t, idx.Get(2), read.Get(2))
}

func TestBuildIndexSet_PlacesArticlesInAllAndCoordIndices(t *testing.T) {
	articles := []Article{
		{
			ID:             0,
			HasCoordinates: true,
			TFIDF:          SparseVector{IDs: []int32{1, 2}, Scores: []float64{0.5, 0.25}},
			CategoryIDs:    []int32{3},
		},
		{
			ID:             1,
			HasCoordinates: false,
			TFIDF:          SparseVector{IDs: []int32{1}, Scores: []float64{0.8}},
			CategoryIDs:    []int32{3},
		},
	}

	set := BuildIndexSet(articles)

	require.Len(t, set.WordsAll.Get(1), 2)
	require.Len(t, set.WordsWithCoords.Get(1), 1)
	require.Equal(t, int32(0), set.WordsWithCoords.Get(1)[0].ArticleID)

	require.Len(t, set.CategoriesAll.Get(3), 2)
	require.Len(t, set.CategoriesWithCoords.Get(3), 1)
}

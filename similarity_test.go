package gir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortedCosine_IdenticalVectorIsOne(t *testing.T) {
	v := SparseVector{IDs: []int32{1, 2, 3}, Scores: []float64{0.6, 0.6, 0.529150262}}
	var sumSq float64
	for _, s := range v.Scores {
		sumSq += s * s
	}
	require.InDelta(t, 1.0, sumSq, 1e-6)
	require.InDelta(t, 1.0, SortedCosine(v, v), 1e-6)
}

func TestSortedCosine_DisjointIsZero(t *testing.T) {
	a := SparseVector{IDs: []int32{1, 2}, Scores: []float64{0.7, 0.7}}
	b := SparseVector{IDs: []int32{3, 4}, Scores: []float64{0.7, 0.7}}
	require.Equal(t, 0.0, SortedCosine(a, b))
}

func TestSortedCosine_BoundedInUnitInterval(t *testing.T) {
	a := SparseVector{IDs: []int32{1, 2, 5}, Scores: []float64{0.5, 0.5, 0.707}}
	b := SparseVector{IDs: []int32{2, 3, 5}, Scores: []float64{0.4, 0.4, 0.82}}
	got := SortedCosine(a, b)
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, 1.0+1e-9)
}

func TestJaccardFromIntersection_KnownSets(t *testing.T) {
	a := CategorySetVector([]int32{1, 2, 3})
	b := CategorySetVector([]int32{2, 3, 4})

	got := JaccardFromIntersection(a, b)
	require.InDelta(t, 2.0/4.0, got, 1e-9) // |A∩B|=2, |A∪B|=4
}

func TestJaccardFromIntersection_BothEmptyIsZero(t *testing.T) {
	a := CategorySetVector(nil)
	b := CategorySetVector(nil)
	require.Equal(t, 0.0, JaccardFromIntersection(a, b))
}

func TestJaccardFromIntersection_BoundedInUnitInterval(t *testing.T) {
	a := CategorySetVector([]int32{1, 2, 3, 4})
	b := CategorySetVector([]int32{3})
	got := JaccardFromIntersection(a, b)
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, 1.0+1e-9)
}

func TestCombinedScore_WeightDiscipline(t *testing.T) {
	got := CombinedScore(0.9, 0.4, 0.1, Weights{Text: 1, Locations: 0, Categories: 0})
	require.InDelta(t, 0.9, got, 1e-9)

	got = CombinedScore(0.9, 0.4, 0.1, Weights{Text: 0, Locations: 0, Categories: 1})
	require.InDelta(t, 0.1, got, 1e-9)

	got = CombinedScore(1, 1, 1, Weights{Text: 0.5, Locations: 0.3, Categories: 0.2})
	require.InDelta(t, 1.0, got, 1e-9)
}

func TestWeights_Validate(t *testing.T) {
	require.NoError(t, Weights{Text: 0.5, Locations: 0.3, Categories: 0.2}.Validate())
	require.Error(t, Weights{Text: 0.5, Locations: 0.3, Categories: 0.3}.Validate())
	require.Error(t, Weights{Text: -0.1, Locations: 0.6, Categories: 0.5}.Validate())
}

func TestQuantiseScore_RoundTrip(t *testing.T) {
	q := QuantiseScore(0.123456)
	require.InDelta(t, 0.123456, DequantiseScore(q), 1e-6)

	neg := QuantiseScore(-0.25)
	require.InDelta(t, -0.25, DequantiseScore(neg), 1e-6)
}

func TestHaversineKM_KnownDistance(t *testing.T) {
	paris := Coordinate{Lat: 48.8566, Lon: 2.3522}
	london := Coordinate{Lat: 51.5074, Lon: -0.1278}

	d := HaversineKM(paris, london)
	require.True(t, math.Abs(d-344) < 15) // ~344km great-circle distance
}

func TestMaxPairwiseDistanceKM_EmptyOrSingleIsZero(t *testing.T) {
	require.Equal(t, 0.0, MaxPairwiseDistanceKM(nil))
	require.Equal(t, 0.0, MaxPairwiseDistanceKM([]Coordinate{{Lat: 1, Lon: 1}}))
}

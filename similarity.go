package gir

// SortedCosine implements the sorted-vector cosine similarity (spec
// §4.8): walks both parallel (ids ascending, scores) arrays with two
// indices, advancing the smaller id, accumulating the product of scores
// on an id match. In [0,1] for L2-normalised inputs.
func SortedCosine(a, b SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.IDs) && j < len(b.IDs) {
		switch {
		case a.IDs[i] == b.IDs[j]:
			sum += a.Scores[i] * b.Scores[j]
			i++
			j++
		case a.IDs[i] < b.IDs[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// JaccardFromIntersection computes the Jaccard index of two category-id
// sets, both represented as all-ones-score sparse vectors so the
// intersection size falls out of SortedCosine (spec §4.8 "I =
// cosine(A,1,B,1), which equals |A ∩ B|").
func JaccardFromIntersection(a, b SparseVector) float64 {
	if len(a.IDs) == 0 && len(b.IDs) == 0 {
		return 0
	}
	intersection := SortedCosine(a, b)
	union := float64(len(a.IDs)+len(b.IDs)) - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// CategorySetVector builds the all-ones-score SparseVector SortedCosine
// and JaccardFromIntersection expect from a sorted, unique category-id
// slice.
func CategorySetVector(ids []int32) SparseVector {
	scores := make([]float64, len(ids))
	for i := range scores {
		scores[i] = 1.0
	}
	return SparseVector{IDs: ids, Scores: scores}
}

// CombinedScore implements §4.8's weighted combination: score = alpha *
// cosText + beta * cosLocations + gamma * jaccardCategories. A
// zero-weight component contributes nothing and need not be computed by
// the caller (the caller may pass 0 directly without evaluating the
// underlying cosine/Jaccard at all).
func CombinedScore(cosText, cosLocations, jaccardCategories float64, w Weights) float64 {
	return w.Text*cosText + w.Locations*cosLocations + w.Categories*jaccardCategories
}

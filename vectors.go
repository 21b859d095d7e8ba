package gir

import (
	"math"
	"sort"
	"strings"
)

// sparseVectorFromCounts builds a SparseVector from an id->score map,
// truncating to at most maxElements highest-scoring entries (ties broken
// by the order callers hand entries in, via the ids slice), sorting by id
// ascending, and L2-normalising. Shared by C6 and C7, both of which share
// exactly this "score, truncate, sort, normalise" tail (spec §4.4, §4.5).
func sparseVectorFromCounts(ids []int32, scores map[int32]float64, maxElements int) SparseVector {
	if len(ids) == 0 {
		return SparseVector{}
	}

	kept := ids
	if maxElements > 0 && len(ids) > maxElements {
		ordered := make([]int32, len(ids))
		copy(ordered, ids)
		sort.SliceStable(ordered, func(i, j int) bool {
			return scores[ordered[i]] > scores[ordered[j]]
		})
		kept = ordered[:maxElements]
	}

	sorted := make([]int32, len(kept))
	copy(sorted, kept)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := SparseVector{IDs: sorted, Scores: make([]float64, len(sorted))}
	var sumSq float64
	for i, id := range sorted {
		s := scores[id]
		out.Scores[i] = s
		sumSq += s * s
	}

	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i := range out.Scores {
			out.Scores[i] /= norm
		}
	}

	return out
}

// BuildTFIDFVector implements the TF-IDF vector builder (C6, spec §4.4):
// tokenise, drop stopwords (already done by Tokenize), count term
// frequencies, skip unknown ids, score with log10(1+tf)*logIdf, truncate
// to MaxVectorElements, sort ascending, L2-normalise.
func BuildTFIDFVector(cleanText string, dict *Dictionary, limits Limits) SparseVector {
	tf := TermFrequencies(cleanText)
	if len(tf) == 0 {
		return SparseVector{}
	}

	ids := make([]int32, 0, len(tf))
	scores := make(map[int32]float64, len(tf))

	// Visit terms in ascending string order instead of Go's randomised map
	// order, so equal scores are broken deterministically (by term string)
	// when the vector is truncated to MaxVectorElements.
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for _, term := range terms {
		id, ok := dict.WordToID(term)
		if !ok {
			continue
		}
		score := math.Log10(1+float64(tf[term])) * dict.LogIdf(id)
		ids = append(ids, id)
		scores[id] = score
	}

	return sparseVectorFromCounts(ids, scores, limits.MaxVectorElements)
}

var namedLocationPrefixSet = map[byte]bool{
	' ': true, '\n': true, '[': true, '{': true, '(': true,
	'-': true, '_': true, '"': true, '\'': true, '|': true,
}

var namedLocationSuffixSet = map[byte]bool{
	' ': true, '\n': true, '[': true, '{': true, '(': true,
	'-': true, '_': true, '"': true, '\'': true, '|': true,
	',': true, '.': true, '?': true, '!': true, ']': true, '}': true, ')': true,
}

// countVariantOccurrences implements the spec §4.5 delimiter-bounded,
// non-overlapping occurrence scan for a single variant substring.
func countVariantOccurrences(text, variant string) int {
	if variant == "" {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	pos := 0
	for {
		idx := strings.Index(lower[pos:], variant)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(variant)

		prefixOK := start == 0 || namedLocationPrefixSet[lower[start-1]]
		suffixOK := end == len(lower) || namedLocationSuffixSet[lower[end]]

		if prefixOK && suffixOK {
			count++
			pos = end
		} else {
			pos = start + 1
		}
	}
	return count
}

// dropSubstringVariants removes any variant that is a substring of
// another variant in the same set (spec §4.5).
func dropSubstringVariants(variants []string) []string {
	var out []string
	for i, v := range variants {
		subsumed := false
		for j, w := range variants {
			if i == j || v == w {
				continue
			}
			if strings.Contains(w, v) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, v)
		}
	}
	return out
}

// BuildNamedLocationVector implements the named-location vector builder
// (C7, spec §4.5): resolve each contained entity to a coordinated title,
// drop substring-subsumed variants, count delimiter-bounded occurrences
// in the clean text, drop zero-count or too-distant entities, convert to
// title-ids, score by sqrt(count/total), truncate, L2-normalise.
func BuildNamedLocationVector(entities map[string]ContainedEntity, cleanText string, coords *CoordinateTable, redirects *RedirectTable, titles *IDRegistry, limits Limits) SparseVector {
	type survivor struct {
		id    int32
		count int
	}

	var survivors []survivor
	total := 0

	for _, ent := range entities {
		resolvedTitle := titleKeyFromLinkText(ent.Title)
		if _, ok := coords.Lookup(resolvedTitle); !ok {
			target := redirects.Resolve(resolvedTitle)
			if _, ok := coords.Lookup(target); !ok {
				continue
			}
			resolvedTitle = target
		}

		if limits.MaxWordIndex > 0 && ent.FirstWordIdx > limits.MaxWordIndex {
			continue
		}

		variants := dropSubstringVariants(ent.Variants)
		count := 0
		for _, v := range variants {
			count += countVariantOccurrences(cleanText, v)
		}
		if count == 0 {
			continue
		}

		id := titles.Intern(resolvedTitle)
		survivors = append(survivors, survivor{id: id, count: count})
		total += count
	}

	if total == 0 {
		return SparseVector{}
	}

	ids := make([]int32, 0, len(survivors))
	scores := make(map[int32]float64, len(survivors))
	for _, s := range survivors {
		ids = append(ids, s.id)
		scores[s.id] = math.Sqrt(float64(s.count) / float64(total))
	}

	return sparseVectorFromCounts(ids, scores, limits.MaxNamedLocationsPerArticle)
}

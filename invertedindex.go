package gir

import (
	"io"
	"sort"
	"sync"
)

// InvertedIndex is one of the six typed posting-list structures (spec
// §4.6): a dense, id-indexed array of cells, each either absent or a
// posting list. Growth is amortised-doubling under a single mutex; a
// trailing-null trim runs once at the end of construction (spec §5
// "Inverted-index construction").
type InvertedIndex struct {
	mu    sync.RWMutex
	cells [][]Posting
}

// NewInvertedIndex returns an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{}
}

// ensureCapacity grows cells to at least id+1 using the doubling rule
// max(2*len, id+1); caller must hold the write lock.
func (idx *InvertedIndex) ensureCapacity(id int) {
	if id < len(idx.cells) {
		return
	}
	newLen := 2 * len(idx.cells)
	if newLen <= id {
		newLen = id + 1
	}
	grown := make([][]Posting, newLen)
	copy(grown, idx.cells)
	idx.cells = grown
}

// Add appends one posting to id's cell, growing the backing array if
// necessary.
func (idx *InvertedIndex) Add(id int32, p Posting) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.ensureCapacity(int(id))
	idx.cells[id] = append(idx.cells[id], p)
}

// Get returns the posting list for id, or nil if absent.
func (idx *InvertedIndex) Get(id int32) []Posting {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if id < 0 || int(id) >= len(idx.cells) {
		return nil
	}
	return idx.cells[id]
}

// Len returns the current array length (not the number of non-empty cells).
func (idx *InvertedIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.cells)
}

// Trim removes trailing absent cells (spec §4.6 "trailing absent cells
// are trimmed", §9 "the trailing-null trim... matters for memory").
func (idx *InvertedIndex) Trim() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	n := len(idx.cells)
	for n > 0 && idx.cells[n-1] == nil {
		n--
	}
	idx.cells = idx.cells[:n]
}

// Write persists the index per §6.1: L:int; for each cell, k:int, then
// k×(article-id:int, quantised-score:int) if k>0.
func (idx *InvertedIndex) Write(w io.Writer) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := WriteInt32(w, int32(len(idx.cells))); err != nil {
		return err
	}
	for _, cell := range idx.cells {
		if err := WriteInt32(w, int32(len(cell))); err != nil {
			return err
		}
		for _, p := range cell {
			if err := WriteInt32(w, p.ArticleID); err != nil {
				return err
			}
			if err := WriteInt32(w, p.Quantised); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadInvertedIndex reads an index previously written by Write.
func ReadInvertedIndex(r io.Reader) (*InvertedIndex, error) {
	l, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	idx := &InvertedIndex{cells: make([][]Posting, l)}
	for i := int32(0); i < l; i++ {
		k, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			continue
		}
		cell := make([]Posting, k)
		for j := int32(0); j < k; j++ {
			articleID, err := ReadInt32(r)
			if err != nil {
				return nil, err
			}
			quantised, err := ReadInt32(r)
			if err != nil {
				return nil, err
			}
			cell[j] = Posting{ArticleID: articleID, Quantised: quantised}
		}
		idx.cells[i] = cell
	}
	return idx, nil
}

// IndexSet holds the six typed inverted indices (spec §4.6: {words,
// categories, named-locations} x {all articles, with-coordinates}).
type IndexSet struct {
	WordsAll            *InvertedIndex
	WordsWithCoords     *InvertedIndex
	CategoriesAll       *InvertedIndex
	CategoriesWithCoords *InvertedIndex
	LocationsAll        *InvertedIndex
	LocationsWithCoords  *InvertedIndex
}

// NewIndexSet returns six empty indices.
func NewIndexSet() *IndexSet {
	return &IndexSet{
		WordsAll:             NewInvertedIndex(),
		WordsWithCoords:      NewInvertedIndex(),
		CategoriesAll:        NewInvertedIndex(),
		CategoriesWithCoords: NewInvertedIndex(),
		LocationsAll:         NewInvertedIndex(),
		LocationsWithCoords:  NewInvertedIndex(),
	}
}

// BuildIndexSet constructs the six indices from a finished article set
// (C9, spec §4.6), fanning the per-article insert work out across a
// bounded worker pool (spec §5). Category postings always carry the
// quantised score for 1.0.
func BuildIndexSet(articles []Article) *IndexSet {
	set := NewIndexSet()

	RunBounded(len(articles), func(i int) {
		a := articles[i]

		for j, id := range a.TFIDF.IDs {
			p := Posting{ArticleID: a.ID, Quantised: QuantiseScore(a.TFIDF.Scores[j])}
			set.WordsAll.Add(id, p)
			if a.HasCoordinates {
				set.WordsWithCoords.Add(id, p)
			}
		}

		categoryQuantised := QuantiseScore(1.0)
		for _, id := range a.CategoryIDs {
			p := Posting{ArticleID: a.ID, Quantised: categoryQuantised}
			set.CategoriesAll.Add(id, p)
			if a.HasCoordinates {
				set.CategoriesWithCoords.Add(id, p)
			}
		}

		for j, id := range a.NamedLocations.IDs {
			p := Posting{ArticleID: a.ID, Quantised: QuantiseScore(a.NamedLocations.Scores[j])}
			set.LocationsAll.Add(id, p)
			if a.HasCoordinates {
				set.LocationsWithCoords.Add(id, p)
			}
		}
	})

	for _, idx := range []*InvertedIndex{
		set.WordsAll, set.WordsWithCoords,
		set.CategoriesAll, set.CategoriesWithCoords,
		set.LocationsAll, set.LocationsWithCoords,
	} {
		idx.Trim()
		sortIndexPostings(idx)
	}

	return set
}

// sortIndexPostings sorts each cell's postings by article-id ascending so
// downstream consumers (the pruner, property tests) see deterministic,
// duplicate-free ordering.
func sortIndexPostings(idx *InvertedIndex) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, cell := range idx.cells {
		sort.Slice(cell, func(i, j int) bool { return cell[i].ArticleID < cell[j].ArticleID })
	}
}

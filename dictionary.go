package gir

import (
	"io"
	"math"
	"sync"
)

// Dictionary is the term vocabulary (spec §4.3 "Dictionary builder",
// §3 "Term-id mapping + DF"): a bijection term<->int with ids starting at
// 1, a per-id document frequency, and the two scalars idf needs. Built by
// one pass of AddDocument calls, one per article's clean text, then
// treated as a read-mostly registry for the rest of the pipeline (spec
// §9 "Singletons... become explicit resource objects... builder ->
// finalised view").
type Dictionary struct {
	mu sync.Mutex

	byID   []string // index 0 unused; ids start at 1
	byWord map[string]int32
	df     []int32 // parallel to byID

	totalDocuments int32
	totalWords     int64
}

// NewDictionary returns an empty dictionary with id 0 reserved (spec §4.3
// "ids start at 1").
func NewDictionary() *Dictionary {
	return &Dictionary{
		byID:   []string{""},
		byWord: make(map[string]int32),
		df:     []int32{0},
	}
}

// AddDocument tokenizes text (C2), assigns fresh ids to unseen terms, and
// increments each surviving term's document frequency exactly once per
// call regardless of in-article multiplicity (spec §4.3). Not safe to
// call concurrently for the SAME underlying totals without external
// serialization at a coarser grain than one call — the dictionary
// serialises internally, matching the teacher's "single mutex, thread-
// local hot path" discipline (spec §5).
func (d *Dictionary) AddDocument(text string) {
	tokens := Tokenize(text)
	d.totalWords += int64(len(tokens))

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true

		d.mu.Lock()
		id, ok := d.byWord[tok]
		if !ok {
			id = int32(len(d.byID))
			d.byID = append(d.byID, tok)
			d.byWord[tok] = id
			d.df = append(d.df, 0)
		}
		d.df[id]++
		d.mu.Unlock()
	}

	d.mu.Lock()
	d.totalDocuments++
	d.mu.Unlock()
}

// WordToID returns the id assigned to word, if any.
func (d *Dictionary) WordToID(word string) (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.byWord[word]
	return id, ok
}

// IDToWord returns the term for id, if id is in range.
func (d *Dictionary) IDToWord(id int32) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id <= 0 || int(id) >= len(d.byID) {
		return "", false
	}
	return d.byID[id], true
}

// LogIdf computes log10(totalDocuments/df), or log10(totalDocuments) for
// an unknown id (spec §4.3).
func (d *Dictionary) LogIdf(id int32) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := float64(d.totalDocuments)
	if id <= 0 || int(id) >= len(d.byID) {
		if total <= 0 {
			return 0
		}
		return math.Log10(total)
	}
	df := float64(d.df[id])
	if df <= 0 {
		return math.Log10(total)
	}
	return math.Log10(total / df)
}

// TotalDocuments returns the number of AddDocument calls made so far.
func (d *Dictionary) TotalDocuments() int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totalDocuments
}

// TotalWords returns the cumulative token count across all documents.
func (d *Dictionary) TotalWords() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totalWords
}

// Len returns the number of distinct terms (excluding the reserved id 0).
func (d *Dictionary) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.byID) - 1
}

// Write persists the dictionary per §6.1: totalDocuments:int,
// totalWords:long, M:int, M×(string,int), D:int, D×(int,int).
func (d *Dictionary) Write(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := WriteInt32(w, d.totalDocuments); err != nil {
		return err
	}
	if err := WriteInt64(w, d.totalWords); err != nil {
		return err
	}

	m := int32(len(d.byID) - 1)
	if err := WriteInt32(w, m); err != nil {
		return err
	}
	for id := 1; id < len(d.byID); id++ {
		if err := WriteString(w, d.byID[id]); err != nil {
			return err
		}
		if err := WriteInt32(w, int32(id)); err != nil {
			return err
		}
	}

	if err := WriteInt32(w, m); err != nil {
		return err
	}
	for id := 1; id < len(d.df); id++ {
		if err := WriteInt32(w, int32(id)); err != nil {
			return err
		}
		if err := WriteInt32(w, d.df[id]); err != nil {
			return err
		}
	}

	return nil
}

// ReadDictionary reads a dictionary previously written by Write.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	totalDocuments, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	totalWords, err := ReadInt64(r)
	if err != nil {
		return nil, err
	}

	m, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		byID:           make([]string, m+1),
		byWord:         make(map[string]int32, m),
		df:             make([]int32, m+1),
		totalDocuments: totalDocuments,
		totalWords:     totalWords,
	}

	for i := int32(0); i < m; i++ {
		word, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		id, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.byID[id] = word
		d.byWord[word] = id
	}

	dCount, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	for i := int32(0); i < dCount; i++ {
		id, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		df, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		d.df[id] = df
	}

	return d, nil
}

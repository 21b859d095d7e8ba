package gir

import (
	"strings"
	"unicode"

	"github.com/surgebase/porter2"
)

// Tokenize lowercases text, splits on runs of non-letter/non-digit
// characters, drops stopwords, and stems the survivors with the Porter2
// algorithm (spec §4.2 "Tokenizer & stopword filter: Text → lowercased,
// stemmed tokens"). Grounded on the teacher's own Porter2 call sites
// (phrase.go, poster.go, xplore.go all lower-case then porter2.Stem before
// using a token as an index key).
func Tokenize(text string) []string {

	lower := strings.ToLower(text)

	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || IsStopWord(f) {
			continue
		}
		out = append(out, porter2.Stem(f))
	}

	return out
}

// TermFrequencies tokenizes text and returns a map from stemmed term to
// the number of times it occurred, used by C6 (TF-IDF vector builder).
func TermFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, tok := range Tokenize(text) {
		tf[tok]++
	}
	return tf
}

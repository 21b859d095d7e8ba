package gir

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var summaryPrinter = message.NewPrinter(language.English)

// LogDictionarySummary logs the completed dictionary's totals with
// thousands-separated counts. It and LogIndexSetSummary are the two
// completion lines this repository keeps from the out-of-scope
// pretty-printing surface (spec §1 drops the progress bar itself, not
// every completion line); neither reports elapsed time.
func LogDictionarySummary(dict *Dictionary) {
	log.Info().
		Str("documents", summaryPrinter.Sprintf("%d", dict.TotalDocuments())).
		Str("distinct_terms", summaryPrinter.Sprintf("%d", dict.Len())).
		Str("total_words", summaryPrinter.Sprintf("%d", dict.TotalWords())).
		Msg("dictionary build complete")
}

// LogIndexSetSummary logs the six inverted indices' cell-array lengths
// with thousands separators, after BuildIndexSet's trailing-null trim.
func LogIndexSetSummary(set *IndexSet) {
	log.Info().
		Str("words_all", summaryPrinter.Sprintf("%d", set.WordsAll.Len())).
		Str("words_with_coords", summaryPrinter.Sprintf("%d", set.WordsWithCoords.Len())).
		Str("categories_all", summaryPrinter.Sprintf("%d", set.CategoriesAll.Len())).
		Str("categories_with_coords", summaryPrinter.Sprintf("%d", set.CategoriesWithCoords.Len())).
		Str("locations_all", summaryPrinter.Sprintf("%d", set.LocationsAll.Len())).
		Str("locations_with_coords", summaryPrinter.Sprintf("%d", set.LocationsWithCoords.Len())).
		Msg("inverted index build complete")
}

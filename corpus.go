package gir

// BuildCorpus runs the two-phase pipeline (spec §2 "control flow") over a
// batch of already-extracted records: phase 1 populates the dictionary
// and every locally-computable per-article table; phase 2, which starts
// only once every phase-1 call has returned (the dictionary's
// document/term counts must be final before C6 consults it), produces
// the finished Article set via the C8 join. Each phase fans out across
// the bounded worker pool; each record's own slot is written by exactly
// one goroutine, so no additional synchronisation is needed around the
// slices themselves.
func BuildCorpus(records []ArticleRecord, limits Limits) ([]Article, *Resources) {
	res := NewResources(limits)

	preludes := make([]ArticlePrelude, len(records))
	RunBounded(len(records), func(i int) {
		preludes[i] = ProcessArticlePhase1(records[i], res)
	})

	unordered := make([]Article, len(preludes))
	RunBounded(len(preludes), func(i int) {
		unordered[i] = ProcessArticlePhase2(preludes[i], res)
	})

	// Phase 1 interns titles in whatever order the worker pool happens to
	// schedule them, so a record's slice position need not match its
	// article-id; re-index by id so callers (the NN engine in particular)
	// can address articles directly as articles[id].
	articles := make([]Article, res.Titles.Len())
	for _, a := range unordered {
		articles[a.ID] = a
	}

	return articles, res
}

package gir

import (
	"io"
	"sort"
	"sync"
)

// NeighborScore is one entry of a nearest-neighbor record (spec §3
// "Nearest-neighbor record").
type NeighborScore struct {
	NeighborID int32
	Score      float64
}

// NeighborRecord is the per-source-article nearest-neighbor output (spec
// §6.1 "Nearest neighbors").
type NeighborRecord struct {
	SourceID  int32
	Neighbors []NeighborScore
}

// WriteNeighborRecord appends one record per §6.1: source-id:int, k:int,
// k×(neighbor-id:int, score:float).
func WriteNeighborRecord(w io.Writer, rec NeighborRecord) error {
	if err := WriteInt32(w, rec.SourceID); err != nil {
		return err
	}
	if err := WriteInt32(w, int32(len(rec.Neighbors))); err != nil {
		return err
	}
	for _, n := range rec.Neighbors {
		if err := WriteInt32(w, n.NeighborID); err != nil {
			return err
		}
		var score32 float64 = n.Score
		if err := WriteFloat64(w, score32); err != nil {
			return err
		}
	}
	return nil
}

// ReadNeighborRecord reads one record previously written by
// WriteNeighborRecord, or io.EOF at the end of the stream.
func ReadNeighborRecord(r io.Reader) (NeighborRecord, error) {
	sourceID, err := ReadInt32(r)
	if err != nil {
		return NeighborRecord{}, err
	}
	k, err := ReadInt32(r)
	if err != nil {
		return NeighborRecord{}, err
	}
	neighbors := make([]NeighborScore, k)
	for i := int32(0); i < k; i++ {
		id, err := ReadInt32(r)
		if err != nil {
			return NeighborRecord{}, err
		}
		score, err := ReadFloat64(r)
		if err != nil {
			return NeighborRecord{}, err
		}
		neighbors[i] = NeighborScore{NeighborID: id, Score: score}
	}
	return NeighborRecord{SourceID: sourceID, Neighbors: neighbors}, nil
}

// NNEngine is the nearest-neighbor engine (C12, spec §4.9). Every input
// structure is treated as an immutable, read-only reference for the
// duration of Run.
type NNEngine struct {
	Articles []Article // indexed by article-id
	Indices  *IndexSet
	Pruner   PrunerTunings
	Tunings  NNTunings
}

// stage is the per-source-article state machine named in spec §4.9:
// IDLE -> PRUNED -> SCORED -> EMITTED.
type stage int

const (
	stageIdle stage = iota
	stagePruned
	stageScored
	stageEmitted
)

// Run drives every article in e.Articles through candidate generation,
// scoring, and top-k truncation, appending each resulting record to w
// under a single serialising mutex (spec §5 "NN output file: writes are
// serialised behind a mutex; the file layout is append-only"). Each
// worker owns its own Pruner (spec §5 "per-worker, never shared").
func (e *NNEngine) Run(w io.Writer) error {
	workers := e.Tunings.Workers
	if workers < 1 {
		workers = NumServe()
	}

	jobs := make(chan int, ChanDepth())
	var writeMu sync.Mutex
	var writeErr error
	var errMu sync.Mutex

	var wg sync.WaitGroup
	wg.Add(workers)
	for wkr := 0; wkr < workers; wkr++ {
		go func() {
			defer wg.Done()
			pruner := NewPruner(e.Pruner)
			for i := range jobs {
				rec := e.processArticle(i, pruner)

				writeMu.Lock()
				err := WriteNeighborRecord(w, rec)
				writeMu.Unlock()

				if err != nil {
					errMu.Lock()
					if writeErr == nil {
						writeErr = err
					}
					errMu.Unlock()
				}
			}
		}()
	}

	for i := range e.Articles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return writeErr
}

// processArticle runs the full IDLE->EMITTED pipeline for one source
// article (spec §4.9 steps 1-4).
func (e *NNEngine) processArticle(sourceIdx int, pruner *Pruner) NeighborRecord {
	source := e.Articles[sourceIdx]
	st := stageIdle

	candidates := e.generateCandidates(source, pruner)
	st = stagePruned
	_ = st

	scored := e.scoreCandidates(source, candidates)
	st = stageScored
	_ = st

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if e.Tunings.MaxNeighbors > 0 && len(scored) > e.Tunings.MaxNeighbors {
		scored = scored[:e.Tunings.MaxNeighbors]
	}
	st = stageEmitted
	_ = st

	return NeighborRecord{SourceID: source.ID, Neighbors: scored}
}

// generateCandidates implements step 1: for each positively-weighted
// component, fan out the source's own ids through the "with
// coordinates" index, prune at the component's threshold, remove the
// source's own id, and union the per-component candidate sets.
func (e *NNEngine) generateCandidates(source Article, pruner *Pruner) map[int32]bool {
	out := make(map[int32]bool)

	addComponent := func(ids []int32, index *InvertedIndex, threshold int) {
		if len(ids) == 0 {
			return
		}
		var lists [][]Posting
		for _, id := range ids {
			if list := index.Get(id); len(list) > 0 {
				lists = append(lists, list)
			}
		}
		if len(lists) == 0 {
			return
		}
		for id := range pruner.PruneAtLeastK(lists, threshold) {
			out[id] = true
		}
	}

	if e.Tunings.Weights.Text > 0 {
		addComponent(source.TFIDF.IDs, e.Indices.WordsWithCoords, e.Tunings.TextThreshold)
	}
	if e.Tunings.Weights.Locations > 0 {
		addComponent(source.NamedLocations.IDs, e.Indices.LocationsWithCoords, e.Tunings.LocationThreshold)
	}
	if e.Tunings.Weights.Categories > 0 {
		addComponent(source.CategoryIDs, e.Indices.CategoriesWithCoords, e.Tunings.CategoryThreshold)
	}

	delete(out, source.ID)
	return out
}

// scoreCandidates implements steps 2-3's scoring half: for each
// candidate with defined coordinates, compute the combined score and
// drop it if below MinSimilarity.
func (e *NNEngine) scoreCandidates(source Article, candidates map[int32]bool) []NeighborScore {
	sourceCategories := CategorySetVector(source.CategoryIDs)

	out := make([]NeighborScore, 0, len(candidates))
	for id := range candidates {
		if int(id) < 0 || int(id) >= len(e.Articles) {
			continue
		}
		candidate := e.Articles[id]
		if !candidate.HasCoordinates {
			continue
		}

		var cosText, cosLocations, jaccard float64
		if e.Tunings.Weights.Text > 0 {
			cosText = SortedCosine(source.TFIDF, candidate.TFIDF)
		}
		if e.Tunings.Weights.Locations > 0 {
			cosLocations = SortedCosine(source.NamedLocations, candidate.NamedLocations)
		}
		if e.Tunings.Weights.Categories > 0 {
			jaccard = JaccardFromIntersection(sourceCategories, CategorySetVector(candidate.CategoryIDs))
		}

		score := CombinedScore(cosText, cosLocations, jaccard, e.Tunings.Weights)
		if score < e.Tunings.MinSimilarity {
			continue
		}

		out = append(out, NeighborScore{NeighborID: id, Score: score})
	}
	return out
}

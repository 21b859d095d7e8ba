package gir

// Pruner is the quick k-of-n intersection counter over posting lists
// (spec §4.7, §9 "the quick pruner's reusable 'iteration-stamped' scratch
// array is a deliberate allocator-elision trick; preserve it verbatim and
// per-worker"). A Pruner is never shared between goroutines (spec §5
// "Quick-pruner scratch memory is per-worker").
type Pruner struct {
	mem       []int32
	iteration int32
	maxIter   int32
}

// NewPruner allocates a pruner whose scratch array is sized to at least
// tunings.ScratchSize, ready for repeated Prune calls.
func NewPruner(tunings PrunerTunings) *Pruner {
	size := tunings.ScratchSize
	if size < 1 {
		size = 1
	}
	maxIter := int32(tunings.MaxIteration)
	if maxIter < 2 {
		maxIter = 2
	}
	return &Pruner{
		mem:       make([]int32, size),
		iteration: 1,
		maxIter:   maxIter,
	}
}

// Prune implements the k>=2 path of §4.7: given posting lists, returns
// the set of article-ids appearing in at least 2 of them tagged with
// their exact collision count; the caller applies the >=k filter. k=1 is
// the trivial union, handled separately by PruneUnion.
func (p *Pruner) Prune(lists [][]Posting) map[int32]int {
	result := make(map[int32]int)

	for _, list := range lists {
		for _, posting := range list {
			id := posting.ArticleID
			if int(id) >= len(p.mem) {
				continue
			}
			if p.mem[id] == p.iteration {
				if result[id] == 0 {
					result[id] = 2
				} else {
					result[id]++
				}
			} else {
				p.mem[id] = p.iteration
			}
		}
	}

	p.advance()
	return result
}

// PruneUnion implements the k=1 path: the simple union of article-ids
// across every list.
func PruneUnion(lists [][]Posting) map[int32]bool {
	out := make(map[int32]bool)
	for _, list := range lists {
		for _, posting := range list {
			out[posting.ArticleID] = true
		}
	}
	return out
}

// advance bumps the iteration stamp, resetting the scratch array to zero
// and restarting at 1 only once the stamp reaches maxIter (spec
// §4.7 "this yields a correct collision count per pruning call without
// ever zeroing the scratch between calls").
func (p *Pruner) advance() {
	p.iteration++
	if p.iteration >= p.maxIter {
		for i := range p.mem {
			p.mem[i] = 0
		}
		p.iteration = 1
	}
}

// PruneAtLeastK runs Prune (or the k=1 union) and returns only the ids
// meeting the threshold k.
func (p *Pruner) PruneAtLeastK(lists [][]Posting, k int) map[int32]bool {
	if k <= 1 {
		return PruneUnion(lists)
	}

	counts := p.Prune(lists)
	out := make(map[int32]bool, len(counts))
	for id, c := range counts {
		if c >= k {
			out[id] = true
		}
	}
	return out
}

package gir

import "math"

// Limits collects the tunable thresholds named in spec §6.3. Loading them
// from a properties file is out of scope for this repository; a caller
// populates this struct and passes it in by value.
type Limits struct {
	MaxVectorElements          int // tf-idf top-k per article
	MaxNamedLocationsPerArticle int
	MaxWordIndex                int
	MaxWordsTillVerb            int
	MaxWordsTillPhrase          int
	MaxCharactersPostPhrase     int
	MaxEntitiesDiameterKM       float64
	MaxIndexForTitleRemoval     int
	MaxTitleLengthForRemoval    int
	SegmentCharactersSize       int

	// ExpectedArticleCount sizes a progress denominator only; zero means
	// unknown (open question (b)).
	ExpectedArticleCount int
}

// DefaultLimits returns the limits used throughout the test suite and
// plausible for a full English Wikipedia run.
func DefaultLimits() Limits {
	return Limits{
		MaxVectorElements:           200,
		MaxNamedLocationsPerArticle: 50,
		MaxWordIndex:                500,
		MaxWordsTillVerb:            15,
		MaxWordsTillPhrase:          40,
		MaxCharactersPostPhrase:     300,
		MaxEntitiesDiameterKM:       300,
		MaxIndexForTitleRemoval:     250,
		MaxTitleLengthForRemoval:    250,
		SegmentCharactersSize:       400,
	}
}

// PrunerTunings configures the quick pruner (C10).
type PrunerTunings struct {
	ScratchSize  int // capacity of the iteration-stamped scratch array
	MaxIteration int // iteration value at which mem is zeroed and reset to 1
}

// DefaultPrunerTunings sizes the scratch array conservatively; callers
// building a real corpus should size ScratchSize to at least the largest
// of the title-id, term-id, and category-id spaces.
func DefaultPrunerTunings() PrunerTunings {
	return PrunerTunings{
		ScratchSize:  1 << 20,
		MaxIteration: 1 << 30,
	}
}

// Weights are the nearest-neighbor combination weights (§4.8). They must
// sum to exactly 1 after parsing (open question (c)); parsing itself (the
// decimal-or-p/q literal grammar) belongs to the out-of-scope config
// loader. This type only validates the already-parsed triple.
type Weights struct {
	Text       float64 // alpha
	Locations  float64 // beta
	Categories float64 // gamma
}

// Validate reports a configuration error if the weights do not sum to 1
// (within floating-point tolerance) or if any weight is negative.
func (w Weights) Validate() error {
	if w.Text < 0 || w.Locations < 0 || w.Categories < 0 {
		return ErrConfiguration
	}
	sum := w.Text + w.Locations + w.Categories
	if math.Abs(sum-1) > 1e-9 {
		return ErrConfiguration
	}
	return nil
}

// NNTunings configures the nearest-neighbor engine (C12).
type NNTunings struct {
	Workers              int
	TextThreshold        int // k1: tf-idf pruning threshold
	LocationThreshold    int // k2: named-location pruning threshold
	CategoryThreshold    int // k3: category pruning threshold
	MinSimilarity        float64
	MaxNeighbors         int
	Weights              Weights
	TerminationWaitMillis int
}

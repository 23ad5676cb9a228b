// Package rank implements spec.md §4.8: combining BM25 and heuristic
// scores into a single ranking signal per sentence, and deciding whether
// the document is relevant to the query at all.
package rank

import "github.com/rohmanhakim/queryexcerpt/internal/scoring/heuristic"

// Config holds the ranker's tunables. Defaults match spec.md §4.8.
type Config struct {
	WeightBM25       float64
	WeightHeuristic  float64
	HeuristicWeights heuristic.Weights
}

func DefaultConfig() Config {
	return Config{
		WeightBM25:       0.6,
		WeightHeuristic:  0.4,
		HeuristicWeights: heuristic.DefaultWeights(),
	}
}

// Candidate is a scored sentence ready for ranking, anchoring, and
// expansion.
type Candidate struct {
	GlobalIndex       int
	BM25Score         float64
	NormBM25          float64
	HeuristicMetrics  heuristic.Metrics
	HeuristicCombined float64
	CombinedScore     float64
}

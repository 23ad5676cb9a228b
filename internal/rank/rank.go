package rank

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/scoring/heuristic"
)

// Rank min-max normalizes BM25 scores, combines them with each
// candidate's heuristic metrics, and sorts by combined score descending
// with globalIndex ascending as the deterministic tie-break.
func Rank(candidates []Candidate, cfg Config) []Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	minBM25, maxBM25 := candidates[0].BM25Score, candidates[0].BM25Score
	for _, c := range candidates {
		if c.BM25Score < minBM25 {
			minBM25 = c.BM25Score
		}
		if c.BM25Score > maxBM25 {
			maxBM25 = c.BM25Score
		}
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	spread := maxBM25 - minBM25
	for i := range ranked {
		if spread == 0 {
			ranked[i].NormBM25 = 0.5
		} else {
			ranked[i].NormBM25 = (ranked[i].BM25Score - minBM25) / spread
		}
		ranked[i].HeuristicCombined = heuristic.Combine(ranked[i].HeuristicMetrics, cfg.HeuristicWeights)
		ranked[i].CombinedScore = cfg.WeightBM25*ranked[i].NormBM25 + cfg.WeightHeuristic*ranked[i].HeuristicCombined
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CombinedScore != ranked[j].CombinedScore {
			return ranked[i].CombinedScore > ranked[j].CombinedScore
		}
		return ranked[i].GlobalIndex < ranked[j].GlobalIndex
	})

	return ranked
}

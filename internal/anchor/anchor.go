// Package anchor implements spec.md §4.9: a greedy selection of
// top-ranked sentences that seed independent excerpt regions, diverse
// enough from each other that the final excerpts don't all repeat the
// same point.
package anchor

import "github.com/rohmanhakim/queryexcerpt/internal/rank"

// Config holds the selector's thresholds. Defaults match spec.md §4.9.
type Config struct {
	MinScore          float64
	DiversityThreshold float64
	MinPositionGap    int
	MaxAnchors        int
}

func DefaultConfig() Config {
	return Config{
		MinScore:           0.25,
		DiversityThreshold: 0.4,
		MinPositionGap:     3,
		MaxAnchors:         5,
	}
}

// TokenSource supplies the token set behind a candidate's jaccard
// similarity comparison, keyed by GlobalIndex.
type TokenSource func(globalIndex int) []string

// Select implements the greedy pass: candidates are already sorted by
// combined score descending (rank.Rank's output order). Each candidate is
// accepted only if its score clears MinScore, it sits at least
// MinPositionGap sentences away from every already-accepted anchor, and
// its token-set jaccard similarity to every accepted anchor is at or
// below DiversityThreshold. Selection stops once MaxAnchors are accepted.
func Select(candidates []rank.Candidate, tokens TokenSource, cfg Config) []rank.Candidate {
	var accepted []rank.Candidate

	for _, c := range candidates {
		if len(accepted) >= cfg.MaxAnchors {
			break
		}
		if c.CombinedScore < cfg.MinScore {
			continue
		}

		ok := true
		for _, a := range accepted {
			gap := c.GlobalIndex - a.GlobalIndex
			if gap < 0 {
				gap = -gap
			}
			if gap < cfg.MinPositionGap {
				ok = false
				break
			}
			if jaccard(tokens(c.GlobalIndex), tokens(a.GlobalIndex)) > cfg.DiversityThreshold {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, c)
		}
	}

	return accepted
}

func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

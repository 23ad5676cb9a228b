// Package dedupe implements spec.md §4.11: merging chunks that overlap
// heavily, dropping near-duplicates outright, and removing chunks whose
// sentence set is a subset of (or identical to) another surviving chunk's.
package dedupe

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/expand"
)

// Config holds the deduper's thresholds. Defaults match spec.md §4.11.
type Config struct {
	MergeOverlapThreshold     float64
	DuplicateJaccardThreshold float64
}

func DefaultConfig() Config {
	return Config{
		MergeOverlapThreshold:     0.3,
		DuplicateJaccardThreshold: 0.72,
	}
}

// Dedupe runs both phases of spec.md §4.11 and returns the surviving
// chunks sorted by score descending, anchor index ascending.
func Dedupe(chunks []expand.Chunk, cfg Config) []expand.Chunk {
	merged := mergeOverlapping(chunks, cfg)
	survivors := removeSubsets(merged)
	sortChunks(survivors)
	return survivors
}

func sortChunks(chunks []expand.Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].Score != chunks[j].Score {
			return chunks[i].Score > chunks[j].Score
		}
		return chunks[i].AnchorGlobalIndex < chunks[j].AnchorGlobalIndex
	})
}

func sentenceIndexSet(c expand.Chunk) map[int]struct{} {
	set := make(map[int]struct{}, len(c.Sentences))
	for _, s := range c.Sentences {
		set[s.GlobalIndex] = struct{}{}
	}
	return set
}

func overlapRatio(a, b map[int]struct{}) float64 {
	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}
	if len(smaller) == 0 {
		return 0
	}
	intersection := 0
	for idx := range smaller {
		if _, ok := larger[idx]; ok {
			intersection++
		}
	}
	return float64(intersection) / float64(len(smaller))
}

func jaccardRatio(a, b map[int]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for idx := range a {
		if _, ok := b[idx]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

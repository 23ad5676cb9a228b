package dedupe

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/expand"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// mergeOverlapping implements spec.md §4.11 phase A: chunks are visited in
// score-descending, anchor-ascending order; a chunk whose sentence overlap
// with an already-accepted chunk clears MergeOverlapThreshold is merged
// into it (transitively — later chunks compare against the merged
// result), a chunk that is merely near-duplicate by jaccard similarity is
// dropped, and everything else is accepted as its own chunk.
func mergeOverlapping(chunks []expand.Chunk, cfg Config) []expand.Chunk {
	ordered := append([]expand.Chunk(nil), chunks...)
	sortChunks(ordered)

	var accepted []expand.Chunk
	var acceptedSets []map[int]struct{}

	for _, c := range ordered {
		cSet := sentenceIndexSet(c)

		mergedInto := -1
		for i, aSet := range acceptedSets {
			if overlapRatio(cSet, aSet) >= cfg.MergeOverlapThreshold {
				mergedInto = i
				break
			}
		}
		if mergedInto >= 0 {
			accepted[mergedInto] = mergeChunks(accepted[mergedInto], c)
			acceptedSets[mergedInto] = sentenceIndexSet(accepted[mergedInto])
			continue
		}

		isDuplicate := false
		for _, aSet := range acceptedSets {
			if jaccardRatio(cSet, aSet) >= cfg.DuplicateJaccardThreshold {
				isDuplicate = true
				break
			}
		}
		if isDuplicate {
			continue
		}

		accepted = append(accepted, c)
		acceptedSets = append(acceptedSets, cSet)
	}

	return accepted
}

// mergeChunks unions two chunks' sentences by GlobalIndex, re-renders the
// combined text, and inherits anchor index, heading path, and score from
// whichever of the two chunks scored higher.
func mergeChunks(a, b expand.Chunk) expand.Chunk {
	byGlobalIndex := make(map[int]segment.Sentence, len(a.Sentences)+len(b.Sentences))
	for _, s := range a.Sentences {
		byGlobalIndex[s.GlobalIndex] = s
	}
	for _, s := range b.Sentences {
		byGlobalIndex[s.GlobalIndex] = s
	}

	indices := make([]int, 0, len(byGlobalIndex))
	for idx := range byGlobalIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	merged := make([]segment.Sentence, len(indices))
	for i, idx := range indices {
		merged[i] = byGlobalIndex[idx]
	}

	text, charCount := expand.Render(merged)

	higher := a
	if b.Score > a.Score {
		higher = b
	}

	return expand.Chunk{
		AnchorGlobalIndex: higher.AnchorGlobalIndex,
		HeadingPath:       higher.HeadingPath,
		Sentences:         merged,
		Text:              text,
		CharCount:         charCount,
		Score:             higher.Score,
	}
}

package dedupe

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/expand"
)

// removeSubsets implements spec.md §4.11 phase B: chunks are visited in
// sentence-count-descending, anchor-ascending order, and a chunk whose
// entire sentence-index set is already covered by a previously accepted
// (necessarily larger-or-equal) chunk is dropped.
func removeSubsets(chunks []expand.Chunk) []expand.Chunk {
	ordered := append([]expand.Chunk(nil), chunks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Sentences) != len(ordered[j].Sentences) {
			return len(ordered[i].Sentences) > len(ordered[j].Sentences)
		}
		return ordered[i].AnchorGlobalIndex < ordered[j].AnchorGlobalIndex
	})

	var accepted []expand.Chunk
	var acceptedSets []map[int]struct{}

	for _, c := range ordered {
		cSet := sentenceIndexSet(c)
		isSubset := false
		for _, aSet := range acceptedSets {
			if isSubsetOf(cSet, aSet) {
				isSubset = true
				break
			}
		}
		if isSubset {
			continue
		}
		accepted = append(accepted, c)
		acceptedSets = append(acceptedSets, cSet)
	}

	return accepted
}

func isSubsetOf(small, large map[int]struct{}) bool {
	if len(small) > len(large) {
		return false
	}
	for idx := range small {
		if _, ok := large[idx]; !ok {
			return false
		}
	}
	return true
}

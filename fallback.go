package queryexcerpt

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/assemble"
	"github.com/rohmanhakim/queryexcerpt/internal/dedupe"
	"github.com/rohmanhakim/queryexcerpt/internal/expand"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// extractEmptyQuery implements spec.md §6: with no query terms to score
// against, BM25 and the heuristic metrics have nothing to measure, so
// Extract instead surfaces up to MaxAnchors early sentences (position <
// 0.4) in document order, scored by how early they are (1 - position),
// and runs them through the same expand/dedupe/assemble budget as a
// normal result.
func extractEmptyQuery(sentences []segment.Sentence, query string, cfg Config) ExtractionResult {
	var anchors []int
	for i, s := range sentences {
		if s.Position < 0.4 {
			anchors = append(anchors, i)
		}
		if len(anchors) >= cfg.Anchor.MaxAnchors {
			break
		}
	}

	chunks := make([]expand.Chunk, 0, len(anchors))
	for _, idx := range anchors {
		score := 1 - sentences[idx].Position
		chunks = append(chunks, expand.Expand(sentences, idx, score, cfg.Expand))
	}

	sort.SliceStable(chunks, func(i, j int) bool { return chunks[i].Score > chunks[j].Score })

	deduped := dedupe.Dedupe(chunks, cfg.Dedupe)
	assembled := assemble.Assemble(deduped, cfg.Assemble)
	excerpts := toExcerpts(assembled)

	return ExtractionResult{
		Outcome:    OutcomeOK,
		Excerpts:   excerpts,
		TotalChars: totalChars(excerpts),
		Query:      query,
	}
}

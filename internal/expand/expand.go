package expand

import "github.com/rohmanhakim/queryexcerpt/internal/segment"

// Expand grows the sentence at anchorIdx (an index into sentences) into a
// full Chunk: a bounded window of surrounding sentences, rendered to
// display text. score is carried through unchanged for downstream ranking
// of chunks rather than sentences.
func Expand(sentences []segment.Sentence, anchorIdx int, score float64, cfg Config) Chunk {
	start, end := window(sentences, anchorIdx, cfg)
	if cfg.IncludeCodeBlocks {
		start, end = applyCodeBlockBleed(sentences, start, end, cfg)
	}

	span := sentences[start : end+1]
	return Chunk{
		AnchorGlobalIndex: sentences[anchorIdx].GlobalIndex,
		HeadingPath:       sentences[anchorIdx].HeadingPath,
		Sentences:         span,
		Text:              buildChunkText(span),
		CharCount:         rawCharCount(span),
		Score:             score,
	}
}

// Render rebuilds a chunk's display text and raw character count from an
// arbitrary sentence set, exported so package dedupe can recompute both
// after merging two chunks' sentences together.
func Render(sentences []segment.Sentence) (text string, charCount int) {
	return buildChunkText(sentences), rawCharCount(sentences)
}

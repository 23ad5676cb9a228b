package expand

import "github.com/rohmanhakim/queryexcerpt/internal/segment"

// applyCodeBlockBleed implements spec.md §4.10's rule for a window whose
// trailing edge lands inside or just before a code block: a heading
// always stops growth immediately; a single trailing code block is kept
// whole if doing so doesn't blow the chunk past 1.5x the character
// budget, otherwise growth continues past it into ordinary prose blocks
// instead, up to the budget.
func applyCodeBlockBleed(sentences []segment.Sentence, start, end int, cfg Config) (int, int) {
	end = bleedForward(sentences, start, end, cfg)
	return start, end
}

func bleedForward(sentences []segment.Sentence, start, end int, cfg Config) int {
	if end >= len(sentences)-1 {
		return end
	}
	next := sentences[end+1]
	if next.BlockType.IsHeading() {
		return end
	}
	if next.BlockType != segment.BlockPre {
		return end
	}

	preEnd := end + 1
	for preEnd+1 < len(sentences) && sentences[preEnd+1].BlockIndex == next.BlockIndex {
		preEnd++
	}

	projected := rawCharCount(sentences[start : preEnd+1])
	if float64(projected) <= 1.5*float64(cfg.MaxChunkChars) {
		return preEnd
	}

	// The trailing code block is too large to swallow whole; skip past it
	// and keep extending through ordinary prose up to the budget.
	cursor := preEnd
	for cursor+1 < len(sentences) {
		candidate := sentences[cursor+1]
		if candidate.BlockType.IsHeading() || candidate.BlockType == segment.BlockPre {
			break
		}
		if rawCharCount(sentences[start:cursor+2]) > cfg.MaxChunkChars {
			break
		}
		cursor++
	}
	return cursor
}

func rawCharCount(sentences []segment.Sentence) int {
	total := 0
	for _, s := range sentences {
		total += len([]rune(s.Text))
	}
	return total
}

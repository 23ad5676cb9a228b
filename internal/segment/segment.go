package segment

import (
	"github.com/rohmanhakim/queryexcerpt/internal/tokenizer"
	"golang.org/x/net/html"
)

// Segment implements spec.md §4.3 end to end: it walks container into
// Blocks, splits paragraph and list-item blocks into sentences (headings
// and code blocks are emitted as a single sentence each), and stamps every
// resulting Sentence with its block/global indices and normalized
// document position.
func Segment(container *html.Node, opts Options) []Sentence {
	if container == nil {
		return nil
	}

	blocks := collectBlocks(container, opts)
	if len(blocks) == 0 {
		return nil
	}

	totalBlocks := len(blocks)
	var sentences []Sentence
	globalIndex := 0

	for _, b := range blocks {
		var texts []string
		switch b.Type {
		case BlockP, BlockLI:
			texts = splitSentences(b.Text)
			if len(texts) == 0 {
				texts = []string{b.Text}
			}
		default:
			texts = []string{b.Text}
		}

		position := blockPosition(b.Index, totalBlocks)

		for si, text := range texts {
			sentences = append(sentences, Sentence{
				Text:          text,
				Tokens:        tokenizer.Tokenize(text, tokenizer.DefaultOptions()),
				HeadingPath:   b.HeadingPath,
				BlockType:     b.Type,
				BlockIndex:    b.Index,
				SentenceIndex: si,
				GlobalIndex:   globalIndex,
				Position:      position,
			})
			globalIndex++
		}
	}

	return sentences
}

// blockPosition implements spec.md §4.3's position = blockIndex /
// max(1, N-1), which collapses to 0 for a single-block document.
func blockPosition(blockIndex, totalBlocks int) float64 {
	denom := totalBlocks - 1
	if denom < 1 {
		denom = 1
	}
	return float64(blockIndex) / float64(denom)
}

package expand

import (
	"strings"

	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// buildChunkText implements spec.md §4.10's chunk formatting: headings get
// blank-line separation, code blocks are fenced, list items get a
// leading "- " with a blank line only when entering the list from a
// non-list block, and paragraph sentences from the same block run
// together with a single space while paragraphs following a heading or
// code block get blank-line separation.
func buildChunkText(sentences []segment.Sentence) string {
	var b strings.Builder
	first := true
	prevBlockIndex := -1
	var prevBlockType segment.BlockType

	for _, s := range sentences {
		sameBlock := !first && s.BlockIndex == prevBlockIndex

		switch {
		case s.BlockType.IsHeading():
			if !first {
				b.WriteString("\n\n")
			}
			b.WriteString(s.Text)

		case s.BlockType == segment.BlockPre:
			if !first {
				b.WriteString("\n\n")
			}
			b.WriteString("```\n")
			b.WriteString(s.Text)
			b.WriteString("\n```")

		case s.BlockType == segment.BlockLI:
			switch {
			case sameBlock:
				b.WriteString(" ")
			case prevBlockType == segment.BlockLI:
				b.WriteString("\n- ")
			default:
				if !first {
					b.WriteString("\n")
				}
				b.WriteString("\n- ")
			}
			b.WriteString(s.Text)

		case s.BlockType == segment.BlockP:
			switch {
			case first:
				// no separator before the first sentence
			case sameBlock:
				b.WriteString(" ")
			default:
				// A new block boundary, whether it follows a heading, a
				// code block, or another paragraph: blank-line separated.
				b.WriteString("\n\n")
			}
			b.WriteString(s.Text)
		}

		prevBlockIndex = s.BlockIndex
		prevBlockType = s.BlockType
		first = false
	}

	return strings.TrimSpace(b.String())
}

package heuristic

import (
	"strings"

	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// blockTypeBaseline gives each block type a prior: list items and
// paragraphs are the most commonly excerpt-worthy prose, headings are
// signposts rather than content, and code blocks sit between the two.
var blockTypeBaseline = map[segment.BlockType]float64{
	segment.BlockP:   0.8,
	segment.BlockLI:  0.7,
	segment.BlockPre: 0.65,
	segment.BlockH1:  0.4,
	segment.BlockH2:  0.4,
	segment.BlockH3:  0.4,
	segment.BlockH4:  0.4,
	segment.BlockH5:  0.4,
	segment.BlockH6:  0.4,
}

// StructureScore implements spec.md §4.7's block-type structural prior,
// with bonuses for sentences near a code block, sentences that share
// their block with other query-relevant sentences, and content sentences
// whose ancestor heading path contains a query term.
func StructureScore(s segment.Sentence, queryTerms []string, nearCodeBlock, sharesBlockWithMatch bool) float64 {
	score := blockTypeBaseline[s.BlockType]

	if nearCodeBlock {
		score += 0.1
	}
	if sharesBlockWithMatch {
		score += 0.15
	}
	if headingPathContainsAnyTerm(s.HeadingPath, queryTerms) {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}

func headingPathContainsAnyTerm(headingPath []string, queryTerms []string) bool {
	for _, h := range headingPath {
		lower := strings.ToLower(h)
		for _, t := range queryTerms {
			if t != "" && strings.Contains(lower, t) {
				return true
			}
		}
	}
	return false
}

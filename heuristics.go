package queryexcerpt

import (
	"github.com/rohmanhakim/queryexcerpt/internal/scoring/bm25"
	"github.com/rohmanhakim/queryexcerpt/internal/scoring/heuristic"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
	"github.com/rohmanhakim/queryexcerpt/internal/tokenizer"
)

// codeAdjacencyWindow is spec.md §4.7's structure-metric radius: any other
// sentence within this many globalIndex positions of a `pre` block earns
// that block's neighbors a code-adjacency bonus.
const codeAdjacencyWindow = 2

// sameBlockOverlapThreshold is spec.md §4.7's structure-metric cutoff: a
// sentence earns the same-block bonus when another sentence sharing its
// block overlaps the query above this ratio.
const sameBlockOverlapThreshold = 0.3

// buildHeuristicMetrics computes spec.md §4.7's nine metrics for every
// sentence in one pass, precomputing the corpus-wide inputs (nearest
// preceding heading, density baseline, per-block query matches) each
// metric needs so no metric has to rescan the whole document itself.
func buildHeuristicMetrics(sentences []segment.Sentence, queryTokens []string, stats bm25.DocumentStats) []heuristic.Metrics {
	n := len(sentences)
	if n == 0 {
		return nil
	}

	nearestHeadingGlobalIndex, nearestHeadingTokens := nearestPrecedingHeadings(sentences)
	nearCodeBlock := nearCodeBlocks(sentences)
	sharesBlockWithMatch := sharesBlockAboveOverlap(sentences, queryTokens)

	rawDensities := make([]float64, n)
	for i, s := range sentences {
		rawDensities[i] = heuristic.RawDensity(s.Tokens, queryTokens)
	}
	densityStats := heuristic.BuildDensityStats(rawDensities)

	metrics := make([]heuristic.Metrics, n)
	for i, s := range sentences {
		var headingProximity float64
		if nearestHeadingGlobalIndex[i] < 0 {
			headingProximity = 0.3
		} else {
			distance := s.GlobalIndex - nearestHeadingGlobalIndex[i]
			headingProximity = heuristic.HeadingProximityScore(distance, nearestHeadingTokens[i], queryTokens)
		}

		metrics[i] = heuristic.Metrics{
			HeadingPath:      heuristic.HeadingPathScore(s.HeadingPath, queryTokens, stats.IDF),
			Coverage:         heuristic.CoverageScore(s.Tokens, queryTokens, stats.IDF),
			Proximity:        heuristic.ProximityScore(s.Tokens, queryTokens),
			HeadingProximity: headingProximity,
			Structure:        heuristic.StructureScore(s, queryTokens, nearCodeBlock[i], sharesBlockWithMatch[i]),
			Density:          heuristic.DensityScore(s.Tokens, queryTokens),
			Outlier:          heuristic.OutlierScore(rawDensities[i], densityStats),
			MetaSection:      heuristic.MetaSectionScore(s.HeadingPath, s.Text),
			Position:         heuristic.PositionScore(s.Position),
		}
	}
	return metrics
}

// nearestPrecedingHeadings returns, for each sentence, the globalIndex
// (or -1 if none) and tokens of the nearest heading sentence strictly
// before it in document order.
func nearestPrecedingHeadings(sentences []segment.Sentence) ([]int, [][]string) {
	n := len(sentences)
	globalIndex := make([]int, n)
	tokens := make([][]string, n)

	lastGlobalIndex := -1
	var lastTokens []string
	for i, s := range sentences {
		globalIndex[i] = lastGlobalIndex
		tokens[i] = lastTokens
		if s.BlockType.IsHeading() {
			lastGlobalIndex = s.GlobalIndex
			lastTokens = s.Tokens
		}
	}
	return globalIndex, tokens
}

// nearCodeBlocks reports, for each sentence, whether another sentence
// within codeAdjacencyWindow globalIndex positions is a `pre` block.
func nearCodeBlocks(sentences []segment.Sentence) []bool {
	n := len(sentences)
	result := make([]bool, n)
	for i, s := range sentences {
		for j := i - codeAdjacencyWindow; j <= i+codeAdjacencyWindow; j++ {
			if j < 0 || j >= n || j == i {
				continue
			}
			other := sentences[j]
			diff := s.GlobalIndex - other.GlobalIndex
			if diff < 0 {
				diff = -diff
			}
			if diff <= codeAdjacencyWindow && other.BlockType == segment.BlockPre {
				result[i] = true
				break
			}
		}
	}
	return result
}

// sharesBlockAboveOverlap reports, for each sentence, whether another
// sentence in the same block overlaps the query terms above
// sameBlockOverlapThreshold.
func sharesBlockAboveOverlap(sentences []segment.Sentence, queryTokens []string) []bool {
	n := len(sentences)
	byBlock := make(map[int][]int)
	for i, s := range sentences {
		byBlock[s.BlockIndex] = append(byBlock[s.BlockIndex], i)
	}

	result := make([]bool, n)
	for i, s := range sentences {
		for _, j := range byBlock[s.BlockIndex] {
			if j == i {
				continue
			}
			if tokenizer.TermOverlapRatio(queryTokens, sentences[j].Tokens) > sameBlockOverlapThreshold {
				result[i] = true
				break
			}
		}
	}
	return result
}

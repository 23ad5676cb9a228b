// Package assemble implements spec.md §4.12: the final budget-bounded
// selection of deduplicated chunks into the excerpts actually returned.
package assemble

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/expand"
)

// Config holds the assembler's thresholds. Defaults match spec.md §4.12.
type Config struct {
	MinExcerptChars int
	CharBudget      int
	MaxExcerpts     int
}

func DefaultConfig() Config {
	return Config{
		MinExcerptChars: 50,
		CharBudget:      2000,
		MaxExcerpts:     3,
	}
}

// Assemble implements the exact accumulation rule of spec.md §4.12: chunks
// are visited score-descending, anchor-ascending; a chunk shorter than
// MinExcerptChars is skipped; a chunk that would push the running total
// past CharBudget is also skipped, but scanning continues to later,
// possibly-smaller chunks rather than stopping outright — later chunks
// can still fit even after an earlier one didn't. Assembly stops only once
// MaxExcerpts chunks have been accepted or the candidates are exhausted.
func Assemble(chunks []expand.Chunk, cfg Config) []expand.Chunk {
	ordered := append([]expand.Chunk(nil), chunks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].AnchorGlobalIndex < ordered[j].AnchorGlobalIndex
	})

	var accepted []expand.Chunk
	total := 0

	for _, c := range ordered {
		if len(accepted) >= cfg.MaxExcerpts {
			break
		}
		if c.CharCount < cfg.MinExcerptChars {
			continue
		}
		if total+c.CharCount > cfg.CharBudget {
			continue
		}
		accepted = append(accepted, c)
		total += c.CharCount
	}

	return accepted
}

package queryexcerpt

import (
	"github.com/rohmanhakim/queryexcerpt/internal/anchor"
	"github.com/rohmanhakim/queryexcerpt/internal/assemble"
	"github.com/rohmanhakim/queryexcerpt/internal/citation"
	"github.com/rohmanhakim/queryexcerpt/internal/dedupe"
	"github.com/rohmanhakim/queryexcerpt/internal/diagnostics"
	"github.com/rohmanhakim/queryexcerpt/internal/expand"
	"github.com/rohmanhakim/queryexcerpt/internal/preprocess"
	"github.com/rohmanhakim/queryexcerpt/internal/quality"
	"github.com/rohmanhakim/queryexcerpt/internal/rank"
	"github.com/rohmanhakim/queryexcerpt/internal/scoring/bm25"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
	"github.com/rohmanhakim/queryexcerpt/internal/tokenizer"
)

const stageExtract = "extract"

// Extract runs the full pipeline against rawHTML for query, using cfg's
// thresholds and weights. Content defects (no main container, no
// sentences, an all-citation document, low-quality prose, or an
// irrelevant document) are reported through Outcome rather than as a Go
// error: only a misconfigured cfg ever returns an error, and Build
// catches that before Extract is ever called.
func Extract(rawHTML, query string, cfg Config) ExtractionResult {
	digest := diagnostics.ContentDigest(rawHTML)

	pre := preprocess.Preprocess(rawHTML)
	if pre.Container == nil {
		diagnostics.RecordOutcome(cfg.Recorder, stageExtract, "preprocess", diagnostics.CauseNoMainContent,
			"no main content container found", diagnostics.NewAttr(diagnostics.AttrDigest, digest))
		return ExtractionResult{Outcome: OutcomeNoMainContent, Query: query}
	}

	sentences := segment.Segment(pre.Container, segment.DefaultOptions())
	if len(sentences) == 0 {
		diagnostics.RecordOutcome(cfg.Recorder, stageExtract, "segment", diagnostics.CauseNoSentences,
			"no sentences found in main content")
		return ExtractionResult{Outcome: OutcomeNoSentences, Query: query}
	}

	if !cfg.SkipQualityCheck {
		if report := quality.Evaluate(sentences, cfg.Quality); !report.Passes {
			diagnostics.RecordOutcome(cfg.Recorder, stageExtract, "quality", diagnostics.CauseLowQuality, report.Reason)
			return ExtractionResult{Outcome: OutcomeLowQuality, Query: query, QualityRejectReason: report.Reason}
		}
	}

	filtered := citation.Filter(sentences)
	if len(filtered) == 0 {
		diagnostics.RecordOutcome(cfg.Recorder, stageExtract, "citation", diagnostics.CauseAllCitations,
			"every sentence was classified as a citation")
		return ExtractionResult{Outcome: OutcomeAllCitations, Query: query}
	}

	queryTokens := tokenizer.Tokenize(query, tokenizer.DefaultOptions())
	if len(queryTokens) == 0 {
		return extractEmptyQuery(filtered, query, cfg)
	}

	stats := bm25.BuildDocumentStats(filtered)
	metrics := buildHeuristicMetrics(filtered, queryTokens, stats)

	candidates := make([]rank.Candidate, len(filtered))
	maxBM25 := 0.0
	maxCooccurrence := 0
	sentenceHasTerm := make(map[string]bool, len(queryTokens))
	for i, s := range filtered {
		bm25Score := stats.Score(queryTokens, i, cfg.BM25)
		candidates[i] = rank.Candidate{
			GlobalIndex:      s.GlobalIndex,
			BM25Score:        bm25Score,
			HeuristicMetrics: metrics[i],
		}
		if bm25Score > maxBM25 {
			maxBM25 = bm25Score
		}

		present := make(map[string]struct{}, len(s.Tokens))
		for _, t := range s.Tokens {
			present[t] = struct{}{}
		}
		cooccurrence := 0
		seen := make(map[string]struct{}, len(queryTokens))
		for _, q := range queryTokens {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			if _, ok := present[q]; ok {
				cooccurrence++
				sentenceHasTerm[q] = true
			}
		}
		if cooccurrence > maxCooccurrence {
			maxCooccurrence = cooccurrence
		}
	}

	uniqueQuery := make(map[string]struct{}, len(queryTokens))
	for _, q := range queryTokens {
		uniqueQuery[q] = struct{}{}
	}
	coverage := 0.0
	if len(uniqueQuery) > 0 {
		coverage = float64(len(sentenceHasTerm)) / float64(len(uniqueQuery))
	}

	centralThreshold := len(filtered) / 10
	if len(filtered)%10 != 0 {
		centralThreshold++
	}
	if centralThreshold < 3 {
		centralThreshold = 3
	}
	centralTerm := false
	for q := range uniqueQuery {
		if stats.DocFreq(q) >= centralThreshold {
			centralTerm = true
			break
		}
	}

	ranked := rank.Rank(candidates, cfg.Rank)

	relevance := RelevanceMetrics{
		SentenceCount:     len(filtered),
		QueryTermCoverage: coverage,
		MaxBM25:           maxBM25,
		MaxCooccurrence:   maxCooccurrence,
	}
	relevance.HasRelevantResults = rank.IsRelevant(maxBM25, coverage, maxCooccurrence, centralTerm, cfg.RelevanceMode)
	if !relevance.HasRelevantResults {
		diagnostics.RecordOutcome(cfg.Recorder, stageExtract, "rank", diagnostics.CauseNotRelevant,
			"no sentence cleared the relevance threshold", diagnostics.NewAttr(diagnostics.AttrQuery, query))
		return ExtractionResult{Outcome: OutcomeNotRelevant, Query: query, Relevance: relevance}
	}

	indexByGlobal := make(map[int]int, len(filtered))
	for i, s := range filtered {
		indexByGlobal[s.GlobalIndex] = i
	}
	tokensByGlobal := func(globalIndex int) []string {
		return filtered[indexByGlobal[globalIndex]].Tokens
	}

	anchors := anchor.Select(ranked, tokensByGlobal, cfg.Anchor)

	chunks := make([]expand.Chunk, 0, len(anchors))
	for _, a := range anchors {
		sliceIdx, ok := indexByGlobal[a.GlobalIndex]
		if !ok {
			continue
		}
		chunks = append(chunks, expand.Expand(filtered, sliceIdx, a.CombinedScore, cfg.Expand))
	}

	deduped := dedupe.Dedupe(chunks, cfg.Dedupe)
	assembled := assemble.Assemble(deduped, cfg.Assemble)
	excerpts := toExcerpts(assembled)

	return ExtractionResult{
		Outcome:    OutcomeOK,
		Excerpts:   excerpts,
		TotalChars: totalChars(excerpts),
		Query:      query,
		Relevance:  relevance,
	}
}

func toExcerpts(chunks []expand.Chunk) []Excerpt {
	out := make([]Excerpt, len(chunks))
	for i, c := range chunks {
		out[i] = Excerpt{
			Text:              c.Text,
			HeadingPath:       c.HeadingPath,
			CharCount:         c.CharCount,
			Score:             c.Score,
			AnchorGlobalIndex: c.AnchorGlobalIndex,
		}
	}
	return out
}

func totalChars(excerpts []Excerpt) int {
	total := 0
	for _, e := range excerpts {
		total += e.CharCount
	}
	return total
}

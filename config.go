package queryexcerpt

import (
	"fmt"

	"github.com/rohmanhakim/queryexcerpt/internal/anchor"
	"github.com/rohmanhakim/queryexcerpt/internal/assemble"
	"github.com/rohmanhakim/queryexcerpt/internal/dedupe"
	"github.com/rohmanhakim/queryexcerpt/internal/diagnostics"
	"github.com/rohmanhakim/queryexcerpt/internal/expand"
	"github.com/rohmanhakim/queryexcerpt/internal/quality"
	"github.com/rohmanhakim/queryexcerpt/internal/rank"
	"github.com/rohmanhakim/queryexcerpt/internal/scoring/bm25"
)

// Config bundles every stage's tunables. Build a Config with
// DefaultConfig, chain WithXxx calls to override specific stages, and
// finish with Build to validate the result.
type Config struct {
	Quality       quality.Config
	BM25          bm25.Config
	Rank          rank.Config
	RelevanceMode rank.Mode
	Anchor        anchor.Config
	Expand        expand.Config
	Dedupe        dedupe.Config
	Assemble      assemble.Config
	Recorder      diagnostics.Recorder

	// SkipQualityCheck bypasses the §4.4 quality gate entirely, for
	// callers (such as a multi-page search orchestrator comparing many
	// thin snippets) that would rather rank a low-signal document than
	// reject it outright.
	SkipQualityCheck bool
}

// DefaultConfig returns the configuration every spec.md default threshold
// and weight resolves to.
func DefaultConfig() Config {
	return Config{
		Quality:       quality.DefaultConfig(),
		BM25:          bm25.DefaultConfig(),
		Rank:          rank.DefaultConfig(),
		RelevanceMode: rank.ModeSearch,
		Anchor:        anchor.DefaultConfig(),
		Expand:        expand.DefaultConfig(),
		Dedupe:        dedupe.DefaultConfig(),
		Assemble:      assemble.DefaultConfig(),
		Recorder:      diagnostics.NoopRecorder{},
	}
}

func (c Config) WithQuality(q quality.Config) Config        { c.Quality = q; return c }
func (c Config) WithBM25(b bm25.Config) Config              { c.BM25 = b; return c }
func (c Config) WithRank(r rank.Config) Config              { c.Rank = r; return c }
func (c Config) WithRelevanceMode(m rank.Mode) Config        { c.RelevanceMode = m; return c }
func (c Config) WithAnchor(a anchor.Config) Config           { c.Anchor = a; return c }
func (c Config) WithExpand(e expand.Config) Config           { c.Expand = e; return c }
func (c Config) WithDedupe(d dedupe.Config) Config           { c.Dedupe = d; return c }
func (c Config) WithAssemble(a assemble.Config) Config       { c.Assemble = a; return c }
func (c Config) WithRecorder(r diagnostics.Recorder) Config  { c.Recorder = r; return c }
func (c Config) WithSkipQualityCheck(skip bool) Config       { c.SkipQualityCheck = skip; return c }

// Build validates Config and fills in a NoopRecorder if none was set. It
// never loads configuration from a file, environment variable, or flag —
// callers own assembling a Config from whatever surface they expose.
func (c Config) Build() (Config, error) {
	if c.Recorder == nil {
		c.Recorder = diagnostics.NoopRecorder{}
	}

	sum := c.Rank.HeuristicWeights.HeadingPath + c.Rank.HeuristicWeights.Coverage +
		c.Rank.HeuristicWeights.Proximity + c.Rank.HeuristicWeights.HeadingProximity +
		c.Rank.HeuristicWeights.Structure + c.Rank.HeuristicWeights.Density +
		c.Rank.HeuristicWeights.Outlier + c.Rank.HeuristicWeights.MetaSection +
		c.Rank.HeuristicWeights.Position
	if sum < 0.999 || sum > 1.001 {
		return c, fmt.Errorf("queryexcerpt: heuristic weights must sum to 1.0, got %f", sum)
	}
	if c.Rank.WeightBM25+c.Rank.WeightHeuristic < 0.999 || c.Rank.WeightBM25+c.Rank.WeightHeuristic > 1.001 {
		return c, fmt.Errorf("queryexcerpt: bm25/heuristic weights must sum to 1.0")
	}
	if c.Assemble.MaxExcerpts <= 0 {
		return c, fmt.Errorf("queryexcerpt: MaxExcerpts must be positive")
	}
	if c.Anchor.MaxAnchors <= 0 {
		return c, fmt.Errorf("queryexcerpt: MaxAnchors must be positive")
	}
	return c, nil
}

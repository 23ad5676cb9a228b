package queryexcerpt_test

import (
	"strings"
	"testing"

	queryexcerpt "github.com/rohmanhakim/queryexcerpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longParagraph(n int, sentencePrefix string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(sentencePrefix)
		b.WriteString(" This paragraph contains a reasonably long sentence to satisfy the quality gate.")
		b.WriteString(" ")
	}
	return b.String()
}

func widgetDoc() string {
	return `<html><body><main>
		<h1>Widget Factory Overview</h1>
		<p>` + longParagraph(3, "The widget factory produces thousands of widgets every single day of the year.") + `</p>
		<h2>Manufacturing Process</h2>
		<p>` + longParagraph(3, "Workers assemble each widget using a specialized widget assembly process on the line.") + `</p>
		<h2>Unrelated Section</h2>
		<p>` + longParagraph(3, "The cafeteria serves lunch to employees every day at exactly noon without exception.") + `</p>
	</main></body></html>`
}

func TestExtract_NoMainContentYieldsOutcome(t *testing.T) {
	result := queryexcerpt.Extract(`<html><body><nav><a href="/">Home</a></nav></body></html>`, "widget", queryexcerpt.DefaultConfig())
	assert.Equal(t, queryexcerpt.OutcomeNoMainContent, result.Outcome)
	assert.Empty(t, result.Excerpts)
}

func TestExtract_EmptyHTMLYieldsNoMainContent(t *testing.T) {
	result := queryexcerpt.Extract("", "widget", queryexcerpt.DefaultConfig())
	assert.Equal(t, queryexcerpt.OutcomeNoMainContent, result.Outcome)
}

func TestExtract_RelevantQueryYieldsExcerpts(t *testing.T) {
	result := queryexcerpt.Extract(widgetDoc(), "widget assembly process", queryexcerpt.DefaultConfig())
	require.Equal(t, queryexcerpt.OutcomeOK, result.Outcome)
	require.NotEmpty(t, result.Excerpts)
	assert.Contains(t, strings.ToLower(result.Excerpts[0].Text), "widget")
}

func TestExtract_IrrelevantQueryYieldsNotRelevant(t *testing.T) {
	result := queryexcerpt.Extract(widgetDoc(), "astrophysics supernova nebula", queryexcerpt.DefaultConfig())
	assert.Equal(t, queryexcerpt.OutcomeNotRelevant, result.Outcome)
	assert.Empty(t, result.Excerpts)
}

func TestExtract_EmptyQueryUsesPositionFallback(t *testing.T) {
	result := queryexcerpt.Extract(widgetDoc(), "", queryexcerpt.DefaultConfig())
	assert.Equal(t, queryexcerpt.OutcomeOK, result.Outcome)
}

func TestExtract_IsDeterministic(t *testing.T) {
	cfg := queryexcerpt.DefaultConfig()
	first := queryexcerpt.Extract(widgetDoc(), "widget assembly", cfg)
	second := queryexcerpt.Extract(widgetDoc(), "widget assembly", cfg)
	assert.Equal(t, first, second)
}

func TestExtract_RespectsCharBudget(t *testing.T) {
	cfg := queryexcerpt.DefaultConfig()
	result := queryexcerpt.Extract(widgetDoc(), "widget assembly process", cfg)
	total := 0
	for _, e := range result.Excerpts {
		total += e.CharCount
	}
	assert.LessOrEqual(t, total, cfg.Assemble.CharBudget)
}

func TestConfig_BuildRejectsBadWeights(t *testing.T) {
	cfg := queryexcerpt.DefaultConfig()
	cfg.Rank.WeightBM25 = 0.9
	cfg.Rank.WeightHeuristic = 0.9
	_, err := cfg.Build()
	assert.Error(t, err)
}

func TestConfig_BuildAcceptsDefaults(t *testing.T) {
	_, err := queryexcerpt.DefaultConfig().Build()
	assert.NoError(t, err)
}

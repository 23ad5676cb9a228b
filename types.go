// Package queryexcerpt extracts the excerpts of an HTML document most
// relevant to a natural-language or keyword query: a twelve-stage
// pipeline that tokenizes the query, strips an HTML document down to its
// main content, segments that content into sentences, filters out
// citations and low-quality prose, scores what remains against the query
// with BM25 and a battery of structural heuristics, and assembles the
// highest-scoring, most diverse regions into a small set of excerpts
// under a character budget.
package queryexcerpt

// Outcome classifies why Extract produced the excerpts it did, including
// the empty case. It is a result field, never a Go error: a document with
// no relevant content is a normal, well-defined outcome, not a failure.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNoMainContent Outcome = "no_main_content"
	OutcomeNoSentences   Outcome = "no_sentences"
	OutcomeAllCitations  Outcome = "all_citations"
	OutcomeLowQuality    Outcome = "low_quality"
	OutcomeNotRelevant   Outcome = "not_relevant"
)

// Excerpt is one assembled chunk of the source document, ready to display.
type Excerpt struct {
	Text              string
	HeadingPath       []string
	CharCount         int
	Score             float64
	AnchorGlobalIndex int
}

// RelevanceMetrics records the signals Extract used to decide whether the
// document discusses the query at all, mirroring spec.md §6's
// relevanceMetrics output.
type RelevanceMetrics struct {
	HasRelevantResults bool
	SentenceCount      int
	QueryTermCoverage  float64
	MaxBM25            float64
	MaxCooccurrence    int
}

// ExtractionResult is Extract's full return value.
type ExtractionResult struct {
	Outcome             Outcome
	Excerpts            []Excerpt
	TotalChars          int
	Query               string
	Relevance           RelevanceMetrics
	QualityRejectReason string
}

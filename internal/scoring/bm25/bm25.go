// Package bm25 implements spec.md §4.6's Okapi BM25 scorer over the
// tokenized sentences produced by package segment, grounded on the BM25
// reference implementations in the example corpus.
package bm25

import (
	"math"

	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// Config holds the BM25 free parameters. Defaults match spec.md §4.6.
type Config struct {
	K1 float64
	B  float64
}

func DefaultConfig() Config {
	return Config{K1: 1.5, B: 0.75}
}

// DocumentStats precomputes the per-term document frequency and average
// document length a corpus of sentences needs for IDF and length
// normalization. A "document" here is a single sentence.
type DocumentStats struct {
	N               int
	AvgDocLength    float64
	documentFreq    map[string]int
	termFrequencies []map[string]int
	docLengths      []int
}

// BuildDocumentStats indexes sentences once so Score can be called
// repeatedly against the same corpus without re-scanning it.
func BuildDocumentStats(sentences []segment.Sentence) DocumentStats {
	stats := DocumentStats{
		N:               len(sentences),
		documentFreq:    make(map[string]int),
		termFrequencies: make([]map[string]int, len(sentences)),
		docLengths:      make([]int, len(sentences)),
	}

	totalLength := 0
	for i, s := range sentences {
		tf := make(map[string]int, len(s.Tokens))
		for _, t := range s.Tokens {
			tf[t]++
		}
		stats.termFrequencies[i] = tf
		stats.docLengths[i] = len(s.Tokens)
		totalLength += len(s.Tokens)

		for term := range tf {
			stats.documentFreq[term]++
		}
	}

	if stats.N > 0 {
		stats.AvgDocLength = float64(totalLength) / float64(stats.N)
	}
	return stats
}

// Score computes the BM25 score of the document at docIndex against the
// tokenized query, using cfg's k1/b parameters. Duplicate query terms
// contribute independently, so repeating a term in the query multiplies
// its effect on the score.
func (stats DocumentStats) Score(queryTokens []string, docIndex int, cfg Config) float64 {
	if len(queryTokens) == 0 || docIndex < 0 || docIndex >= stats.N {
		return 0
	}
	docLength := stats.docLengths[docIndex]
	if docLength == 0 {
		return 0
	}
	tf := stats.termFrequencies[docIndex]

	var score float64
	for _, term := range queryTokens {
		df := stats.documentFreq[term]
		termIDF := termIDF(stats.N, df)
		termFreq := float64(tf[term])
		if termFreq == 0 {
			continue
		}
		numerator := termFreq * (cfg.K1 + 1)
		denominator := termFreq + cfg.K1*(1-cfg.B+cfg.B*float64(docLength)/stats.AvgDocLength)
		score += termIDF * numerator / denominator
	}
	return score
}

// DocFreq exposes the raw number of sentences a term appears in, for
// callers that need document frequency directly rather than idf-weighted
// (such as the ranker's central-term detection in spec.md §4.8 step 4).
func (stats DocumentStats) DocFreq(term string) int {
	return stats.documentFreq[term]
}

// IDF exposes the corpus inverse document frequency of a single term, for
// callers (such as package heuristic's heading-path metric) that need idf
// weighting without recomputing a full BM25 score.
func (stats DocumentStats) IDF(term string) float64 {
	return termIDF(stats.N, stats.documentFreq[term])
}

// termIDF implements spec.md §4.6's exact formula:
//
//	idf(t) = ln((N - df + 0.5) / (df + 0.5) + 1)
//
// which for an unseen term (df=0) reduces to ln((N + 0.5)/0.5 + 1).
func termIDF(n, df int) float64 {
	return math.Log((float64(n-df)+0.5)/(float64(df)+0.5) + 1)
}

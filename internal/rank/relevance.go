package rank

// Mode selects how strictly a document must match the query before its
// sentences are considered worth excerpting at all.
type Mode string

const (
	// ModeStrict requires a strong individual signal: a high-scoring
	// sentence or near-complete query coverage somewhere in the document.
	ModeStrict Mode = "strict"
	// ModeSearch is more permissive, matching the tolerance a keyword
	// search box needs: partial coverage combined with term co-occurrence
	// is enough.
	ModeSearch Mode = "search"
)

// IsRelevant implements spec.md §4.8 step 5's relevance gate: a document
// with no sentence clearing at least one of these rules is treated as not
// discussing the query at all, short-circuiting the rest of the pipeline.
//
// maxBM25 is the highest BM25 score seen across the document's sentences;
// coverage is the fraction of distinct query terms that appear in at
// least one sentence; maxCooccurrence is the largest number of distinct
// query terms found together in a single sentence; centralTerm reports
// whether some query term is central to the document (present in at
// least max(3, ceil(0.1N)) sentences).
func IsRelevant(maxBM25, coverage float64, maxCooccurrence int, centralTerm bool, mode Mode) bool {
	if mode == ModeStrict {
		switch {
		case maxCooccurrence >= 2 && maxBM25 > 1.0:
			return true
		case centralTerm && maxBM25 > 0.8:
			return true
		case coverage >= 0.8 && maxBM25 > 0.5:
			return true
		default:
			return false
		}
	}

	switch {
	case maxBM25 > 0.8 && coverage >= 0.25:
		return true
	case maxCooccurrence >= 2 && maxBM25 > 0.5:
		return true
	case centralTerm && maxBM25 > 0.4:
		return true
	case coverage >= 0.5 && maxBM25 > 0.3:
		return true
	default:
		return false
	}
}

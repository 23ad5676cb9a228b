package heuristic

// CoverageScore implements spec.md §4.7's coverage metric: a 0.7/0.3 blend
// of idf-weighted and simple fractional coverage of the distinct query
// terms present in the sentence. Weighting by idf means covering a rare
// term moves the score more than covering a common one. idf is supplied
// by the caller so this package stays decoupled from how idf is computed
// across the corpus.
func CoverageScore(sentenceTokens, queryTerms []string, idf func(term string) float64) float64 {
	return 0.7*idfCoverage(sentenceTokens, queryTerms, idf) + 0.3*simpleCoverage(sentenceTokens, queryTerms)
}

// AnyTermPresent reports whether any distinct query term appears among
// tokens, for callers that only need a membership check rather than a
// weighted coverage score.
func AnyTermPresent(tokens, queryTerms []string) bool {
	present := toSet(tokens)
	for _, q := range queryTerms {
		if _, ok := present[q]; ok {
			return true
		}
	}
	return false
}

func simpleCoverage(sentenceTokens, queryTerms []string) float64 {
	if len(queryTerms) == 0 {
		return 0
	}
	present := toSet(sentenceTokens)
	hits := 0
	seen := make(map[string]struct{}, len(queryTerms))
	for _, q := range queryTerms {
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		if _, ok := present[q]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(seen))
}

func idfCoverage(sentenceTokens, queryTerms []string, idf func(term string) float64) float64 {
	if len(queryTerms) == 0 || idf == nil {
		return 0
	}
	present := toSet(sentenceTokens)
	seen := make(map[string]struct{}, len(queryTerms))
	var matched, total float64
	for _, q := range queryTerms {
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		w := idf(q)
		total += w
		if _, ok := present[q]; ok {
			matched += w
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

package heuristic

// DensityScore blends raw query-term frequency density with coverage, per
// spec.md §4.7: a sentence that repeats a few query terms densely but
// misses most of the query should not outscore one that covers the whole
// query even thinly.
func DensityScore(sentenceTokens, queryTerms []string) float64 {
	raw := RawDensity(sentenceTokens, queryTerms)
	cov := simpleCoverage(sentenceTokens, queryTerms)
	return 0.4*raw + 0.6*cov
}

// RawDensity is the fraction of sentenceTokens that are query terms,
// exported so callers building corpus-wide DensityStats (package
// queryexcerpt's outlier precomputation) share this exact definition
// rather than reimplementing it.
func RawDensity(sentenceTokens, queryTerms []string) float64 {
	if len(sentenceTokens) == 0 || len(queryTerms) == 0 {
		return 0
	}
	query := toSet(queryTerms)
	hits := 0
	for _, t := range sentenceTokens {
		if _, ok := query[t]; ok {
			hits++
		}
	}
	d := float64(hits) / float64(len(sentenceTokens))
	if d > 1 {
		d = 1
	}
	return d
}

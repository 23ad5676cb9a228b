package heuristic

import "strings"

// HeadingPathScore rewards sentences whose heading ancestry textually
// overlaps with the query, weighted by how informative each overlapping
// query term is (idf, supplied by the caller so this package stays
// decoupled from how idf is computed across the corpus).
func HeadingPathScore(headingPath []string, queryTerms []string, idf func(term string) float64) float64 {
	if len(headingPath) == 0 || len(queryTerms) == 0 {
		return 0
	}
	pathText := strings.ToLower(strings.Join(headingPath, " "))
	pathWords := toSet(strings.Fields(pathText))

	var matched, total float64
	seen := make(map[string]struct{}, len(queryTerms))
	for _, term := range queryTerms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		weight := idf(term)
		total += weight
		if _, ok := pathWords[term]; ok {
			matched += weight
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

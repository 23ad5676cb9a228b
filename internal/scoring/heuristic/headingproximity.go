package heuristic

import "github.com/rohmanhakim/queryexcerpt/internal/tokenizer"

// HeadingProximityScore implements spec.md §4.7's heading-proximity
// metric: content close to a heading that is itself about the query
// scores highest, content close to an off-topic heading scores
// moderately, and content far from any heading fades toward zero.
// distance is the globalIndex gap to the nearest preceding heading;
// headingTokens are that heading's tokens and queryTerms the query's.
func HeadingProximityScore(distance int, headingTokens, queryTerms []string) float64 {
	if distance < 0 {
		distance = 0
	}
	distScore := 1.0 / (1.0 + float64(distance)/5.0)

	overlap := tokenizer.TermOverlapRatio(queryTerms, headingTokens)
	if overlap > 0 {
		v := 0.6*overlap + 0.4*distScore
		if v > 1 {
			v = 1
		}
		return v
	}
	return 0.5 * distScore
}

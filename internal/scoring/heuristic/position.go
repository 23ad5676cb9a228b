package heuristic

// PositionScore implements spec.md §4.7's piecewise-linear position
// metric: sentences near the top of a document tend to carry introductory
// context and score highest, sentences in the middle score moderately,
// and trailing sentences (often footers or appendices) score lowest. The
// curve interpolates linearly through (0, 1.0), (0.3, 0.7), (0.7, 0.5),
// and (1.0, 0.3).
func PositionScore(position float64) float64 {
	switch {
	case position <= 0.3:
		return 1.0 - position/0.3*0.3
	case position <= 0.7:
		return 0.7 - (position-0.3)/0.4*0.2
	default:
		return 0.5 - (position-0.7)/0.3*0.2
	}
}

// Package heuristic implements spec.md §4.7's nine structural and lexical
// metrics that complement BM25 with signals BM25 alone cannot see: where a
// sentence sits in the document, how its heading ancestry relates to the
// query, and how its block type and neighbors behave.
package heuristic

// Weights holds the nine metric weights, which must sum to 1.0.
type Weights struct {
	HeadingPath      float64
	Coverage         float64
	Proximity        float64
	HeadingProximity float64
	Structure        float64
	Density          float64
	Outlier          float64
	MetaSection      float64
	Position         float64
}

func DefaultWeights() Weights {
	return Weights{
		HeadingPath:      0.17,
		Coverage:         0.16,
		Proximity:        0.14,
		HeadingProximity: 0.11,
		Structure:        0.11,
		Density:          0.09,
		Outlier:          0.09,
		MetaSection:      0.08,
		Position:         0.05,
	}
}

// Metrics holds the nine raw per-sentence metric values, each in [0, 1],
// before they are combined by Combine.
type Metrics struct {
	HeadingPath      float64
	Coverage         float64
	Proximity        float64
	HeadingProximity float64
	Structure        float64
	Density          float64
	Outlier          float64
	MetaSection      float64
	Position         float64
}

// Combine computes the weighted sum of a Metrics value.
func Combine(m Metrics, w Weights) float64 {
	return m.HeadingPath*w.HeadingPath +
		m.Coverage*w.Coverage +
		m.Proximity*w.Proximity +
		m.HeadingProximity*w.HeadingProximity +
		m.Structure*w.Structure +
		m.Density*w.Density +
		m.Outlier*w.Outlier +
		m.MetaSection*w.MetaSection +
		m.Position*w.Position
}

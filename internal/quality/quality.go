package quality

import (
	"sort"

	"github.com/rohmanhakim/queryexcerpt/internal/segment"
)

// Evaluate implements spec.md §4.4. Checks run in priority order and the
// first failing check determines Reason; all four metrics are always
// computed and returned regardless of which check failed.
func Evaluate(sentences []segment.Sentence, cfg Config) Report {
	if len(sentences) == 0 {
		return Report{FragmentRatio: 1, Passes: false, Reason: "No sentences found"}
	}

	total := len(sentences)
	long := 0
	fragments := 0
	lengths := make([]int, total)
	for i, s := range sentences {
		l := len([]rune(s.Text))
		lengths[i] = l
		if l > cfg.LongSentenceLength {
			long++
		}
		if l < cfg.FragmentLength {
			fragments++
		}
	}
	fragmentRatio := float64(fragments) / float64(total)
	median := medianOf(lengths)

	report := Report{
		TotalSentences:       total,
		LongSentenceCount:    long,
		FragmentRatio:        fragmentRatio,
		MedianSentenceLength: median,
		Passes:               true,
	}

	switch {
	case total < cfg.MinTotalSentences:
		report.Passes = false
		report.Reason = "Too few sentences"
	case long < cfg.MinLongSentences:
		report.Passes = false
		report.Reason = "Too few substantial sentences"
	case fragmentRatio > cfg.MaxFragmentRatio:
		report.Passes = false
		report.Reason = "Too many sentence fragments"
	case median < cfg.MinMedianSentenceLen:
		report.Passes = false
		report.Reason = "Median sentence length too low"
	}

	return report
}

func medianOf(lengths []int) float64 {
	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

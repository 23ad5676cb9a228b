package citation

import "github.com/rohmanhakim/queryexcerpt/internal/segment"

// Filter removes every sentence that IsCitation flags, preserving order.
func Filter(sentences []segment.Sentence) []segment.Sentence {
	out := make([]segment.Sentence, 0, len(sentences))
	for _, s := range sentences {
		if !IsCitation(s.Text) {
			out = append(out, s)
		}
	}
	return out
}

// Package tokenizer turns raw sentence and query text into normalized,
// stemmed token sequences, and supplies the small set-similarity helpers
// every downstream scoring stage needs.
package tokenizer

// Options controls a single Tokenize call. The zero value is not directly
// useful; callers should start from DefaultOptions.
type Options struct {
	RemoveStopWords bool
	ApplyStemming   bool
	MinLength       int
}

// DefaultOptions matches spec.md §4.1's defaults.
func DefaultOptions() Options {
	return Options{
		RemoveStopWords: true,
		ApplyStemming:   true,
		MinLength:       2,
	}
}

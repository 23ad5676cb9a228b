package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Tokenize implements spec.md §4.1: camelCase split, lowercase, punctuation
// removal, whitespace split with a minimum length, stop-word removal, and
// Porter stemming — in that order.
func Tokenize(text string, opts Options) []string {
	split := splitCamelCase(text)
	lowered := strings.ToLower(split)
	cleaned := stripPunctuation(lowered)

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < opts.MinLength {
			continue
		}
		if opts.RemoveStopWords && IsStopWord(word) {
			continue
		}
		if opts.ApplyStemming {
			word = stem(word)
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// stem applies the Porter stemming algorithm via the Snowball English
// stemmer. A stemming failure (the library only errors on unsupported
// languages, which "english" never is) falls back to the original word
// rather than dropping it.
func stem(word string) string {
	stemmed, err := english.Stem(word, false)
	if err != nil {
		return word
	}
	return stemmed
}

// splitCamelCase inserts a space between a lowercase-then-uppercase
// transition and between a run of uppercase letters followed by a
// lowercase letter, so "createXMLParser" becomes "create XML Parser".
func splitCamelCase(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(runes) + 8)

	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			// [lower][UPPER] boundary.
			if unicode.IsLower(prev) && unicode.IsUpper(r) {
				b.WriteByte(' ')
			} else if i+1 < len(runes) {
				// [UPPER+][Upper][lower] boundary: only split before the
				// last uppercase letter of a run when it is immediately
				// followed by a lowercase letter, e.g. "XMLParser" -> "XML Parser".
				next := runes[i+1]
				if unicode.IsUpper(prev) && unicode.IsUpper(r) && unicode.IsLower(next) {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripPunctuation replaces any rune that is neither a letter nor a digit
// with a space, then collapses whitespace runs.
func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

package segment

import (
	"strings"
	"unicode"
)

// abbreviations is the closed set of tokens that must not be treated as a
// sentence boundary even though they are immediately followed by a period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "st": {}, "ave": {}, "blvd": {},
	"rd": {}, "e.g": {}, "i.e": {}, "cf": {}, "al": {}, "fig": {}, "vol": {},
	"no": {},
}

// splitSentences scans for '.', '!', or '?' followed by a space and an
// uppercase letter, or by end of text, treating that as a sentence
// boundary — unless the word immediately preceding the punctuation is a
// known abbreviation, in which case the scan continues into the same
// sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		atEnd := i == len(runes)-1
		followedByCapital := i+2 < len(runes) && runes[i+1] == ' ' && unicode.IsUpper(runes[i+2])
		if !atEnd && !followedByCapital {
			continue
		}
		if isAbbreviationBefore(runes, i) {
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}

	if start < len(runes) {
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			sentences = append(sentences, rest)
		}
	}
	return sentences
}

// isAbbreviationBefore extracts the run of letters and periods ending
// immediately before the punctuation at idx and checks it against the
// abbreviation list, case-insensitively.
func isAbbreviationBefore(runes []rune, idx int) bool {
	end := idx
	start := end
	for start > 0 {
		r := runes[start-1]
		if unicode.IsLetter(r) || r == '.' {
			start--
			continue
		}
		break
	}
	if start == end {
		return false
	}
	word := strings.ToLower(string(runes[start:end]))
	_, ok := abbreviations[word]
	return ok
}

// Package citation implements spec.md §4.5: pattern-based detection of
// sentences that are citations, footnotes, or reference-list entries
// rather than prose worth scoring or excerpting.
package citation

import "regexp"

// strongPatterns match regardless of sentence length: a sentence matching
// any of these is a citation no matter how long it reads.
var strongPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\^`),
	regexp.MustCompile(`(?i)\b(retrieved|accessed)\s+(on\s+)?\w+\s+\d{1,2},?\s+\d{4}`),
	regexp.MustCompile(`(?i)archived\s+from\s+the\s+original`),
	regexp.MustCompile(`(?i)\bdoi:\s*\S+`),
	regexp.MustCompile(`(?i)\bisbn[\s:-]*[\d-]{10,17}`),
	regexp.MustCompile(`(?i)\bpmid:\s*\d+`),
	regexp.MustCompile(`(?i)\barxiv:\s*\d{4}\.\d{4,5}`),
	regexp.MustCompile(`(?i)\bissn\s*\d{4}-\d{3}[\dx]`),
	regexp.MustCompile(`^\s*\[\d+\]`),
}

// shortSentencePatterns only mark a sentence as a citation when it is
// also short (see isShort): a standalone domain or publisher name reads
// like a footnote at 30 characters but like a legitimate clause at 300.
var shortSentencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(www\.)?[a-z0-9-]+\.(com|org|net|edu|gov|io)\s*\.?\s*$`),
	regexp.MustCompile(`(?i)^\s*(retrieved|accessed)\b`),
	regexp.MustCompile(`(?i)\b(reuters|associated press|ap news|bloomberg|the new york times|the washington post|bbc news)\b`),
	regexp.MustCompile(`^\s*(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\.?\s*$`),
	regexp.MustCompile(`^\s*[A-Z][a-z]+(\s[A-Z][a-z]+)*,\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\.?\s*$`),
}

const shortSentenceThreshold = 50

func isShort(text string) bool {
	return len([]rune(text)) < shortSentenceThreshold
}

// IsCitation reports whether text reads as a citation, footnote, or
// reference entry rather than prose.
func IsCitation(text string) bool {
	for _, p := range strongPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	if isShort(text) {
		for _, p := range shortSentencePatterns {
			if p.MatchString(text) {
				return true
			}
		}
	}
	return false
}

package heuristic

import (
	"regexp"
	"strings"
)

// metaHeadings is spec.md §4.7's closed Meta-Heading set: headings that
// typically introduce supplementary framing or legal/social boilerplate
// rather than the substance of the page. Matching is a case-insensitive
// full match against the trimmed heading text.
var metaHeadings = map[string]struct{}{
	"introduction": {}, "overview": {}, "prerequisites": {}, "summary": {},
	"conclusion": {}, "tl;dr": {}, "tldr": {}, "takeaways": {}, "key takeaways": {},
	"next steps": {}, "further reading": {}, "references": {}, "see also": {},
	"table of contents": {}, "disclaimer": {}, "privacy": {}, "comments": {},
	"share": {}, "subscribe": {}, "newsletter": {}, "author bio": {},
	"specifications": {}, "browser compatibility": {}, "external links": {},
	"related": {}, "related articles": {}, "notes": {}, "footnotes": {},
	"appendix": {}, "acknowledgments": {}, "acknowledgements": {},
	"changelog": {}, "revision history": {}, "contributors": {},
}

// metaHeadingPatterns catches meta headings whose text varies by subject,
// such as "About this guide" / "About this project".
var metaHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^about this\b`),
}

// metaPhrases is a closed list of sentence-level phrases that mark
// framing or supplementary asides rather than primary prose.
var metaPhrases = []string{
	"in this article", "in this guide", "in this post", "we will cover",
	"we'll cover", "you will learn", "you'll learn", "let's dive",
	"let's get started", "if you enjoyed this", "buy me a coffee",
	"as mentioned above", "as discussed below", "see the section on",
	"for more information, see", "refer to the appendix", "as noted earlier",
}

// MetaSectionScore implements spec.md §4.7's meta-section metric: a
// sentence living under a meta heading scores lowest, a sentence
// containing a meta phrase itself scores slightly higher, and ordinary
// content scores highest.
func MetaSectionScore(headingPath []string, sentenceText string) float64 {
	for _, h := range headingPath {
		trimmed := strings.ToLower(strings.TrimSpace(h))
		if _, ok := metaHeadings[trimmed]; ok {
			return 0.2
		}
		for _, p := range metaHeadingPatterns {
			if p.MatchString(trimmed) {
				return 0.2
			}
		}
	}
	lower := strings.ToLower(sentenceText)
	for _, phrase := range metaPhrases {
		if strings.Contains(lower, phrase) {
			return 0.3
		}
	}
	return 1.0
}

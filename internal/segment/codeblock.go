package segment

import (
	"regexp"
	"strings"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

var lineClassPattern = regexp.MustCompile(`(?i)(^|[\s-])(code-)?line([\s-]|$)`)

var codeBlockTrailingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*(Try|Run|Copy)\s*$`),
	regexp.MustCompile(`(?i)\s*Open in (Playground|CodeSandbox|StackBlitz)\s*$`),
	regexp.MustCompile(`(?i)\s*(Edit|View) on GitHub\s*$`),
}

// extractPreText implements spec.md §4.3's <pre> text extraction, in order
// of preference: per-line elements, <br>-delimited lines, raw text. The
// result is then stripped of trailing UI chrome text that code-block
// widgets commonly append (Try/Run/Copy buttons, "Open in X", "Edit on
// GitHub").
func extractPreText(n *html.Node) string {
	text := extractPreLines(n)
	text = strings.TrimSpace(text)
	for _, p := range codeBlockTrailingPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return strings.TrimRight(text, " \t")
}

func extractPreLines(n *html.Node) string {
	lineNodes := topLevelLineNodes(n)
	if len(lineNodes) > 0 {
		lines := make([]string, len(lineNodes))
		for i, ln := range lineNodes {
			lines[i] = htmlnode.TextContent(ln)
		}
		return strings.Join(lines, "\n")
	}
	return textWithBreaksAsNewlines(n)
}

// topLevelLineNodes finds descendants whose class attribute marks them as
// an individual source line, keeping only the outermost matches so a
// line wrapper containing nested line-numbered spans isn't double counted.
func topLevelLineNodes(n *html.Node) []*html.Node {
	all := htmlnode.CollectMatching(n, func(c *html.Node) bool {
		if c.Type != html.ElementNode || c == n {
			return false
		}
		return lineClassPattern.MatchString(htmlnode.Attr(c, "class"))
	})
	if len(all) == 0 {
		return nil
	}
	var outer []*html.Node
	for _, candidate := range all {
		isNested := false
		for _, other := range all {
			if other != candidate && htmlnode.IsAncestorOrSelf(other, candidate.Parent) {
				isNested = true
				break
			}
		}
		if !isNested {
			outer = append(outer, candidate)
		}
	}
	return outer
}

func textWithBreaksAsNewlines(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			return
		}
		if htmlnode.TagIs(c, "br") {
			b.WriteString("\n")
			return
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return b.String()
}

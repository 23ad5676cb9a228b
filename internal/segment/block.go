package segment

import (
	"regexp"
	"strings"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

var blockTags = map[string]BlockType{
	"h1": BlockH1, "h2": BlockH2, "h3": BlockH3,
	"h4": BlockH4, "h5": BlockH5, "h6": BlockH6,
	"p": BlockP, "li": BlockLI, "pre": BlockPre,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// blockWalker performs the depth-first walk of spec.md §4.3, threading a
// heading-path stack through block emission.
type blockWalker struct {
	opts        Options
	blocks      []Block
	headingPath []string
	index       int
}

func collectBlocks(container *html.Node, opts Options) []Block {
	w := &blockWalker{opts: opts}
	w.walk(container)
	return w.blocks
}

func (w *blockWalker) walk(n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		if bt, ok := blockTags[n.Data]; ok {
			w.emit(n, bt)
			return
		}
		if w.opts.SkipNav && n.Data == "nav" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// emit captures a single Block. Heading blocks follow the asymmetric
// truncate-then-append rule: the stack is truncated to level-1 entries
// BEFORE the heading's own HeadingPath is captured, and the heading's own
// text is appended to the stack only AFTER the block has been emitted. Do
// not reorder these two steps — a heading's HeadingPath never includes
// itself, but every block that follows it does.
func (w *blockWalker) emit(n *html.Node, bt BlockType) {
	var text string
	if bt == BlockPre {
		text = extractPreText(n)
	} else {
		text = normalizeWhitespace(htmlnode.TextContent(n))
	}
	if text == "" {
		return
	}

	if level := bt.HeadingLevel(); level > 0 {
		if level-1 < len(w.headingPath) {
			w.headingPath = w.headingPath[:level-1]
		}
		path := append([]string(nil), w.headingPath...)
		w.blocks = append(w.blocks, Block{Type: bt, Text: text, Index: w.index, HeadingPath: path})
		w.index++
		w.headingPath = append(append([]string(nil), w.headingPath...), text)
		return
	}

	path := append([]string(nil), w.headingPath...)
	w.blocks = append(w.blocks, Block{Type: bt, Text: text, Index: w.index, HeadingPath: path})
	w.index++
}

package preprocess

import (
	"fmt"
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

var candidateSelectors = []string{
	"[role=main]", "#content", "#main-content", ".content",
	".main-content", ".post-content", ".article-content", ".entry-content",
}

type candidate struct {
	node     *html.Node
	selector string
	score    int
}

// locateMainContainer implements spec.md §4.2 stage 3's priority order.
func locateMainContainer(doc *html.Node) (node *html.Node, selector string) {
	gq := goquery.NewDocumentFromNode(doc)

	if mains := gq.Find("main"); mains.Length() > 0 {
		return mains.Nodes[0], "main"
	}

	if articles := gq.Find("article"); articles.Length() > 0 {
		return articles.Nodes[0], "article"
	}

	candidates := collectScoredCandidates(gq)
	if len(candidates) == 0 {
		return nil, ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].selector < candidates[j].selector
	})
	best := candidates[0]
	return best.node, best.selector
}

func collectScoredCandidates(gq *goquery.Document) []candidate {
	var candidates []candidate

	if body := gq.Find("body").First(); body.Length() > 0 {
		bodyNode := body.Nodes[0]
		childIndex := 0
		for c := bodyNode.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			sel := fmt.Sprintf("body>%s:nth-child(%d)", c.Data, childIndex+1)
			candidates = append(candidates, candidate{
				node:     c,
				selector: sel,
				score:    contentScore(c),
			})
			childIndex++
		}
	}

	for _, sel := range candidateSelectors {
		sel := sel
		gq.Find(sel).Each(func(i int, s *goquery.Selection) {
			n := s.Nodes[0]
			candidates = append(candidates, candidate{
				node:     n,
				selector: fmt.Sprintf("%s:nth-of-type(%d)", sel, i+1),
				score:    contentScore(n),
			})
		})
	}

	return candidates
}

// contentScore computes text-chars − 2×link-text-chars per spec.md §4.2.3c.
func contentScore(n *html.Node) int {
	textChars := len([]rune(htmlnode.TextContent(n)))
	linkChars := 0
	for _, a := range htmlnode.CollectMatching(n, func(c *html.Node) bool {
		return htmlnode.TagIs(c, "a")
	}) {
		linkChars += len([]rune(htmlnode.TextContent(a)))
	}
	return textChars - 2*linkChars
}

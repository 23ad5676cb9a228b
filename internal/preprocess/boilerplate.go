package preprocess

import (
	"regexp"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

// boilerplatePatterns match against a node's "id class" string
// (case-insensitive) to flag chrome that isn't caught by tag name alone.
var boilerplatePatterns = compilePatterns([]string{
	`nav(igation)?`, `footer`, `header`, `sidebar`, `menu`, `breadcrumb`,
	`cookie`, `consent`, `banner`, `advert(isement)?`, `ads?`, `social`,
	`share`, `comment`, `related`, `recommend`, `popup`, `modal`,
	`newsletter`, `subscribe`, `signup`, `login`, `signin`, `search`,
	`widget`, `toolbar`, `promo`,
})

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// protectionRoots finds every <main>, <article>, or [role=main] element.
func protectionRoots(doc *html.Node) []*html.Node {
	return htmlnode.CollectMatching(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		if n.Data == "main" || n.Data == "article" {
			return true
		}
		return htmlnode.Attr(n, "role") == "main"
	})
}

// buildProtectionSet returns the set of nodes that must not be removed by
// the boilerplate pass: every node under a protection root (inclusive),
// and every ancestor of a protection root (inclusive) — per spec.md §4.2
// stage 2's "skipping any protected element or ancestor of a protected
// element" rule.
func buildProtectionSet(doc *html.Node) map[*html.Node]struct{} {
	protected := make(map[*html.Node]struct{})
	for _, root := range protectionRoots(doc) {
		for _, n := range htmlnode.CollectMatching(root, func(*html.Node) bool { return true }) {
			protected[n] = struct{}{}
		}
		for cur := root; cur != nil; cur = cur.Parent {
			protected[cur] = struct{}{}
		}
	}
	return protected
}

// removeBoilerplate implements spec.md §4.2 stage 2: remove chrome
// elements and boilerplate-pattern elements, but never a protected node or
// an ancestor of one. Protection markers are implicit (recomputed fresh)
// and discarded once this pass finishes.
func removeBoilerplate(doc *html.Node) {
	protected := buildProtectionSet(doc)

	isProtected := func(n *html.Node) bool {
		_, ok := protected[n]
		return ok
	}

	htmlnode.RemoveAllMatching(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Parent == nil {
			return false
		}
		if isProtected(n) {
			return false
		}
		if _, isChrome := chromeTags[n.Data]; isChrome {
			return true
		}
		return htmlnode.MatchesAny(htmlnode.IDAndClass(n), boilerplatePatterns)
	})
}

package preprocess

import (
	"regexp"
	"strings"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

var uiIDClassPatterns = compilePatterns([]string{
	`copy`, `share`, `action`, `clipboard`, `open-?in`, `feedback`,
	`edit-?page`, `page-?actions`, `toc`, `on-?this-?page`, `sticky`,
	`floating`, `anchor-?link`, `heading-?link`,
})

var tabRolePattern = regexp.MustCompile(`(?i)^(tab|tablist)$`)

var uiTextPatterns = compilePatterns([]string{
	`^copy(\s+as\s+\w+)?$`,
	`^open in \w+`,
	`^(share|copy)(this|link|page)?$`,
	`^edit(this)?(page|on github)?$`,
	`^(give )?feedback$`,
	`^(scroll to )?top$`,
	`^on this page$`,
	`^table of contents$`,
})

var uiRemovableTags = map[string]struct{}{
	"button": {}, "a": {}, "span": {}, "div": {},
}

var widgetClassSubstrings = []string{
	"copy-button", "share-button", "ActionMenu", "PageActions",
	"anchor-link", "heading-link", "sticky",
}

// removeUIWidgets implements spec.md §4.2 stage 4 inside the located main
// container only.
func removeUIWidgets(container *html.Node) {
	removeByIDClassPattern(container)
	removeByShortUIText(container)
	removeByCopyShareAttributes(container)
	removeLinkHeavyNavBlocks(container)
}

func removeByIDClassPattern(container *html.Node) {
	htmlnode.RemoveAllMatching(container, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n == container {
			return false
		}
		if htmlnode.MatchesAny(htmlnode.IDAndClass(n), uiIDClassPatterns) {
			return true
		}
		role := htmlnode.Attr(n, "role")
		if tabRolePattern.MatchString(role) {
			return true
		}
		return hasClassToken(n, "tabs")
	})
}

func hasClassToken(n *html.Node, token string) bool {
	for _, c := range strings.Fields(htmlnode.Attr(n, "class")) {
		if strings.EqualFold(c, token) {
			return true
		}
	}
	return false
}

func removeByShortUIText(container *html.Node) {
	htmlnode.RemoveAllMatching(container, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n == container {
			return false
		}
		if _, ok := uiRemovableTags[n.Data]; !ok {
			return false
		}
		text := strings.TrimSpace(htmlnode.TextContent(n))
		if len(text) == 0 || len(text) >= 50 {
			return false
		}
		return htmlnode.MatchesAny(strings.ToLower(text), uiTextPatterns)
	})
}

func removeByCopyShareAttributes(container *html.Node) {
	htmlnode.RemoveAllMatching(container, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n == container {
			return false
		}
		if htmlnode.Attr(n, "data-copy") != "" || htmlnode.Attr(n, "data-clipboard") != "" {
			return true
		}
		aria := strings.ToLower(htmlnode.Attr(n, "aria-label"))
		if strings.Contains(aria, "copy") || strings.Contains(aria, "share") {
			return true
		}
		title := htmlnode.Attr(n, "title")
		if strings.Contains(title, "Copy") || strings.Contains(title, "Share") {
			return true
		}
		class := htmlnode.Attr(n, "class")
		for _, substr := range widgetClassSubstrings {
			if strings.Contains(class, substr) {
				return true
			}
		}
		return false
	})
}

var linkHeavyTags = map[string]struct{}{"p": {}, "div": {}, "span": {}}

func removeLinkHeavyNavBlocks(container *html.Node) {
	htmlnode.RemoveAllMatching(container, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n == container {
			return false
		}
		if _, ok := linkHeavyTags[n.Data]; !ok {
			return false
		}
		anchors := htmlnode.CollectMatching(n, func(c *html.Node) bool {
			return htmlnode.TagIs(c, "a")
		})
		if len(anchors) < 3 {
			return false
		}
		text := htmlnode.TextContent(n)
		if len([]rune(text)) >= 200 {
			return false
		}
		totalText := len([]rune(strings.TrimSpace(text)))
		if totalText == 0 {
			return false
		}
		linkText := 0
		for _, a := range anchors {
			linkText += len([]rune(strings.TrimSpace(htmlnode.TextContent(a))))
		}
		return float64(linkText)/float64(totalText) > 0.8
	})
}

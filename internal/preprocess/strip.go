package preprocess

import (
	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"golang.org/x/net/html"
)

// stripNonContent removes every node whose tag is in stripTags: scripts,
// styles, link tags, images, iframes, media embeds, form controls,
// noscript, and inline-vector/area elements.
func stripNonContent(doc *html.Node) {
	htmlnode.RemoveAllMatching(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		_, ok := stripTags[n.Data]
		return ok
	})
}

package htmlnode_test

import (
	"strings"
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func find(n *html.Node, tag string) *html.Node {
	for _, m := range htmlnode.CollectMatching(n, func(c *html.Node) bool {
		return htmlnode.TagIs(c, tag)
	}) {
		return m
	}
	return nil
}

func TestRemoveAllMatching(t *testing.T) {
	doc := parse(t, `<html><body><nav>x</nav><p>keep</p></body></html>`)
	htmlnode.RemoveAllMatching(doc, func(n *html.Node) bool { return htmlnode.TagIs(n, "nav") })
	require.Nil(t, find(doc, "nav"))
	require.NotNil(t, find(doc, "p"))
}

func TestDeepClone_Independent(t *testing.T) {
	doc := parse(t, `<html><body><p class="a">hi</p></body></html>`)
	clone := htmlnode.DeepClone(doc)
	p := find(clone, "p")
	require.NotNil(t, p)
	htmlnode.Remove(p)
	require.NotNil(t, find(doc, "p"), "original must be unaffected by mutating the clone")
}

func TestTextContent(t *testing.T) {
	doc := parse(t, `<html><body><p>Hello <b>World</b></p></body></html>`)
	p := find(doc, "p")
	require.Equal(t, "Hello World", htmlnode.TextContent(p))
}

func TestIDAndClass(t *testing.T) {
	doc := parse(t, `<html><body><div id="Nav-Main" class="Sidebar Foo"></div></body></html>`)
	div := find(doc, "div")
	require.Equal(t, "nav-main sidebar foo", htmlnode.IDAndClass(div))
}

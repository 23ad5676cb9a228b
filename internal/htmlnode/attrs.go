package htmlnode

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of the named attribute, or "" if absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// IDAndClass returns the lowercased "id class" string the boilerplate and
// UI-widget pattern tables match against.
func IDAndClass(n *html.Node) string {
	return strings.ToLower(Attr(n, "id") + " " + Attr(n, "class"))
}

// MatchesAny reports whether s matches any of the given compiled patterns.
func MatchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// TagIs reports whether n is an element node with the given tag name.
func TagIs(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// TagIn reports whether n is an element node whose tag name is in tags.
func TagIn(n *html.Node, tags map[string]struct{}) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	_, ok := tags[n.Data]
	return ok
}

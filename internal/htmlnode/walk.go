package htmlnode

import "golang.org/x/net/html"

// Remove detaches n from its parent. A no-op if n has no parent.
func Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// CollectMatching walks the subtree rooted at n (n included) and returns
// every node for which match returns true, descending into matched nodes
// as well. Nothing is removed during the walk — callers collect first,
// then remove, to avoid mutating the tree mid-walk.
func CollectMatching(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var matched []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur == nil {
			return
		}
		if match(cur) {
			matched = append(matched, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return matched
}

// RemoveAllMatching collects then removes every node matching the
// predicate, skipping nodes already detached by removal of an ancestor.
func RemoveAllMatching(root *html.Node, match func(*html.Node) bool) {
	for _, n := range CollectMatching(root, match) {
		if n.Parent != nil {
			Remove(n)
		}
	}
}

// DeepClone returns a full copy of the subtree rooted at n, detached from
// any original parent/sibling pointers.
func DeepClone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(DeepClone(c))
	}
	return clone
}

// TextContent concatenates all descendant text node data, unmodified.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b []byte
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b = append(b, TextContent(c)...)
	}
	return string(b)
}

// IsAncestorOrSelf reports whether target is n or a descendant of n.
func IsAncestorOrSelf(n, target *html.Node) bool {
	for cur := target; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

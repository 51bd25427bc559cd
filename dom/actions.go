package dom

import (
	"golang.org/x/net/html"
)

// Predicate is a boolean function on DOM nodes.
type Predicate func(*html.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement Predicate = func(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// NodeHasID returns a predicate matching elements with a given id attribute.
func NodeHasID(id string) Predicate {
	return func(n *html.Node) bool {
		if !NodeIsElement(n) {
			return false
		}
		v, ok := attr(n, "id")
		return ok && v == id
	}
}

// FirstMatch returns the first node in document order, starting with n,
// for which p holds, or nil.
func FirstMatch(n *html.Node, p Predicate) *html.Node {
	if n == nil {
		return nil
	}
	if p(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := FirstMatch(c, p); m != nil {
			return m
		}
	}
	return nil
}

package substitute

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"decoder/internal/domain"
)

// Attributes lists the element attributes rewritten after an element's
// children, in this order.
var Attributes = []string{"alt", "title", "placeholder"}

var excludedTags = map[atom.Atom]string{
	atom.Script:   "script",
	atom.Style:    "style",
	atom.Noscript: "noscript",
}

// Tree rewrites n and its descendants in place and returns the number of text
// nodes and attributes that changed. n must not be nil.
func Tree(n *html.Node, dict domain.Mapping) int {
	switch n.Type {
	case html.TextNode:
		if out := Text(n.Data, dict); out != n.Data {
			n.Data = out
			return 1
		}
		return 0
	case html.ElementNode:
		if Excluded(n) {
			return 0
		}
		changed := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			changed += Tree(c, dict)
		}
		for _, name := range Attributes {
			if rewriteAttr(n, name, dict) {
				changed++
			}
		}
		return changed
	default:
		return 0
	}
}

// Document rewrites the body of a parsed document. Without a body element,
// every top-level node is walked instead.
func Document(doc *html.Node, dict domain.Mapping) int {
	if body := findBody(doc); body != nil {
		return Tree(body, dict)
	}
	changed := 0
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		changed += Tree(c, dict)
	}
	return changed
}

// Excluded reports whether n is a script, style or noscript element.
func Excluded(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if _, ok := excludedTags[n.DataAtom]; ok {
		return true
	}
	for _, tag := range excludedTags {
		if strings.EqualFold(n.Data, tag) {
			return true
		}
	}
	return false
}

func rewriteAttr(n *html.Node, name string, dict domain.Mapping) bool {
	for i := range n.Attr {
		a := &n.Attr[i]
		if a.Namespace != "" || a.Key != name {
			continue
		}
		out := Text(a.Val, dict)
		if out == a.Val {
			return false
		}
		a.Val = out
		return true
	}
	return false
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// Package htmltree adapts parsed golang.org/x/net/html documents to the
// tree.Node contract.
//
// Only document, element and text nodes are material; comments and
// doctypes are invisible to every axis. Text nodes are leaves.
package htmltree

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/treeq-dev/treeq/pkg/tree"
)

type node struct{ n *html.Node }

// New adapts a parsed HTML node; a nil node maps to nil.
func New(n *html.Node) tree.Node {
	if n == nil {
		return nil
	}
	return node{n}
}

func material(n *html.Node) bool {
	switch n.Type {
	case html.DocumentNode, html.ElementNode, html.TextNode:
		return true
	}
	return false
}

func (a node) Parent() tree.Node {
	for p := a.n.Parent; p != nil; p = p.Parent {
		if material(p) {
			return node{p}
		}
	}
	return nil
}

func (a node) Children() []tree.Node {
	var out []tree.Node
	for c := a.n.FirstChild; c != nil; c = c.NextSibling {
		if material(c) {
			out = append(out, node{c})
		}
	}
	return out
}

func (a node) Contents() []tree.Node { return a.Children() }

func (a node) Descendants() []tree.Node {
	var out []tree.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if material(c) {
				out = append(out, node{c})
				walk(c)
			}
		}
	}
	walk(a.n)
	return out
}

func (a node) Parents() []tree.Node {
	var out []tree.Node
	for p := a.n.Parent; p != nil; p = p.Parent {
		if material(p) {
			out = append(out, node{p})
		}
	}
	return out
}

func (a node) NextSibling() tree.Node {
	for s := a.n.NextSibling; s != nil; s = s.NextSibling {
		if material(s) {
			return node{s}
		}
	}
	return nil
}

func (a node) PrevSibling() tree.Node {
	for s := a.n.PrevSibling; s != nil; s = s.PrevSibling {
		if material(s) {
			return node{s}
		}
	}
	return nil
}

func (a node) NextSiblings() []tree.Node {
	var out []tree.Node
	for s := a.n.NextSibling; s != nil; s = s.NextSibling {
		if material(s) {
			out = append(out, node{s})
		}
	}
	return out
}

func (a node) PrevSiblings() []tree.Node {
	var out []tree.Node
	for s := a.n.PrevSibling; s != nil; s = s.PrevSibling {
		if material(s) {
			out = append(out, node{s})
		}
	}
	return out
}

func (a node) Attrs() map[string]string {
	out := make(map[string]string, len(a.n.Attr))
	for _, attr := range a.n.Attr {
		out[attr.Key] = attr.Val
	}
	return out
}

// Index exposes attribute lookup by name, so indexing a wrapped node
// reads its attributes.
func (a node) Index(key any) (any, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	for _, attr := range a.n.Attr {
		if attr.Key == k {
			return attr.Val, true
		}
	}
	return nil, false
}

func (a node) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(a.n)
	return sb.String()
}

func (a node) Name() string {
	switch a.n.Type {
	case html.ElementNode:
		return a.n.Data
	case html.DocumentNode:
		return "[document]"
	}
	return ""
}

func (a node) Leaf() bool { return a.n.Type == html.TextNode }

func (a node) HTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, a.n); err != nil {
		return ""
	}
	return sb.String()
}

func (a node) Select(selector string) ([]tree.Node, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	var out []tree.Node
	for _, n := range cascadia.QueryAll(a.n, sel) {
		out = append(out, node{n})
	}
	return out, nil
}

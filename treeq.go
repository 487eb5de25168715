// Package treeq is a null-safe, chainable query layer over HTML
// documents. Parse wraps a document in the value algebra of pkg/wrap:
// navigation that finds nothing yields a null wrapper exposing the same
// operations as a value-bearing one, so a whole chain can be written
// against the happy path and inspected once at the end with Val or
// OrElse.
//
// pkg/expr builds the same chains lazily as reusable expression values,
// and pkg/tree declares the document contract so trees other than HTML
// can be adapted (pkg/tree/htmltree is the HTML adapter).
package treeq

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/treeq-dev/treeq/pkg/must"
	"github.com/treeq-dev/treeq/pkg/tree/htmltree"
	"github.com/treeq-dev/treeq/pkg/wrap"
)

// Parse reads an HTML document from r and returns its root wrapped for
// querying. Parsing is forgiving the way browsers are; only read errors
// from r are reported.
func Parse(r io.Reader) (wrap.NodeWrapper, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return wrap.NewNode(htmltree.New(n)), nil
}

// ParseString is Parse for an in-memory document. Parsing from a string
// reader cannot fail, so no error is returned.
func ParseString(s string) wrap.NodeWrapper {
	n := must.OK1(html.Parse(strings.NewReader(s)))
	return wrap.NewNode(htmltree.New(n))
}

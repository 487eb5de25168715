// Package tree declares the navigation contract an external document tree
// must satisfy to be queried by the value algebra, along with match
// criteria and axis searches implemented once over that contract.
//
// Absence is signaled by nil for single-valued members and by an empty
// slice for multi-valued ones; adapters never return "null" sentinels of
// their own.
package tree

// Node is the contract adapted from an external document tree. A leaf
// (text) node reports Leaf() true, has no children, an empty Name and an
// empty attribute map; its Text is its own string value.
type Node interface {
	// Parent returns the parent node, or nil for the root.
	Parent() Node
	// Children returns the direct child nodes, in document order.
	Children() []Node
	// Contents returns the direct child nodes, in document order.
	// Identical membership to Children; both names are part of the
	// contract.
	Contents() []Node
	// Descendants returns all nodes nested inside this one, depth-first
	// in document order, excluding the node itself.
	Descendants() []Node
	// Parents returns the chain of ancestors, nearest first.
	Parents() []Node
	// NextSibling returns the sibling immediately after this node, or nil.
	NextSibling() Node
	// PrevSibling returns the sibling immediately before this node, or nil.
	PrevSibling() Node
	// NextSiblings returns all siblings after this node, nearest first.
	NextSiblings() []Node
	// PrevSiblings returns all siblings before this node, nearest first.
	PrevSiblings() []Node
	// Attrs returns the node's attribute mapping, empty for leaves.
	Attrs() map[string]string
	// Text returns the concatenated text of the subtree, or the node's
	// own string value for leaves.
	Text() string
	// Name returns the tag name, empty for leaves.
	Name() string
	// Leaf reports whether this is a text leaf.
	Leaf() bool
	// HTML renders the markup of the subtree.
	HTML() string
	// Select returns the nodes matching a CSS selector, in document
	// order. Selector matching is the adapter's concern; an invalid
	// selector is an error.
	Select(selector string) ([]Node, error)
}

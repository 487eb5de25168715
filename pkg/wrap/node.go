package wrap

import (
	"github.com/treeq-dev/treeq/pkg/tree"
	"github.com/treeq-dev/treeq/pkg/vals"
)

// Node wraps a single document-tree node and exposes null-safe
// navigation: single-node axes yield a NodeWrapper (NullNode when the
// axis is empty), multi-node axes yield a Collection whose absent value
// is a NullNode.
type Node struct{ tn tree.Node }

// NewNode wraps a non-nil node. Use NodeOf when the node may be nil.
func NewNode(tn tree.Node) *Node { return &Node{tn} }

// NodeOf wraps a node, mapping nil to NullNode.
func NodeOf(tn tree.Node) NodeWrapper {
	if tn == nil {
		return NewNullNode()
	}
	return &Node{tn}
}

// nodeCollection wraps a navigation result. Out-of-range access on it
// yields a NullNode so node-flavored chains keep working.
func nodeCollection(ns []tree.Node) *Collection {
	items := make([]Wrapper, len(ns))
	for i, n := range ns {
		items[i] = NewNode(n)
	}
	return &Collection{items: items, absent: func() Wrapper { return NewNullNode() }}
}

func (n *Node) Val() (any, error)                 { return n.tn, nil }
func (n *Node) OrElse(any) Wrapper                { return n }
func (n *Node) NonNull() Wrapper                  { return n }
func (n *Node) Map(f Fn) Wrapper                  { return mapValue(n.tn, f) }
func (n *Node) Apply(f Fn) Wrapper                { return applyOn(n, f) }
func (n *Node) Require(f Fn, what string) Wrapper { return requireOn(n, f, what) }
func (n *Node) Dump(fields map[string]Fn) Wrapper { return dumpFields(n, fields) }
func (n *Node) Truthy() bool                      { return true }
func (n *Node) IsNull() bool                      { return false }

// Index looks a key up in the node, typically an attribute name.
func (n *Node) Index(key any) Wrapper {
	return n.Map(func(v any) (any, error) { return vals.Index(v, key) })
}

func (n *Node) Name() Wrapper { return NewScalar(n.tn.Name()) }
func (n *Node) Text() Wrapper { return NewScalar(n.tn.Text()) }
func (n *Node) HTML() Wrapper { return NewScalar(n.tn.HTML()) }

func (n *Node) Attrs() Wrapper {
	attrs := n.tn.Attrs()
	rec := make(map[string]any, len(attrs))
	for k, v := range attrs {
		rec[k] = v
	}
	return NewScalar(rec)
}

func (n *Node) Parent() NodeWrapper      { return NodeOf(n.tn.Parent()) }
func (n *Node) NextSibling() NodeWrapper { return NodeOf(n.tn.NextSibling()) }
func (n *Node) PrevSibling() NodeWrapper { return NodeOf(n.tn.PrevSibling()) }

func (n *Node) Children() CollectionWrapper     { return nodeCollection(n.tn.Children()) }
func (n *Node) Contents() CollectionWrapper     { return nodeCollection(n.tn.Contents()) }
func (n *Node) Descendants() CollectionWrapper  { return nodeCollection(n.tn.Descendants()) }
func (n *Node) Parents() CollectionWrapper      { return nodeCollection(n.tn.Parents()) }
func (n *Node) NextSiblings() CollectionWrapper { return nodeCollection(n.tn.NextSiblings()) }
func (n *Node) PrevSiblings() CollectionWrapper { return nodeCollection(n.tn.PrevSiblings()) }

func (n *Node) Find(crit ...tree.Criterion) NodeWrapper {
	return NodeOf(tree.FindIn(n.tn.Descendants(), crit...))
}

func (n *Node) FindParent(crit ...tree.Criterion) NodeWrapper {
	return NodeOf(tree.FindIn(n.tn.Parents(), crit...))
}

func (n *Node) FindNextSibling(crit ...tree.Criterion) NodeWrapper {
	return NodeOf(tree.FindIn(n.tn.NextSiblings(), crit...))
}

func (n *Node) FindPrevSibling(crit ...tree.Criterion) NodeWrapper {
	return NodeOf(tree.FindIn(n.tn.PrevSiblings(), crit...))
}

func (n *Node) FindAll(crit ...tree.Criterion) CollectionWrapper {
	return nodeCollection(tree.FindAllIn(n.tn.Descendants(), crit...))
}

func (n *Node) FindParents(crit ...tree.Criterion) CollectionWrapper {
	return nodeCollection(tree.FindAllIn(n.tn.Parents(), crit...))
}

func (n *Node) FindNextSiblings(crit ...tree.Criterion) CollectionWrapper {
	return nodeCollection(tree.FindAllIn(n.tn.NextSiblings(), crit...))
}

func (n *Node) FindPrevSiblings(crit ...tree.Criterion) CollectionWrapper {
	return nodeCollection(tree.FindAllIn(n.tn.PrevSiblings(), crit...))
}

func (n *Node) Select(selector string) CollectionWrapper {
	ns, err := n.tn.Select(selector)
	if err != nil {
		return &failed{err}
	}
	return nodeCollection(ns)
}

func (n *Node) String() string {
	h := n.tn.HTML()
	if len(h) > 60 {
		h = h[:57] + "..."
	}
	return "Node(" + h + ")"
}

// Equal compares by node identity.
func (n *Node) Equal(other any) bool {
	o, ok := other.(*Node)
	return ok && n.tn == o.tn
}

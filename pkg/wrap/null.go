package wrap

import (
	"github.com/treeq-dev/treeq/pkg/errs"
	"github.com/treeq-dev/treeq/pkg/tree"
)

// Null is the absent counterpart of Scalar. Every operation is a no-op
// returning a null, so chains written for present values run unchanged;
// OrElse substitutes a fallback and Val reports an absent-value error.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (n *Null) Val() (any, error)           { return nil, errs.Absent{} }
func (n *Null) OrElse(fallback any) Wrapper { return Wrap(fallback) }
func (n *Null) NonNull() Wrapper            { return &failed{errs.Absent{What: "non-null value"}} }
func (n *Null) Map(Fn) Wrapper              { return n }
func (n *Null) Apply(Fn) Wrapper            { return n }
func (n *Null) Dump(map[string]Fn) Wrapper  { return n }
func (n *Null) Index(any) Wrapper           { return n }
func (n *Null) Truthy() bool                { return false }
func (n *Null) IsNull() bool                { return true }
func (n *Null) String() string              { return "Null()" }

func (n *Null) Require(f Fn, what string) Wrapper {
	if what == "" {
		what = "requirement violated"
	}
	return &failed{errs.Absent{What: what}}
}

func (n *Null) Attr(string) Wrapper  { return n }
func (n *Null) Call(...any) Wrapper  { return n }
func (n *Null) Gt(any) Wrapper       { return n }
func (n *Null) Ge(any) Wrapper       { return n }
func (n *Null) Lt(any) Wrapper       { return n }
func (n *Null) Le(any) Wrapper       { return n }
func (n *Null) Eq(any) Wrapper       { return n }
func (n *Null) Ne(any) Wrapper       { return n }
func (n *Null) Add(any) Wrapper      { return n }
func (n *Null) Sub(any) Wrapper      { return n }
func (n *Null) Mul(any) Wrapper      { return n }
func (n *Null) Div(any) Wrapper      { return n }
func (n *Null) FloorDiv(any) Wrapper { return n }
func (n *Null) Mod(any) Wrapper      { return n }
func (n *Null) Pow(any) Wrapper      { return n }

// Equal supports comparison in tests: all Nulls are equal.
func (n *Null) Equal(other any) bool {
	_, ok := other.(*Null)
	return ok
}

// NullNode is the absent counterpart of Node. Navigation from a
// NullNode stays null: single-node axes yield NullNode, multi-node axes
// yield a node-flavored NullCollection, leaf accessors yield Null.
type NullNode struct{}

func NewNullNode() *NullNode { return &NullNode{} }

func (n *NullNode) Val() (any, error)           { return nil, errs.Absent{What: "node"} }
func (n *NullNode) OrElse(fallback any) Wrapper { return Wrap(fallback) }
func (n *NullNode) NonNull() Wrapper            { return &failed{errs.Absent{What: "node"}} }
func (n *NullNode) Map(Fn) Wrapper              { return n }
func (n *NullNode) Apply(Fn) Wrapper            { return n }
func (n *NullNode) Dump(map[string]Fn) Wrapper  { return NewNull() }
func (n *NullNode) Index(any) Wrapper           { return NewNull() }
func (n *NullNode) Truthy() bool                { return false }
func (n *NullNode) IsNull() bool                { return true }
func (n *NullNode) String() string              { return "NullNode()" }

func (n *NullNode) Require(f Fn, what string) Wrapper {
	if what == "" {
		what = "node"
	}
	return &failed{errs.Absent{What: what}}
}

func (n *NullNode) Name() Wrapper  { return NewNull() }
func (n *NullNode) Text() Wrapper  { return NewNull() }
func (n *NullNode) Attrs() Wrapper { return NewNull() }
func (n *NullNode) HTML() Wrapper  { return NewNull() }

func (n *NullNode) Parent() NodeWrapper      { return n }
func (n *NullNode) NextSibling() NodeWrapper { return n }
func (n *NullNode) PrevSibling() NodeWrapper { return n }

func (n *NullNode) Children() CollectionWrapper     { return nullNodeCollection() }
func (n *NullNode) Contents() CollectionWrapper     { return nullNodeCollection() }
func (n *NullNode) Descendants() CollectionWrapper  { return nullNodeCollection() }
func (n *NullNode) Parents() CollectionWrapper      { return nullNodeCollection() }
func (n *NullNode) NextSiblings() CollectionWrapper { return nullNodeCollection() }
func (n *NullNode) PrevSiblings() CollectionWrapper { return nullNodeCollection() }

func (n *NullNode) Find(...tree.Criterion) NodeWrapper            { return n }
func (n *NullNode) FindParent(...tree.Criterion) NodeWrapper      { return n }
func (n *NullNode) FindNextSibling(...tree.Criterion) NodeWrapper { return n }
func (n *NullNode) FindPrevSibling(...tree.Criterion) NodeWrapper { return n }

func (n *NullNode) FindAll(...tree.Criterion) CollectionWrapper          { return nullNodeCollection() }
func (n *NullNode) FindParents(...tree.Criterion) CollectionWrapper      { return nullNodeCollection() }
func (n *NullNode) FindNextSiblings(...tree.Criterion) CollectionWrapper { return nullNodeCollection() }
func (n *NullNode) FindPrevSiblings(...tree.Criterion) CollectionWrapper { return nullNodeCollection() }

func (n *NullNode) Select(string) CollectionWrapper { return nullNodeCollection() }

func (n *NullNode) Equal(other any) bool {
	_, ok := other.(*NullNode)
	return ok
}

// NullCollection is the absent counterpart of Collection. Sequence
// operations stay null; item access yields the collection's absent
// value, which matches the kind of item the collection would have held.
type NullCollection struct {
	absent func() Wrapper
}

func NewNullCollection() *NullCollection {
	return &NullCollection{absent: func() Wrapper { return NewNull() }}
}

func nullNodeCollection() *NullCollection {
	return &NullCollection{absent: func() Wrapper { return NewNullNode() }}
}

func (c *NullCollection) Val() (any, error)           { return nil, errs.Absent{What: "collection"} }
func (c *NullCollection) OrElse(fallback any) Wrapper { return Wrap(fallback) }
func (c *NullCollection) NonNull() Wrapper            { return &failed{errs.Absent{What: "collection"}} }
func (c *NullCollection) Map(Fn) Wrapper              { return c }
func (c *NullCollection) Apply(Fn) Wrapper            { return c }
func (c *NullCollection) Dump(map[string]Fn) Wrapper  { return c }
func (c *NullCollection) Truthy() bool                { return false }
func (c *NullCollection) IsNull() bool                { return true }
func (c *NullCollection) String() string              { return "NullCollection()" }

func (c *NullCollection) Require(f Fn, what string) Wrapper {
	if what == "" {
		what = "collection"
	}
	return &failed{errs.Absent{What: what}}
}

func (c *NullCollection) Index(key any) Wrapper {
	if _, ok := asInt(key); ok {
		return c.absent()
	}
	return c
}

func (c *NullCollection) First() Wrapper                         { return c.absent() }
func (c *NullCollection) At(int) Wrapper                         { return c.absent() }
func (c *NullCollection) Slice(int, int) CollectionWrapper       { return c }
func (c *NullCollection) Stride(int, int, int) CollectionWrapper { return c }
func (c *NullCollection) Each(...Fn) CollectionWrapper           { return c }
func (c *NullCollection) Filter(Fn) CollectionWrapper            { return c }
func (c *NullCollection) TakeWhile(Fn) CollectionWrapper         { return c }
func (c *NullCollection) DropWhile(Fn) CollectionWrapper         { return c }
func (c *NullCollection) Count() Wrapper                         { return NewScalar(0) }
func (c *NullCollection) All() Wrapper                           { return c }
func (c *NullCollection) Any() Wrapper                           { return c }
func (c *NullCollection) None() Wrapper                          { return c }
func (c *NullCollection) Items() []Wrapper                       { return nil }
func (c *NullCollection) Vals() ([]any, error)                   { return nil, errs.Absent{What: "collection"} }

func (c *NullCollection) Zip(...CollectionWrapper) CollectionWrapper { return c }

func (c *NullCollection) DictZip(any) Wrapper {
	return &failed{errs.Absent{What: "collection"}}
}

func (c *NullCollection) Equal(other any) bool {
	_, ok := other.(*NullCollection)
	return ok
}

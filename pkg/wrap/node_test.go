package wrap

import (
	"errors"
	"testing"

	"github.com/treeq-dev/treeq/pkg/tree"
)

// stubNode is a minimal in-memory tree.Node for exercising the Node
// wrapper without a markup parser.
type stubNode struct {
	name     string
	text     string
	attrs    map[string]string
	leaf     bool
	html     string
	parent   *stubNode
	children []*stubNode
	selErr   error
}

func (s *stubNode) Parent() tree.Node {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

func (s *stubNode) Children() []tree.Node { return stubs(s.children) }
func (s *stubNode) Contents() []tree.Node { return s.Children() }

func (s *stubNode) Descendants() []tree.Node {
	var out []tree.Node
	for _, c := range s.children {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

func (s *stubNode) Parents() []tree.Node {
	var out []tree.Node
	for p := s.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

func (s *stubNode) sibling(delta int) *stubNode {
	if s.parent == nil {
		return nil
	}
	sibs := s.parent.children
	for i, c := range sibs {
		if c == s {
			if j := i + delta; j >= 0 && j < len(sibs) {
				return sibs[j]
			}
			return nil
		}
	}
	return nil
}

func (s *stubNode) NextSibling() tree.Node {
	if n := s.sibling(1); n != nil {
		return n
	}
	return nil
}

func (s *stubNode) PrevSibling() tree.Node {
	if n := s.sibling(-1); n != nil {
		return n
	}
	return nil
}

func (s *stubNode) NextSiblings() []tree.Node {
	var out []tree.Node
	for n := s.sibling(1); n != nil; n = n.sibling(1) {
		out = append(out, n)
	}
	return out
}

func (s *stubNode) PrevSiblings() []tree.Node {
	var out []tree.Node
	for n := s.sibling(-1); n != nil; n = n.sibling(-1) {
		out = append(out, n)
	}
	return out
}

func (s *stubNode) Attrs() map[string]string {
	if s.attrs == nil {
		return map[string]string{}
	}
	return s.attrs
}

func (s *stubNode) Text() string { return s.text }
func (s *stubNode) Name() string { return s.name }
func (s *stubNode) Leaf() bool   { return s.leaf }
func (s *stubNode) HTML() string { return s.html }

func (s *stubNode) Select(string) ([]tree.Node, error) {
	if s.selErr != nil {
		return nil, s.selErr
	}
	return nil, nil
}

// Index exposes attribute lookup so Node.Index works on stub trees the
// way it does on real adapters.
func (s *stubNode) Index(key any) (any, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := s.attrs[k]
	return v, ok
}

func stubs(ns []*stubNode) []tree.Node {
	out := make([]tree.Node, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

// stubDoc builds root > (a[href=/x] "first", b "second", a "third").
func stubDoc() *stubNode {
	root := &stubNode{name: "root"}
	a1 := &stubNode{name: "a", text: "first", attrs: map[string]string{"href": "/x"}, parent: root}
	b := &stubNode{name: "b", text: "second", html: "<b>second</b>", parent: root}
	a2 := &stubNode{name: "a", text: "third", parent: root}
	root.children = []*stubNode{a1, b, a2}
	return root
}

func TestNode_Accessors(t *testing.T) {
	n := NewNode(stubDoc().children[1])
	if v := mustVal(t, n.Name()); v != "b" {
		t.Errorf("Name() = %v", v)
	}
	if v := mustVal(t, n.Text()); v != "second" {
		t.Errorf("Text() = %v", v)
	}
	if v := mustVal(t, n.HTML()); v != "<b>second</b>" {
		t.Errorf("HTML() = %v", v)
	}
	if !n.Truthy() {
		t.Error("node is falsy")
	}
}

func TestNode_Attrs(t *testing.T) {
	n := NewNode(stubDoc().children[0])
	v := mustVal(t, n.Attrs()).(map[string]any)
	if v["href"] != "/x" {
		t.Errorf("Attrs() = %v", v)
	}
}

func TestNode_IndexReadsAttributes(t *testing.T) {
	n := NewNode(stubDoc().children[0])
	if v := mustVal(t, n.Index("href")); v != "/x" {
		t.Errorf("Index('href') = %v", v)
	}
	if _, err := n.Index("missing").Val(); err == nil {
		t.Error("Index on a missing attribute did not fail")
	}
}

func TestNode_SingleAxes(t *testing.T) {
	root := stubDoc()
	b := NewNode(root.children[1])

	if v := mustVal(t, b.Parent().Name()); v != "root" {
		t.Errorf("Parent().Name() = %v", v)
	}
	if v := mustVal(t, b.NextSibling().Text()); v != "third" {
		t.Errorf("NextSibling().Text() = %v", v)
	}
	if v := mustVal(t, b.PrevSibling().Text()); v != "first" {
		t.Errorf("PrevSibling().Text() = %v", v)
	}

	// Absent axes are null, and navigation from them stays null.
	root1 := NewNode(root)
	if !root1.Parent().IsNull() {
		t.Error("Parent of root is not null")
	}
	if !root1.Parent().Parent().Text().IsNull() {
		t.Error("navigation from a null node is not null")
	}
}

func TestNode_MultiAxes(t *testing.T) {
	root := stubDoc()
	if v := mustVal(t, NewNode(root).Children().Count()); v != 3 {
		t.Errorf("Children().Count() = %v", v)
	}
	b := NewNode(root.children[1])
	if v := mustVal(t, b.NextSiblings().Count()); v != 1 {
		t.Errorf("NextSiblings().Count() = %v", v)
	}
	if v := mustVal(t, b.Parents().Count()); v != 1 {
		t.Errorf("Parents().Count() = %v", v)
	}
}

func TestNode_Find(t *testing.T) {
	doc := NewNode(stubDoc())
	if v := mustVal(t, doc.Find(tree.Tag("a")).Text()); v != "first" {
		t.Errorf("Find(a).Text() = %v", v)
	}
	if !doc.Find(tree.Tag("missing")).IsNull() {
		t.Error("Find on no match is not null")
	}
}

func TestNode_FindAll(t *testing.T) {
	doc := NewNode(stubDoc())
	got := doc.FindAll(tree.Tag("a"))
	if v := mustVal(t, got.Count()); v != 2 {
		t.Errorf("FindAll(a).Count() = %v", v)
	}
	// Out-of-range access on a navigation collection stays in the node
	// domain.
	if _, ok := got.At(5).(*NullNode); !ok {
		t.Errorf("FindAll(a).At(5) = %v, want NullNode", got.At(5))
	}
}

func TestNode_FindSiblingAxes(t *testing.T) {
	root := stubDoc()
	b := NewNode(root.children[1])
	if v := mustVal(t, b.FindNextSibling(tree.Tag("a")).Text()); v != "third" {
		t.Errorf("FindNextSibling(a).Text() = %v", v)
	}
	if v := mustVal(t, b.FindPrevSibling(tree.Tag("a")).Text()); v != "first" {
		t.Errorf("FindPrevSibling(a).Text() = %v", v)
	}
	if v := mustVal(t, NewNode(root.children[0]).FindParent().Name()); v != "root" {
		t.Errorf("FindParent().Name() = %v", v)
	}
}

func TestNode_SelectErrorEntersFailedState(t *testing.T) {
	bad := errors.New("bad selector")
	n := NewNode(&stubNode{name: "p", selErr: bad})
	if _, err := n.Select("!!").Val(); !errors.Is(err, bad) {
		t.Errorf("Select error = %v, want bad selector", err)
	}
}

func TestNodeOf(t *testing.T) {
	if _, ok := NodeOf(nil).(*NullNode); !ok {
		t.Error("NodeOf(nil) is not NullNode")
	}
	if _, ok := NodeOf(stubDoc()).(*Node); !ok {
		t.Error("NodeOf(node) is not Node")
	}
}

func TestNode_Dump(t *testing.T) {
	doc := NewNode(stubDoc())
	got := doc.FindAll(tree.Tag("a")).Dump(map[string]Fn{
		"text": func(item any) (any, error) { return item.(NodeWrapper).Text().Val() },
	})
	vs, err := got.(CollectionWrapper).Vals()
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || vs[0].(map[string]any)["text"] != "first" {
		t.Errorf("Dump = %v", vs)
	}
}

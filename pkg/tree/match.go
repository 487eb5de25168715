package tree

import "strings"

// Criterion is a predicate over nodes, used by the find operations.
// Criteria combine conjunctively.
type Criterion func(Node) bool

// Tag matches element nodes whose name is one of the given names.
func Tag(names ...string) Criterion {
	return func(n Node) bool {
		if n.Leaf() {
			return false
		}
		name := n.Name()
		for _, want := range names {
			if name == want {
				return true
			}
		}
		return false
	}
}

// WithAttr matches nodes carrying the attribute key. With values given, the
// attribute must equal one of them.
func WithAttr(key string, values ...string) Criterion {
	return func(n Node) bool {
		got, ok := n.Attrs()[key]
		if !ok {
			return false
		}
		if len(values) == 0 {
			return true
		}
		for _, want := range values {
			if got == want {
				return true
			}
		}
		return false
	}
}

// WithClass matches nodes whose class attribute contains every given class.
func WithClass(classes ...string) Criterion {
	return func(n Node) bool {
		have := strings.Fields(n.Attrs()["class"])
		if len(classes) == 0 {
			return len(have) > 0
		}
	next:
		for _, want := range classes {
			for _, c := range have {
				if c == want {
					continue next
				}
			}
			return false
		}
		return true
	}
}

// WithText matches nodes whose text equals the given string exactly.
func WithText(text string) Criterion {
	return func(n Node) bool { return n.Text() == text }
}

// Pred adapts an arbitrary predicate into a Criterion.
func Pred(f func(Node) bool) Criterion { return Criterion(f) }

// Matches reports whether a node satisfies all criteria. With no criteria,
// any element (non-leaf) node matches.
func Matches(n Node, crit []Criterion) bool {
	if len(crit) == 0 {
		return !n.Leaf()
	}
	for _, c := range crit {
		if !c(n) {
			return false
		}
	}
	return true
}

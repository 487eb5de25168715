// Package wrap implements a null-safe, chainable algebra over query
// results. Values live inside wrappers: a Scalar holds one arbitrary
// value, a Node holds one document-tree node, a Collection holds an
// ordered sequence of other wrappers. Each kind has a null counterpart
// (Null, NullNode, NullCollection) exposing the same operations, so a
// chain written against the value-bearing interface runs unchanged
// against an absent result and propagates nullness instead of panicking.
//
// Extraction is explicit: Val reports an absent-value error on null
// wrappers, and OrElse substitutes a fallback. When a transformation
// function fails, the chain enters a terminal error-carrying state that
// every subsequent operation (including OrElse) propagates unchanged;
// the error surfaces from Val. An error is never downgraded to a null.
package wrap

import (
	"fmt"

	"github.com/treeq-dev/treeq/pkg/errs"
	"github.com/treeq-dev/treeq/pkg/tree"
	"github.com/treeq-dev/treeq/pkg/vals"
)

// Fn is the transformation currency of the algebra. Map calls it with the
// unwrapped value, Apply with the wrapper itself. An expression's Eval
// method satisfies this type directly.
type Fn func(any) (any, error)

// Pure adapts an error-free function to an Fn.
func Pure(f func(any) any) Fn {
	return func(v any) (any, error) { return f(v), nil }
}

// Wrapper is the capability common to every wrapper kind.
type Wrapper interface {
	fmt.Stringer

	// Val unwraps to the underlying value. Null variants report an
	// absent-value error; a chain that entered the error state reports
	// the carried error.
	Val() (any, error)
	// OrElse returns the receiver unchanged when it bears a value, and
	// the wrapped fallback when it is null.
	OrElse(fallback any) Wrapper
	// NonNull returns the receiver when it bears a value; on a null
	// variant the chain enters the error state with an absent-value
	// error.
	NonNull() Wrapper
	// Map applies f to the raw held value and wraps the result. On null
	// variants it is a no-op returning the receiver.
	Map(f Fn) Wrapper
	// Apply applies f to the wrapper itself and wraps the result. On
	// null variants it is a no-op returning the receiver.
	Apply(f Fn) Wrapper
	// Require returns the receiver if Apply(f) is truthy, else fails
	// with an absent-value error carrying what. Null variants always
	// fail.
	Require(f Fn, what string) Wrapper
	// Dump evaluates each field function against the wrapper, unwraps
	// the results and collects them into a record wrapped as a Scalar.
	// Null variants yield Null.
	Dump(fields map[string]Fn) Wrapper
	// Index looks the key up in the held value. Collections index
	// positionally instead.
	Index(key any) Wrapper
	// Truthy reports the wrapper's boolean value: null variants are
	// false, a Scalar follows its held value, a Node is always true, a
	// Collection is true iff non-empty.
	Truthy() bool
	// IsNull reports whether this is a null variant.
	IsNull() bool
}

// ScalarWrapper is the operation surface shared by Scalar and Null:
// proxied member access, invocation, and comparison/arithmetic with
// null short-circuiting.
type ScalarWrapper interface {
	Wrapper

	Attr(name string) Wrapper
	Call(args ...any) Wrapper

	Gt(other any) Wrapper
	Ge(other any) Wrapper
	Lt(other any) Wrapper
	Le(other any) Wrapper
	Eq(other any) Wrapper
	Ne(other any) Wrapper
	Add(other any) Wrapper
	Sub(other any) Wrapper
	Mul(other any) Wrapper
	Div(other any) Wrapper
	FloorDiv(other any) Wrapper
	Mod(other any) Wrapper
	Pow(other any) Wrapper
}

// CollectionWrapper is the operation surface shared by Collection and
// NullCollection.
type CollectionWrapper interface {
	Wrapper

	// First returns item 0, or the collection's absent value.
	First() Wrapper
	// At returns the i-th item, counting from the end for negative i;
	// out of range yields the collection's absent value.
	At(i int) Wrapper
	// Slice returns the sub-collection [i:j], with negative indices
	// counted from the end and bounds clamped.
	Slice(i, j int) CollectionWrapper
	// Stride is Slice with a step; the step must be positive.
	Stride(i, j, step int) CollectionWrapper
	// Each maps every item through fn; with several functions, the
	// per-item results are zipped into one Scalar tuple per item.
	Each(fns ...Fn) CollectionWrapper
	// Filter keeps the items for which f is truthy.
	Filter(f Fn) CollectionWrapper
	// TakeWhile keeps the longest prefix for which f is truthy.
	TakeWhile(f Fn) CollectionWrapper
	// DropWhile removes the longest prefix for which f is truthy.
	DropWhile(f Fn) CollectionWrapper
	// Count returns the number of items as a Scalar.
	Count() Wrapper
	// Zip pairs the items of this collection with the others, item by
	// item. All operands must have equal length.
	Zip(others ...CollectionWrapper) CollectionWrapper
	// DictZip pairs keys with the unwrapped items into a Scalar record.
	DictZip(keys any) Wrapper
	// All is true iff every unwrapped item is truthy (true when empty).
	All() Wrapper
	// Any is true iff at least one unwrapped item is truthy.
	Any() Wrapper
	// None is true iff no unwrapped item is truthy (true when empty).
	None() Wrapper
	// Items returns the wrapped items.
	Items() []Wrapper
	// Vals returns the unwrapped items.
	Vals() ([]any, error)
}

// NodeWrapper is the operation surface shared by Node and NullNode: the
// null-safe navigation contract over the document tree.
type NodeWrapper interface {
	Wrapper

	Name() Wrapper
	Text() Wrapper
	Attrs() Wrapper

	Parent() NodeWrapper
	NextSibling() NodeWrapper
	PrevSibling() NodeWrapper

	Children() CollectionWrapper
	Contents() CollectionWrapper
	Descendants() CollectionWrapper
	Parents() CollectionWrapper
	NextSiblings() CollectionWrapper
	PrevSiblings() CollectionWrapper

	Find(crit ...tree.Criterion) NodeWrapper
	FindParent(crit ...tree.Criterion) NodeWrapper
	FindNextSibling(crit ...tree.Criterion) NodeWrapper
	FindPrevSibling(crit ...tree.Criterion) NodeWrapper

	FindAll(crit ...tree.Criterion) CollectionWrapper
	FindParents(crit ...tree.Criterion) CollectionWrapper
	FindNextSiblings(crit ...tree.Criterion) CollectionWrapper
	FindPrevSiblings(crit ...tree.Criterion) CollectionWrapper

	Select(selector string) CollectionWrapper

	// HTML renders the node's markup as a Scalar.
	HTML() Wrapper
}

// Wrap wraps a value in the appropriate wrapper kind: wrappers pass
// through unchanged, document-tree nodes become Node wrappers, and
// everything else becomes a Scalar. This single rule governs every
// re-wrap after Map, Apply and Each.
func Wrap(v any) Wrapper {
	switch v := v.(type) {
	case Wrapper:
		return v
	case tree.Node:
		return NodeOf(v)
	default:
		return NewScalar(v)
	}
}

// mapValue applies f to a raw value and wraps the result, entering the
// error state if f fails.
func mapValue(v any, f Fn) Wrapper {
	r, err := f(v)
	if err != nil {
		return &failed{err}
	}
	return Wrap(r)
}

// applyOn applies f to the wrapper itself and wraps the result.
func applyOn(w Wrapper, f Fn) Wrapper {
	r, err := f(w)
	if err != nil {
		return &failed{err}
	}
	return Wrap(r)
}

func requireOn(w Wrapper, f Fn, what string) Wrapper {
	r := w.Apply(f)
	if fl, ok := r.(*failed); ok {
		return fl
	}
	if r.Truthy() {
		return w
	}
	if what == "" {
		what = "requirement violated"
	}
	return &failed{errs.Absent{What: what}}
}

func dumpFields(w Wrapper, fields map[string]Fn) Wrapper {
	rec := make(map[string]any, len(fields))
	for name, f := range fields {
		v, err := w.Apply(f).Val()
		if err != nil {
			return &failed{err}
		}
		rec[name] = v
	}
	return NewScalar(rec)
}

var (
	_ ScalarWrapper     = (*Scalar)(nil)
	_ ScalarWrapper     = (*Null)(nil)
	_ NodeWrapper       = (*Node)(nil)
	_ NodeWrapper       = (*NullNode)(nil)
	_ CollectionWrapper = (*Collection)(nil)
	_ CollectionWrapper = (*NullCollection)(nil)

	_ ScalarWrapper     = (*failed)(nil)
	_ NodeWrapper       = (*failed)(nil)
	_ CollectionWrapper = (*failed)(nil)
)

// resultTruthy decides the truthiness of a transformation result, at the
// wrapper level when the result is wrapped and at the value level
// otherwise.
func resultTruthy(r any) bool {
	if w, ok := r.(Wrapper); ok {
		return w.Truthy()
	}
	return vals.Bool(r)
}

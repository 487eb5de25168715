package expr

import (
	"strings"

	"github.com/treeq-dev/treeq/pkg/vals"
)

// Evaluable is anything that can evaluate an input value and render itself.
// Both a whole Expr and its individual steps satisfy it.
type Evaluable interface {
	// Eval transforms the input value.
	Eval(v any) (any, error)
	// String renders a syntactically faithful representation, used in
	// error messages and diagnostics. It is a pure function of structure.
	String() string
}

// Step is a single stage of an expression chain.
type Step interface {
	Evaluable
	step()
}

// attrStep fetches a named member (eg obj.item).
type attrStep struct{ name string }

func (attrStep) step() {}

func (s attrStep) Eval(v any) (any, error) {
	return intercept(s, v, func(v any) (any, error) {
		return vals.Attr(v, s.name)
	})
}

func (s attrStep) String() string { return "." + s.name }

// indexStep fetches a keyed item (eg obj['item']).
type indexStep struct{ key any }

func (indexStep) step() {}

func (s indexStep) Eval(v any) (any, error) {
	return intercept(s, v, func(v any) (any, error) {
		return vals.Index(v, s.key)
	})
}

func (s indexStep) String() string { return "[" + vals.Repr(s.key) + "]" }

// callStep invokes the value with stored arguments.
type callStep struct{ args []any }

func (callStep) step() {}

func (s callStep) Eval(v any) (any, error) {
	return intercept(s, v, func(v any) (any, error) {
		return vals.Call(v, s.args...)
	})
}

func (s callStep) String() string {
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = vals.Repr(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// fnStep splices an arbitrary function into a chain.
type fnStep struct{ f func(any) (any, error) }

func (fnStep) step() {}

func (s fnStep) Eval(v any) (any, error) {
	return intercept(s, v, s.f)
}

func (s fnStep) String() string { return ".then(<fn>)" }

// binOp applies a binary operator; either operand may itself be an
// expression, evaluated against the same input, or a literal used as-is.
type binOp struct {
	sym   string
	fn    func(x, y any) (any, error)
	left  any
	right any
}

func (binOp) step() {}

func (s binOp) Eval(v any) (any, error) {
	return intercept(s, v, func(v any) (any, error) {
		x, err := operand(s.left, v)
		if err != nil {
			return nil, err
		}
		y, err := operand(s.right, v)
		if err != nil {
			return nil, err
		}
		return s.fn(x, y)
	})
}

func operand(o, v any) (any, error) {
	if e, ok := o.(Evaluable); ok {
		return e.Eval(v)
	}
	return o, nil
}

func (s binOp) String() string {
	return renderOperand(s.left) + " " + s.sym + " " + renderOperand(s.right)
}

// renderOperand parenthesizes nested binary operations so the rendering
// stays unambiguous.
func renderOperand(o any) string {
	switch o := o.(type) {
	case Expr:
		if o.isBinOp() {
			return "(" + o.String() + ")"
		}
		return o.String()
	case binOp:
		return "(" + o.String() + ")"
	case Evaluable:
		return o.String()
	default:
		return vals.Repr(o)
	}
}

// Package expr implements a lazy expression builder: a small embedded
// language for describing unary transformations (member access, indexing,
// invocation, binary operators, composition) as immutable first-class
// values, evaluated later against arbitrary input.
//
// The zero expression Q() is the identity; builder methods return new
// expressions and never mutate the receiver. Composition always produces a
// flat chain, never nested chains.
//
//	e := expr.Q().Attr("upper").Call()
//	out, err := e.Eval("test") // "TEST"
//
// When evaluation fails, the returned error is an *EvalError carrying the
// failing sub-expression and its input, and a snapshot of the failure is
// available from LastFailure.
package expr

import (
	"strings"

	"github.com/treeq-dev/treeq/pkg/vals"
)

// Expr is an immutable description of a unary transformation. The zero
// value is the identity expression.
type Expr struct {
	steps []Step
}

// Q returns the identity expression, the root of every chain.
func Q() Expr { return Expr{} }

// Attr returns an expression that fetches the named member of its input.
// Shorthand for Q().Attr(name).
func Attr(name string) Expr { return Q().Attr(name) }

// Index returns an expression that indexes its input with the given key.
// Shorthand for Q().Index(key).
func Index(key any) Expr { return Q().Index(key) }

// with returns a new expression with one more step, copying the chain so
// shared prefixes stay immutable.
func (e Expr) with(s Step) Expr {
	steps := make([]Step, len(e.steps)+1)
	copy(steps, e.steps)
	steps[len(e.steps)] = s
	return Expr{steps}
}

// Attr appends a member access.
func (e Expr) Attr(name string) Expr { return e.with(attrStep{name}) }

// Index appends an index access.
func (e Expr) Index(key any) Expr { return e.with(indexStep{key}) }

// Call appends an invocation of the current value with the given arguments.
func (e Expr) Call(args ...any) Expr { return e.with(callStep{args}) }

// Then appends an arbitrary transformation function.
func (e Expr) Then(f func(any) (any, error)) Expr { return e.with(fnStep{f}) }

// Pipe composes two expressions, threading this expression's output into
// other. The result is a single flat chain.
func (e Expr) Pipe(other Expr) Expr {
	steps := make([]Step, 0, len(e.steps)+len(other.steps))
	steps = append(steps, e.steps...)
	steps = append(steps, other.steps...)
	return Expr{steps}
}

// Eval threads the input value through each step of the chain in order.
// The identity expression returns the input unchanged.
func (e Expr) Eval(v any) (any, error) {
	return intercept(e, v, func(v any) (any, error) {
		out := v
		for _, s := range e.steps {
			var err error
			out, err = s.Eval(out)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}

// String renders the expression. The identity renders as "Q"; each step
// appends its own rendering.
func (e Expr) String() string {
	if len(e.steps) == 0 {
		return "Q"
	}
	var sb strings.Builder
	if _, ok := e.steps[0].(binOp); !ok {
		sb.WriteString("Q")
	}
	for _, s := range e.steps {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Repr implements vals.Reprer, so an expression used as a literal operand
// or call argument renders as itself.
func (e Expr) Repr() string { return e.String() }

func (e Expr) isBinOp() bool {
	if len(e.steps) != 1 {
		return false
	}
	_, ok := e.steps[0].(binOp)
	return ok
}

// binary starts a fresh chain headed by a binary operation whose left
// operand is the receiver.
func (e Expr) binary(sym string, fn func(x, y any) (any, error), other any) Expr {
	return Expr{steps: []Step{binOp{sym, fn, e, other}}}
}

func cmpFn(ok func(int) bool) func(x, y any) (any, error) {
	return func(x, y any) (any, error) {
		c, err := vals.Cmp(x, y)
		if err != nil {
			return nil, err
		}
		return ok(c), nil
	}
}

// Gt builds the comparison e > other.
func (e Expr) Gt(other any) Expr {
	return e.binary(">", cmpFn(func(c int) bool { return c > 0 }), other)
}

// Ge builds the comparison e >= other.
func (e Expr) Ge(other any) Expr {
	return e.binary(">=", cmpFn(func(c int) bool { return c >= 0 }), other)
}

// Lt builds the comparison e < other.
func (e Expr) Lt(other any) Expr {
	return e.binary("<", cmpFn(func(c int) bool { return c < 0 }), other)
}

// Le builds the comparison e <= other.
func (e Expr) Le(other any) Expr {
	return e.binary("<=", cmpFn(func(c int) bool { return c <= 0 }), other)
}

// Eq builds the equality test e == other.
func (e Expr) Eq(other any) Expr {
	return e.binary("==", func(x, y any) (any, error) {
		return vals.Equal(x, y), nil
	}, other)
}

// Ne builds the inequality test e != other.
func (e Expr) Ne(other any) Expr {
	return e.binary("!=", func(x, y any) (any, error) {
		return !vals.Equal(x, y), nil
	}, other)
}

// Add builds the sum e + other.
func (e Expr) Add(other any) Expr { return e.binary("+", vals.Add, other) }

// Sub builds the difference e - other.
func (e Expr) Sub(other any) Expr { return e.binary("-", vals.Sub, other) }

// Mul builds the product e * other.
func (e Expr) Mul(other any) Expr { return e.binary("*", vals.Mul, other) }

// Div builds the quotient e / other.
func (e Expr) Div(other any) Expr { return e.binary("/", vals.Div, other) }

// FloorDiv builds the floored quotient e // other.
func (e Expr) FloorDiv(other any) Expr { return e.binary("//", vals.FloorDiv, other) }

// Mod builds the remainder e % other.
func (e Expr) Mod(other any) Expr { return e.binary("%", vals.Mod, other) }

// Pow builds the power e ** other.
func (e Expr) Pow(other any) Expr { return e.binary("**", vals.Pow, other) }

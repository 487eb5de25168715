package expr

import (
	"errors"
	"fmt"

	"github.com/treeq-dev/treeq/pkg/vals"
)

// EvalError is returned when evaluating an expression fails. It wraps the
// underlying fault and carries the rendering of the sub-expression that
// failed along with the value it was evaluating, so chain-of-transformation
// bugs are diagnosable without a debugger.
type EvalError struct {
	// Cause is the underlying fault.
	Cause error
	// Step is the rendering of the failing sub-expression.
	Step string
	// Value is the value passed to the failing sub-expression.
	Value any
}

// Error implements the error interface. The message embeds the original
// error, the (possibly summarized) value being evaluated and the textual
// form of the active sub-expression.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%v\n\n\tencountered when evaluating %s%s",
		e.Cause, vals.ReprShort(e.Value), e.Step)
}

// Unwrap returns the underlying fault.
func (e *EvalError) Unwrap() error { return e.Cause }

// KeyError reports whether the failure was a key lookup on a map-like
// value, a kind worth distinguishing because the triggering key is the key
// piece of context.
func (e *EvalError) KeyError() bool {
	var nk vals.NoSuchKeyError
	return errors.As(e.Cause, &nk)
}

// intercept wraps the evaluation of one sub-expression. The first failure
// is classified, enriched and recorded; outer frames re-catching the same
// error refresh only the outer expression and value of the diagnostics
// record, preserving the inner pair.
func intercept(s Evaluable, v any, run func(any) (any, error)) (any, error) {
	out, err := run(v)
	if err == nil {
		return out, nil
	}
	var ee *EvalError
	if errors.As(err, &ee) {
		refreshOuter(s, v)
		return nil, err
	}
	recordFailure(Debug{Expr: s, InnerExpr: s, Val: v, InnerVal: v})
	return nil, &EvalError{Cause: err, Step: s.String(), Value: v}
}

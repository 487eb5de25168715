package expr

import "sync"

// Debug is a snapshot of the most recent expression-evaluation failure.
type Debug struct {
	// Expr is the last full expression to have failed.
	Expr Evaluable
	// InnerExpr is the specific sub-expression that failed.
	InnerExpr Evaluable
	// Val is the value the full expression was evaluating.
	Val any
	// InnerVal is the value the failing sub-expression was evaluating.
	InnerVal any
}

// The diagnostics record is process-wide and overwritten on each failing
// evaluation; the mutex keeps concurrent evaluations from corrupting it,
// though concurrent failures still race for the single slot.
var (
	failureMu sync.Mutex
	failure   Debug
)

// LastFailure returns diagnostics for the most recent error raised during
// expression evaluation. All fields are unset if no evaluation has failed
// in this process.
func LastFailure() Debug {
	failureMu.Lock()
	defer failureMu.Unlock()
	return failure
}

func recordFailure(d Debug) {
	failureMu.Lock()
	defer failureMu.Unlock()
	failure = d
}

// refreshOuter updates the outer expression and value while keeping the
// inner pair recorded at the original failure point.
func refreshOuter(e Evaluable, v any) {
	failureMu.Lock()
	defer failureMu.Unlock()
	failure.Expr = e
	failure.Val = v
}

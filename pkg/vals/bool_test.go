package vals

import (
	"testing"

	"github.com/treeq-dev/treeq/pkg/tt"
)

type customBooler struct{ b bool }

func (c customBooler) Bool() bool { return c.b }

func TestBool(t *testing.T) {
	tt.Test(t, tt.Fn("Bool", Bool), tt.Table{
		tt.Args(nil).Rets(false),
		tt.Args(true).Rets(true),
		tt.Args(false).Rets(false),
		tt.Args("").Rets(false),
		tt.Args("x").Rets(true),
		tt.Args(0).Rets(false),
		tt.Args(2).Rets(true),
		tt.Args(0.0).Rets(false),
		tt.Args(0.5).Rets(true),
		tt.Args([]any{}).Rets(false),
		tt.Args([]any{1}).Rets(true),
		tt.Args(map[string]any{}).Rets(false),
		tt.Args(map[string]any{"k": 1}).Rets(true),
		tt.Args(customBooler{false}).Rets(false),
		tt.Args(customBooler{true}).Rets(true),
		tt.Args(struct{}{}).Rets(true),
	})
}

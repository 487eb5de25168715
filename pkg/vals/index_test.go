package vals

import (
	"testing"

	"github.com/treeq-dev/treeq/pkg/errs"
	"github.com/treeq-dev/treeq/pkg/tt"
)

type customIndexer struct{}

func (customIndexer) Index(k any) (any, bool) {
	if k == "present" {
		return "value", true
	}
	return nil, false
}

func TestIndex(t *testing.T) {
	tt.Test(t, tt.Fn("Index", Index), tt.Table{
		tt.Args("abc", 1).Rets("b", nil),
		tt.Args("abc", -1).Rets("c", nil),
		tt.Args("abc", 3).Rets(nil,
			errs.OutOfRange{What: "string index", ValidLow: -3, ValidHigh: 2, Actual: "3"}),
		tt.Args([]any{"x", "y"}, 0).Rets("x", nil),
		tt.Args([]any{"x", "y"}, -2).Rets("x", nil),
		tt.Args([]any{"x", "y"}, 5).Rets(nil,
			errs.OutOfRange{What: "index", ValidLow: -2, ValidHigh: 1, Actual: "5"}),
		tt.Args([]string{"x", "y"}, 1).Rets("y", nil),
		tt.Args(map[string]any{"k": 7}, "k").Rets(7, nil),
		tt.Args(map[string]any{"k": 7}, "missing").Rets(nil, NoSuchKey("missing")),
		tt.Args(map[string]string{"href": "/"}, "href").Rets("/", nil),
		tt.Args(customIndexer{}, "present").Rets("value", nil),
		tt.Args(customIndexer{}, "absent").Rets(nil, NoSuchKey("absent")),
		tt.Args(7, "k").Rets(nil, NotIndexableError{7}),
	})
}

func TestNoSuchKeyError(t *testing.T) {
	if got, want := NoSuchKey("foo").Error(), "no such key: 'foo'"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

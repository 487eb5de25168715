package vals

import (
	"strings"
	"testing"

	"github.com/treeq-dev/treeq/pkg/tt"
)

func TestRepr(t *testing.T) {
	tt.Test(t, tt.Fn("Repr", Repr), tt.Table{
		tt.Args(nil).Rets("nil"),
		tt.Args(true).Rets("true"),
		tt.Args(false).Rets("false"),
		tt.Args("foo").Rets("'foo'"),
		tt.Args(7).Rets("7"),
		tt.Args(1.5).Rets("1.5"),
		tt.Args(2.0).Rets("2.0"),
		tt.Args([]byte("ok")).Rets("'ok'"),
		tt.Args([]byte{0xff, 0xfe}).Rets(`'\xff\xfe'`),
		tt.Args([]any{1, "a"}).Rets("[1, 'a']"),
		tt.Args(map[string]any{"b": 2, "a": 1}).Rets("{'a': 1, 'b': 2}"),
	})
}

func TestReprShort_Truncates(t *testing.T) {
	long := strings.Repeat("x", 200)
	if got, want := ReprShort(long), "<string instance>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := ReprShort("short"), "'short'"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRepr_Idempotent(t *testing.T) {
	v := map[string]any{"a": []any{1, 2}, "b": "x"}
	if first, second := Repr(v), Repr(v); first != second {
		t.Errorf("renderings differ: %q vs %q", first, second)
	}
}

package wrap

import (
	"errors"
	"strconv"
	"testing"

	"github.com/treeq-dev/treeq/pkg/errs"
)

// mustVal unwraps w, failing the test on error.
func mustVal(t *testing.T, w Wrapper) any {
	t.Helper()
	v, err := w.Val()
	if err != nil {
		t.Fatalf("Val() error: %v", err)
	}
	return v
}

func TestScalar_Val(t *testing.T) {
	if v := mustVal(t, NewScalar(42)); v != 42 {
		t.Errorf("Val() = %v, want 42", v)
	}
}

func TestScalar_Truthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{0, false},
		{1, true},
		{"", false},
		{"x", true},
		{[]any{}, false},
		{[]any{1}, true},
	}
	for _, test := range tests {
		if got := NewScalar(test.v).Truthy(); got != test.want {
			t.Errorf("Scalar(%v).Truthy() = %v, want %v", test.v, got, test.want)
		}
	}
}

func TestScalar_OrElseIsIdentity(t *testing.T) {
	s := NewScalar(1)
	if s.OrElse(2) != Wrapper(s) {
		t.Error("OrElse on a value-bearing wrapper did not return the receiver")
	}
	if s.NonNull() != Wrapper(s) {
		t.Error("NonNull on a value-bearing wrapper did not return the receiver")
	}
}

func TestScalar_Map(t *testing.T) {
	got := NewScalar("17").Map(func(v any) (any, error) {
		return strconv.Atoi(v.(string))
	})
	if v := mustVal(t, got); v != 17 {
		t.Errorf("Map(Atoi) = %v, want 17", v)
	}
}

func TestScalar_MapErrorEntersFailedState(t *testing.T) {
	boom := errors.New("boom")
	w := NewScalar(1).Map(func(any) (any, error) { return nil, boom })
	if _, err := w.Val(); !errors.Is(err, boom) {
		t.Errorf("Val() error = %v, want boom", err)
	}
	// An error is never downgraded to a fallback.
	if _, err := w.OrElse(0).Val(); !errors.Is(err, boom) {
		t.Errorf("OrElse after failure: error = %v, want boom", err)
	}
	if w.Truthy() {
		t.Error("failed wrapper is truthy")
	}
	if w.IsNull() {
		t.Error("failed wrapper reports IsNull")
	}
}

func TestScalar_ApplyReceivesWrapper(t *testing.T) {
	got := NewScalar(3).Apply(func(v any) (any, error) {
		return v.(*Scalar).Add(4), nil
	})
	if v := mustVal(t, got); v != 7 {
		t.Errorf("Apply = %v, want 7", v)
	}
}

func TestScalar_Require(t *testing.T) {
	positive := func(v any) (any, error) { return v.(int) > 0, nil }
	s := NewScalar(3)
	if s.Require(positive, "positive") != Wrapper(s) {
		t.Error("Require on satisfied wrapper did not return the receiver")
	}

	_, err := NewScalar(-3).Require(positive, "positive").Val()
	var absent errs.Absent
	if !errors.As(err, &absent) || absent.What != "positive" {
		t.Errorf("Require on violated wrapper: error = %v", err)
	}
}

func TestScalar_Dump(t *testing.T) {
	got := NewScalar(10).Dump(map[string]Fn{
		"n":       func(v any) (any, error) { return v.(*Scalar).Val() },
		"doubled": func(v any) (any, error) { return v.(*Scalar).Mul(2), nil },
	})
	v := mustVal(t, got).(map[string]any)
	if v["n"] != 10 || v["doubled"] != 20 {
		t.Errorf("Dump = %v", v)
	}
}

func TestScalar_Index(t *testing.T) {
	got := NewScalar(map[string]any{"a": 1}).Index("a")
	if v := mustVal(t, got); v != 1 {
		t.Errorf("Index('a') = %v, want 1", v)
	}
	if _, err := NewScalar(map[string]any{}).Index("a").Val(); err == nil {
		t.Error("Index on missing key did not fail")
	}
}

func TestScalar_AttrCall(t *testing.T) {
	got := NewScalar("test").Attr("upper").Call()
	if v := mustVal(t, got); v != "TEST" {
		t.Errorf(".upper() = %v, want TEST", v)
	}
}

func TestScalar_Operators(t *testing.T) {
	tests := []struct {
		name string
		got  Wrapper
		want any
	}{
		{"Gt", NewScalar(3).Gt(2), true},
		{"Ge", NewScalar(3).Ge(3), true},
		{"Lt", NewScalar(3).Lt(2), false},
		{"Le", NewScalar(3).Le(2), false},
		{"Eq", NewScalar(3).Eq(3), true},
		{"Eq cross-type", NewScalar(3).Eq(3.0), true},
		{"Ne", NewScalar(3).Ne(4), true},
		{"Add", NewScalar(3).Add(4), 7},
		{"Add strings", NewScalar("a").Add("b"), "ab"},
		{"Sub", NewScalar(3).Sub(4), -1},
		{"Mul", NewScalar(3).Mul(4), 12},
		{"Div", NewScalar(3).Div(2), 1.5},
		{"FloorDiv", NewScalar(-7).FloorDiv(2), -4},
		{"Mod", NewScalar(-7).Mod(2), 1},
		{"Pow", NewScalar(2).Pow(10), 1024},
	}
	for _, test := range tests {
		if v := mustVal(t, test.got); v != test.want {
			t.Errorf("%s = %v, want %v", test.name, v, test.want)
		}
	}
}

func TestScalar_OperatorUnwrapsWrappedOperand(t *testing.T) {
	if v := mustVal(t, NewScalar(3).Add(NewScalar(4))); v != 7 {
		t.Errorf("Add(Scalar(4)) = %v, want 7", v)
	}
}

func TestScalar_OperatorNullShortCircuits(t *testing.T) {
	if got := NewScalar(3).Add(NewNull()); !got.IsNull() {
		t.Errorf("Add(Null) = %v, want a null", got)
	}
	if got := NewScalar(3).Eq(NewNull()); !got.IsNull() {
		t.Errorf("Eq(Null) = %v, want a null", got)
	}
}

func TestScalar_OperatorTypeError(t *testing.T) {
	if _, err := NewScalar(3).Add("x").Val(); err == nil {
		t.Error("3 + 'x' did not fail")
	}
}

func TestWrap(t *testing.T) {
	s := NewScalar(1)
	if Wrap(s) != Wrapper(s) {
		t.Error("Wrap did not pass a wrapper through")
	}
	if _, ok := Wrap(42).(*Scalar); !ok {
		t.Error("Wrap(42) is not a Scalar")
	}
	if _, ok := Wrap(&stubNode{name: "p"}).(*Node); !ok {
		t.Error("Wrap(node) is not a Node wrapper")
	}
}

func TestScalar_String(t *testing.T) {
	if got := NewScalar("hi").String(); got != "Scalar('hi')" {
		t.Errorf("String() = %q", got)
	}
}

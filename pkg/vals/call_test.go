package vals

import (
	"errors"
	"strconv"
	"testing"
)

type customCallable struct{}

func (customCallable) Call(args ...any) (any, error) { return len(args), nil }

func TestCall_PlainFunc(t *testing.T) {
	v, err := Call(func(x, y int) int { return x + y }, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Errorf("got %v, want 3", v)
	}
}

func TestCall_ErrorReturn(t *testing.T) {
	v, err := Call(strconv.Atoi, "17")
	if err != nil {
		t.Fatal(err)
	}
	if v != 17 {
		t.Errorf("got %v, want 17", v)
	}
	_, err = Call(strconv.Atoi, "nope")
	if err == nil {
		t.Error("want error from Atoi")
	}
}

func TestCall_Variadic(t *testing.T) {
	join := func(sep string, parts ...string) string {
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += sep
			}
			out += p
		}
		return out
	}
	v, err := Call(join, "-", "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	if v != "a-b-c" {
		t.Errorf("got %v, want a-b-c", v)
	}
}

func TestCall_Callable(t *testing.T) {
	v, err := Call(customCallable{}, 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Errorf("got %v, want 3", v)
	}
}

func TestCall_ArityMismatch(t *testing.T) {
	_, err := Call(func(x int) int { return x }, 1, 2)
	if err == nil {
		t.Error("want arity error")
	}
}

func TestCall_NotCallable(t *testing.T) {
	_, err := Call("TEST")
	var nc NotCallableError
	if !errors.As(err, &nc) {
		t.Errorf("got %v, want NotCallableError", err)
	}
}

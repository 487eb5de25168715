package wrap

import "github.com/treeq-dev/treeq/pkg/vals"

// Scalar wraps a single arbitrary value.
type Scalar struct{ v any }

// NewScalar wraps v in a Scalar. Unlike Wrap it never dispatches on the
// kind of v; use it only when v is known not to be a wrapper or a node.
func NewScalar(v any) *Scalar { return &Scalar{v} }

func (s *Scalar) Val() (any, error)                 { return s.v, nil }
func (s *Scalar) OrElse(any) Wrapper                { return s }
func (s *Scalar) NonNull() Wrapper                  { return s }
func (s *Scalar) Map(f Fn) Wrapper                  { return mapValue(s.v, f) }
func (s *Scalar) Apply(f Fn) Wrapper                { return applyOn(s, f) }
func (s *Scalar) Require(f Fn, what string) Wrapper { return requireOn(s, f, what) }
func (s *Scalar) Dump(fields map[string]Fn) Wrapper { return dumpFields(s, fields) }
func (s *Scalar) Truthy() bool                      { return vals.Bool(s.v) }
func (s *Scalar) IsNull() bool                      { return false }

func (s *Scalar) Index(key any) Wrapper {
	return s.Map(func(v any) (any, error) { return vals.Index(v, key) })
}

// Attr resolves a member of the held value: a method or field, or one
// of the built-in string operations when the value is a string. A
// callable member is returned bound, never invoked; chain Call to
// invoke it.
func (s *Scalar) Attr(name string) Wrapper {
	return s.Map(func(v any) (any, error) { return vals.Attr(v, name) })
}

// Call invokes the held value with the given arguments.
func (s *Scalar) Call(args ...any) Wrapper {
	return s.Map(func(v any) (any, error) { return vals.Call(v, args...) })
}

func (s *Scalar) String() string { return "Scalar(" + vals.Repr(s.v) + ")" }

// Equal compares by held value, so go-cmp sees through the wrapper.
func (s *Scalar) Equal(other any) bool {
	o, ok := other.(*Scalar)
	return ok && vals.Equal(s.v, o.v)
}

// binary implements an operator against other, which may be raw or
// wrapped. A null operand short-circuits the whole operation to that
// null.
func (s *Scalar) binary(other any, op func(x, y any) (any, error)) Wrapper {
	if w, ok := other.(Wrapper); ok {
		if w.IsNull() {
			return w
		}
		v, err := w.Val()
		if err != nil {
			return &failed{err}
		}
		other = v
	}
	return s.Map(func(v any) (any, error) { return op(v, other) })
}

func (s *Scalar) Gt(other any) Wrapper {
	return s.binary(other, cmpOp(func(c int) bool { return c > 0 }))
}
func (s *Scalar) Ge(other any) Wrapper {
	return s.binary(other, cmpOp(func(c int) bool { return c >= 0 }))
}
func (s *Scalar) Lt(other any) Wrapper {
	return s.binary(other, cmpOp(func(c int) bool { return c < 0 }))
}
func (s *Scalar) Le(other any) Wrapper {
	return s.binary(other, cmpOp(func(c int) bool { return c <= 0 }))
}

func (s *Scalar) Eq(other any) Wrapper {
	return s.binary(other, func(x, y any) (any, error) { return vals.Equal(x, y), nil })
}

func (s *Scalar) Ne(other any) Wrapper {
	return s.binary(other, func(x, y any) (any, error) { return !vals.Equal(x, y), nil })
}

func (s *Scalar) Add(other any) Wrapper      { return s.binary(other, vals.Add) }
func (s *Scalar) Sub(other any) Wrapper      { return s.binary(other, vals.Sub) }
func (s *Scalar) Mul(other any) Wrapper      { return s.binary(other, vals.Mul) }
func (s *Scalar) Div(other any) Wrapper      { return s.binary(other, vals.Div) }
func (s *Scalar) FloorDiv(other any) Wrapper { return s.binary(other, vals.FloorDiv) }
func (s *Scalar) Mod(other any) Wrapper      { return s.binary(other, vals.Mod) }
func (s *Scalar) Pow(other any) Wrapper      { return s.binary(other, vals.Pow) }

func cmpOp(ok func(int) bool) func(x, y any) (any, error) {
	return func(x, y any) (any, error) {
		c, err := vals.Cmp(x, y)
		if err != nil {
			return nil, err
		}
		return ok(c), nil
	}
}

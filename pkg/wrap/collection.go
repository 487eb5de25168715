package wrap

import (
	"fmt"
	"strings"

	"github.com/treeq-dev/treeq/pkg/errs"
	"github.com/treeq-dev/treeq/pkg/vals"
)

// Collection wraps an ordered sequence of wrappers. Positional access
// out of range yields the collection's absent value rather than an
// error: a Null in general, a NullNode for collections produced by tree
// navigation.
type Collection struct {
	items  []Wrapper
	absent func() Wrapper
}

// NewCollection builds a Collection from already-wrapped items.
func NewCollection(items ...Wrapper) *Collection {
	return &Collection{
		items:  append([]Wrapper(nil), items...),
		absent: func() Wrapper { return NewNull() },
	}
}

// CollectionOf builds a Collection from a sequence whose elements must
// all be wrappers already; a non-wrapper element is a contract
// violation reported eagerly.
func CollectionOf(seq []any) (*Collection, error) {
	items := make([]Wrapper, len(seq))
	for i, e := range seq {
		w, ok := e.(Wrapper)
		if !ok {
			return nil, errs.NotAWrapper{Index: i, Value: e}
		}
		items[i] = w
	}
	c := NewCollection(items...)
	return c, nil
}

// derive builds a result collection that inherits the receiver's absent
// value. Used by the operations that keep original items around.
func (c *Collection) derive(items []Wrapper) *Collection {
	return &Collection{items: items, absent: c.absent}
}

func (c *Collection) Val() (any, error) {
	vs, err := c.Vals()
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func (c *Collection) Vals() ([]any, error) {
	vs := make([]any, len(c.items))
	for i, w := range c.items {
		v, err := w.Val()
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func (c *Collection) OrElse(any) Wrapper                { return c }
func (c *Collection) NonNull() Wrapper                  { return c }
func (c *Collection) Apply(f Fn) Wrapper                { return applyOn(c, f) }
func (c *Collection) Require(f Fn, what string) Wrapper { return requireOn(c, f, what) }
func (c *Collection) Truthy() bool                      { return len(c.items) > 0 }
func (c *Collection) IsNull() bool                      { return false }

// Map applies f to the slice of wrapped items as a whole. For per-item
// transformation use Each.
func (c *Collection) Map(f Fn) Wrapper { return mapValue(c.items, f) }

// Dump runs the record extraction on every item, yielding a collection
// of Scalar records.
func (c *Collection) Dump(fields map[string]Fn) Wrapper {
	return c.Each(func(item any) (any, error) {
		return item.(Wrapper).Dump(fields), nil
	})
}

// Index treats an integer key as a position; any other key is an error.
func (c *Collection) Index(key any) Wrapper {
	if i, ok := asInt(key); ok {
		return c.At(i)
	}
	return &failed{fmt.Errorf("collection index must be an integer, got %s", vals.ReprShort(key))}
}

func (c *Collection) First() Wrapper { return c.At(0) }

func (c *Collection) At(i int) Wrapper {
	if i < 0 {
		i += len(c.items)
	}
	if i < 0 || i >= len(c.items) {
		return c.absent()
	}
	return c.items[i]
}

func (c *Collection) Slice(i, j int) CollectionWrapper {
	i, j = clampRange(i, j, len(c.items))
	return c.derive(append([]Wrapper(nil), c.items[i:j]...))
}

func (c *Collection) Stride(i, j, step int) CollectionWrapper {
	if step < 1 {
		return &failed{fmt.Errorf("slice step must be positive, got %d", step)}
	}
	i, j = clampRange(i, j, len(c.items))
	var out []Wrapper
	for ; i < j; i += step {
		out = append(out, c.items[i])
	}
	return c.derive(out)
}

// clampRange normalizes slice bounds the way sequence slicing does:
// negative indices count from the end and the result is clamped to the
// valid range.
func clampRange(i, j, n int) (int, int) {
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	i = min(max(i, 0), n)
	j = min(max(j, 0), n)
	if j < i {
		j = i
	}
	return i, j
}

// Each maps every item through fn. With several functions the results
// for each item are collected into one tuple, unwrapped, and wrapped as
// a Scalar.
func (c *Collection) Each(fns ...Fn) CollectionWrapper {
	switch len(fns) {
	case 0:
		return c
	case 1:
		out := make([]Wrapper, len(c.items))
		for i, item := range c.items {
			r, err := fns[0](item)
			if err != nil {
				return &failed{err}
			}
			out[i] = Wrap(r)
		}
		return &Collection{items: out, absent: func() Wrapper { return NewNull() }}
	}
	out := make([]Wrapper, len(c.items))
	for i, item := range c.items {
		tuple := make([]any, len(fns))
		for k, f := range fns {
			r, err := f(item)
			if err != nil {
				return &failed{err}
			}
			if w, ok := r.(Wrapper); ok {
				v, err := w.Val()
				if err != nil {
					return &failed{err}
				}
				r = v
			}
			tuple[k] = r
		}
		out[i] = NewScalar(tuple)
	}
	return &Collection{items: out, absent: func() Wrapper { return NewNull() }}
}

func (c *Collection) Filter(f Fn) CollectionWrapper {
	var out []Wrapper
	for _, item := range c.items {
		r, err := f(item)
		if err != nil {
			return &failed{err}
		}
		if resultTruthy(r) {
			out = append(out, item)
		}
	}
	return c.derive(out)
}

func (c *Collection) TakeWhile(f Fn) CollectionWrapper {
	var out []Wrapper
	for _, item := range c.items {
		r, err := f(item)
		if err != nil {
			return &failed{err}
		}
		if !resultTruthy(r) {
			break
		}
		out = append(out, item)
	}
	return c.derive(out)
}

func (c *Collection) DropWhile(f Fn) CollectionWrapper {
	for i, item := range c.items {
		r, err := f(item)
		if err != nil {
			return &failed{err}
		}
		if !resultTruthy(r) {
			return c.derive(append([]Wrapper(nil), c.items[i:]...))
		}
	}
	return c.derive(nil)
}

func (c *Collection) Count() Wrapper { return NewScalar(len(c.items)) }

// Zip pairs this collection with the others item by item. Lengths are
// checked against every operand before any pairing happens.
func (c *Collection) Zip(others ...CollectionWrapper) CollectionWrapper {
	seqs := make([][]any, 1+len(others))
	first, err := c.Vals()
	if err != nil {
		return &failed{err}
	}
	seqs[0] = first
	for k, o := range others {
		vs, err := o.Vals()
		if err != nil {
			return &failed{err}
		}
		seqs[k+1] = vs
	}
	for k, vs := range seqs[1:] {
		if len(vs) != len(first) {
			return &failed{errs.LengthMismatch{
				What: fmt.Sprintf("zip operand %d", k+1),
				Want: len(first), Got: len(vs),
			}}
		}
	}
	rows := make([]Wrapper, len(first))
	for i := range first {
		row := make([]any, len(seqs))
		for k, vs := range seqs {
			row[k] = vs[i]
		}
		rows[i] = NewScalar(row)
	}
	return NewCollection(rows...)
}

// DictZip builds a record pairing keys with the unwrapped items. Keys
// may be a collection of strings, a []string or a []any of strings;
// the shorter of the two sequences decides the record size.
func (c *Collection) DictZip(keys any) Wrapper {
	ks, err := stringKeys(keys)
	if err != nil {
		return &failed{err}
	}
	vs, err := c.Vals()
	if err != nil {
		return &failed{err}
	}
	n := min(len(ks), len(vs))
	rec := make(map[string]any, n)
	for i := 0; i < n; i++ {
		rec[ks[i]] = vs[i]
	}
	return NewScalar(rec)
}

func stringKeys(keys any) ([]string, error) {
	switch k := keys.(type) {
	case []string:
		return k, nil
	case []any:
		ks := make([]string, len(k))
		for i, e := range k {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("dictzip key %d must be a string, got %s", i, vals.ReprShort(e))
			}
			ks[i] = s
		}
		return ks, nil
	case CollectionWrapper:
		vs, err := k.Vals()
		if err != nil {
			return nil, err
		}
		return stringKeys(vs)
	default:
		return nil, fmt.Errorf("dictzip keys must be a sequence, got %s", vals.ReprShort(keys))
	}
}

func (c *Collection) All() Wrapper {
	for _, w := range c.items {
		if !w.Truthy() {
			return NewScalar(false)
		}
	}
	return NewScalar(true)
}

func (c *Collection) Any() Wrapper {
	for _, w := range c.items {
		if w.Truthy() {
			return NewScalar(true)
		}
	}
	return NewScalar(false)
}

func (c *Collection) None() Wrapper {
	for _, w := range c.items {
		if w.Truthy() {
			return NewScalar(false)
		}
	}
	return NewScalar(true)
}

func (c *Collection) Items() []Wrapper {
	return append([]Wrapper(nil), c.items...)
}

func (c *Collection) String() string {
	parts := make([]string, len(c.items))
	for i, w := range c.items {
		parts[i] = w.String()
	}
	return "Collection([" + strings.Join(parts, ", ") + "])"
}

// Equal compares item by item, so go-cmp sees through the wrapper.
func (c *Collection) Equal(other any) bool {
	o, ok := other.(*Collection)
	if !ok || len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if !vals.Equal(c.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

func asInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	}
	return 0, false
}

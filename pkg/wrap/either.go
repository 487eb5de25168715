package wrap

// Either builds an Fn that applies each alternative in turn and returns
// the first truthy result. A null result falls through to the next
// alternative; if none is truthy the result is Null. An alternative
// that fails stops the search and reports its error.
func Either(fns ...Fn) Fn {
	return func(v any) (any, error) {
		w := Wrap(v)
		for _, f := range fns {
			r := w.Apply(f)
			if fl, ok := r.(*failed); ok {
				return nil, fl.err
			}
			if r.Truthy() {
				return r, nil
			}
		}
		return NewNull(), nil
	}
}

package vals

import (
	"fmt"
	"reflect"
)

// Method is a bound member of some value, produced by Attr and invoked by
// Call.
type Method func(args ...any) (any, error)

// Callable wraps the Call method, letting arbitrary values be invoked by
// the Call function.
type Callable interface {
	Call(args ...any) (any, error)
}

// NotCallableError indicates that a value cannot be invoked.
type NotCallableError struct {
	Value any
}

// Error implements the error interface.
func (e NotCallableError) Error() string {
	return fmt.Sprintf("%T is not callable", e.Value)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Call invokes a value with the given arguments. It is implemented for
// Method values, types satisfying the Callable interface, and plain func
// values via reflection. For other values it returns a NotCallableError.
func Call(v any, args ...any) (any, error) {
	switch v := v.(type) {
	case Method:
		return v(args...)
	case Callable:
		return v.Call(args...)
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Func {
		return reflectCall(rv, args)
	}
	return nil, NotCallableError{v}
}

// reflectCall invokes fn with args converted to its parameter types. A
// trailing error return is split off; multiple non-error returns come back
// as a []any.
func reflectCall(fn reflect.Value, args []any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("call panicked: %v", r)
		}
	}()
	t := fn.Type()
	in, err := convertArgs(t, args)
	if err != nil {
		return nil, err
	}
	rets := fn.Call(in)
	n := len(rets)
	if n > 0 && t.Out(n-1) == errType {
		if e := rets[n-1].Interface(); e != nil {
			return nil, e.(error)
		}
		rets = rets[:n-1]
		n--
	}
	switch n {
	case 0:
		return nil, nil
	case 1:
		return rets[0].Interface(), nil
	}
	vs := make([]any, n)
	for i, r := range rets {
		vs[i] = r.Interface()
	}
	return vs, nil
}

func convertArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, arityError(numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, arityError(numIn, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(t, i)
		av := reflect.ValueOf(a)
		switch {
		case a == nil:
			in[i] = reflect.Zero(pt)
		case av.Type().AssignableTo(pt):
			in[i] = av
		case av.Type().ConvertibleTo(pt):
			in[i] = av.Convert(pt)
		default:
			return nil, fmt.Errorf("argument %d: cannot use %s as %s",
				i, av.Type(), pt)
		}
	}
	return in, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func arityError(want, got int) error {
	return fmt.Errorf("arity mismatch: need %d arguments, got %d", want, got)
}

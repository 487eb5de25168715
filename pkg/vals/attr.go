package vals

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Attrer wraps the Attr method.
type Attrer interface {
	// Attr retrieves the named member of the receiver. It returns the
	// member (if any), and whether it actually exists.
	Attr(name string) (v any, ok bool)
}

// NoSuchAttrError indicates that a value has no member with a given name.
type NoSuchAttrError struct {
	Name  string
	Value any
}

// Error implements the error interface.
func (e NoSuchAttrError) Error() string {
	return fmt.Sprintf("no attribute '%s' on %T", e.Name, e.Value)
}

// NoSuchAttr returns an error indicating that a value has no member with the
// given name.
func NoSuchAttr(name string, v any) error {
	return NoSuchAttrError{name, v}
}

// Attr retrieves a named member of a value. Resolution order:
//
//  1. The Attrer interface, if the value satisfies it.
//  2. For strings, a builtin method table (upper, strip, split, ...); the
//     result is a Method to be invoked by Call.
//  3. A method of the value found via reflection, under the given name or
//     its exported (capitalized) form; the result is a bound Method.
//  4. An exported struct field, under the given name or its exported form.
//
// Methods found this way are never invoked by Attr itself; a following Call
// applies them.
func Attr(v any, name string) (any, error) {
	if a, ok := v.(Attrer); ok {
		if m, ok := a.Attr(name); ok {
			return m, nil
		}
		return nil, NoSuchAttr(name, v)
	}
	if s, ok := v.(string); ok {
		if m, ok := stringMethod(s, name); ok {
			return m, nil
		}
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, NoSuchAttr(name, v)
	}
	for _, n := range []string{name, exported(name)} {
		if m := rv.MethodByName(n); m.IsValid() {
			return boundMethod(m), nil
		}
	}
	sv := rv
	if sv.Kind() == reflect.Ptr {
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		for _, n := range []string{name, exported(name)} {
			f := sv.FieldByName(n)
			if f.IsValid() && f.CanInterface() {
				return f.Interface(), nil
			}
		}
	}
	return nil, NoSuchAttr(name, v)
}

// exported capitalizes the first rune of a name, mapping a dynamic member
// name onto the Go exported form.
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func boundMethod(m reflect.Value) Method {
	return func(args ...any) (any, error) {
		return reflectCall(m, args)
	}
}

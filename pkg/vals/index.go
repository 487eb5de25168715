package vals

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/treeq-dev/treeq/pkg/errs"
)

// Indexer wraps the Index method.
type Indexer interface {
	// Index retrieves the value corresponding to the specified key in the
	// container. It returns the value (if any), and whether it actually
	// exists.
	Index(k any) (v any, ok bool)
}

// NoSuchKeyError indicates that a key is not present in a map-like value.
type NoSuchKeyError struct {
	Key any
}

// NoSuchKey returns an error indicating that a key is not found in a
// map-like value.
func NoSuchKey(k any) error {
	return NoSuchKeyError{k}
}

// Error implements the error interface.
func (e NoSuchKeyError) Error() string {
	return "no such key: " + Repr(e.Key)
}

// NotIndexableError indicates that a value does not support indexing.
type NotIndexableError struct {
	Value any
}

// Error implements the error interface.
func (e NotIndexableError) Error() string {
	return fmt.Sprintf("%T is not indexable", e.Value)
}

// Index indexes a value with the given key. It is implemented for the
// builtin type string (integer key, negative counts from the end), slices
// and arrays, maps, and types satisfying the Indexer interface. For other
// types, it returns a nil value and a non-nil error.
func Index(a, k any) (any, error) {
	switch a := a.(type) {
	case string:
		return indexString(a, k)
	case Indexer:
		v, ok := a.Index(k)
		if !ok {
			return nil, NoSuchKey(k)
		}
		return v, nil
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Slice, reflect.Array: // also covers []any
		return indexSequence(rv, k)
	case reflect.Map:
		return indexMap(rv, k)
	}
	return nil, NotIndexableError{a}
}

func indexString(s string, k any) (any, error) {
	i, ok := toInt(k)
	if !ok {
		return nil, NoSuchKey(k)
	}
	runes := []rune(s)
	i, err := seqIndex(i, len(runes), "string index")
	if err != nil {
		return nil, err
	}
	return string(runes[i]), nil
}

func indexSequence(rv reflect.Value, k any) (any, error) {
	i, ok := toInt(k)
	if !ok {
		return nil, NoSuchKey(k)
	}
	i, err := seqIndex(i, rv.Len(), "index")
	if err != nil {
		return nil, err
	}
	return rv.Index(i).Interface(), nil
}

func indexMap(rv reflect.Value, k any) (any, error) {
	kv := reflect.ValueOf(k)
	if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
		return nil, NoSuchKey(k)
	}
	v := rv.MapIndex(kv)
	if !v.IsValid() {
		return nil, NoSuchKey(k)
	}
	return v.Interface(), nil
}

// seqIndex resolves a possibly negative index against a sequence of length
// n, returning an OutOfRange error when it does not resolve.
func seqIndex(i, n int, what string) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, errs.OutOfRange{
			What: what, ValidLow: -n, ValidHigh: n - 1,
			Actual: strconv.Itoa(i),
		}
	}
	return j, nil
}

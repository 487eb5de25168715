package vals

import "reflect"

// Booler wraps the Bool method.
type Booler interface {
	// Bool returns whether the receiver counts as true in a boolean context.
	Bool() bool
}

// Bool returns the truthiness of a value. The builtin nil and false are
// false; empty strings, empty sequences, empty maps and zero numbers are
// false; types satisfying the Booler interface decide for themselves. All
// other values are true.
func Bool(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case float64:
		return v != 0
	case Booler:
		return v.Bool()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for the
// builtin nil, bool, string and numeric types, and for types satisfying the
// Equaler interface. For other types, it uses reflect.DeepEqual to compare
// the two values.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case string:
		return x == y
	case int:
		if yn, ok := toFloat(y); ok {
			return float64(x) == yn
		}
		return false
	case float64:
		if yn, ok := toFloat(y); ok {
			return x == yn
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

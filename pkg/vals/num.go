package vals

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// BadOperands is returned when a binary operation is applied to values it is
// not defined for.
type BadOperands struct {
	Op string
	X  any
	Y  any
}

// Error implements the error interface.
func (e BadOperands) Error() string {
	return fmt.Sprintf("unsupported operands for %s: %s and %s",
		e.Op, ReprShort(e.X), ReprShort(e.Y))
}

// toInt normalizes any integer value to int.
func toInt(v any) (int, bool) {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
	return 0, false
}

// toFloat normalizes any numeric value to float64.
func toFloat(v any) (float64, bool) {
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// unify brings two numeric operands to a common type: two ints when both are
// integers, two float64 otherwise. The boolean result reports whether
// unification stayed integral.
func unify(x, y any) (ix, iy int, fx, fy float64, integral, ok bool) {
	xi, xIsInt := toInt(x)
	yi, yIsInt := toInt(y)
	if xIsInt && yIsInt {
		return xi, yi, 0, 0, true, true
	}
	xf, xOk := toFloat(x)
	yf, yOk := toFloat(y)
	if xOk && yOk {
		return 0, 0, xf, yf, false, true
	}
	return 0, 0, 0, 0, false, false
}

// Add returns x + y. Both operands must be numbers, or both strings, in
// which case the strings are concatenated.
func Add(x, y any) (any, error) {
	if xs, ok := x.(string); ok {
		if ys, ok := y.(string); ok {
			return xs + ys, nil
		}
	}
	if ix, iy, fx, fy, integral, ok := unify(x, y); ok {
		if integral {
			return ix + iy, nil
		}
		return fx + fy, nil
	}
	return nil, BadOperands{"+", x, y}
}

// Sub returns x - y.
func Sub(x, y any) (any, error) {
	if ix, iy, fx, fy, integral, ok := unify(x, y); ok {
		if integral {
			return ix - iy, nil
		}
		return fx - fy, nil
	}
	return nil, BadOperands{"-", x, y}
}

// Mul returns x * y. A string multiplied by an integer is repeated.
func Mul(x, y any) (any, error) {
	if xs, ok := x.(string); ok {
		if n, ok := toInt(y); ok {
			return strings.Repeat(xs, max(n, 0)), nil
		}
	}
	if ix, iy, fx, fy, integral, ok := unify(x, y); ok {
		if integral {
			return ix * iy, nil
		}
		return fx * fy, nil
	}
	return nil, BadOperands{"*", x, y}
}

// Div returns x / y as a float64, regardless of the operand types.
func Div(x, y any) (any, error) {
	fx, xOk := toFloat(x)
	fy, yOk := toFloat(y)
	if !xOk || !yOk {
		return nil, BadOperands{"/", x, y}
	}
	if fy == 0 {
		return nil, BadOperands{"/", x, y}
	}
	return fx / fy, nil
}

// FloorDiv returns x / y rounded towards negative infinity. Integer operands
// yield an integer result.
func FloorDiv(x, y any) (any, error) {
	ix, iy, fx, fy, integral, ok := unify(x, y)
	if !ok {
		return nil, BadOperands{"//", x, y}
	}
	if integral {
		if iy == 0 {
			return nil, BadOperands{"//", x, y}
		}
		q := ix / iy
		if (ix%iy != 0) && ((ix < 0) != (iy < 0)) {
			q--
		}
		return q, nil
	}
	if fy == 0 {
		return nil, BadOperands{"//", x, y}
	}
	return math.Floor(fx / fy), nil
}

// Mod returns x modulo y, with the sign of the divisor.
func Mod(x, y any) (any, error) {
	ix, iy, fx, fy, integral, ok := unify(x, y)
	if !ok {
		return nil, BadOperands{"%", x, y}
	}
	if integral {
		if iy == 0 {
			return nil, BadOperands{"%", x, y}
		}
		m := ix % iy
		if m != 0 && (m < 0) != (iy < 0) {
			m += iy
		}
		return m, nil
	}
	if fy == 0 {
		return nil, BadOperands{"%", x, y}
	}
	m := math.Mod(fx, fy)
	if m != 0 && (m < 0) != (fy < 0) {
		m += fy
	}
	return m, nil
}

// Pow returns x raised to the power y. Integer operands with a non-negative
// exponent yield an integer result.
func Pow(x, y any) (any, error) {
	ix, iy, fx, fy, integral, ok := unify(x, y)
	if !ok {
		return nil, BadOperands{"**", x, y}
	}
	if integral && iy >= 0 {
		r := 1
		for i := 0; i < iy; i++ {
			r *= ix
		}
		return r, nil
	}
	if integral {
		fx, fy = float64(ix), float64(iy)
	}
	return math.Pow(fx, fy), nil
}

// Cmp compares two ordered values, returning -1, 0 or 1. It is defined for
// pairs of numbers and pairs of strings.
func Cmp(x, y any) (int, error) {
	if xs, ok := x.(string); ok {
		if ys, ok := y.(string); ok {
			return strings.Compare(xs, ys), nil
		}
	}
	ix, iy, fx, fy, integral, ok := unify(x, y)
	if !ok {
		return 0, BadOperands{"<=>", x, y}
	}
	if integral {
		switch {
		case ix < iy:
			return -1, nil
		case ix > iy:
			return 1, nil
		}
		return 0, nil
	}
	switch {
	case fx < fy:
		return -1, nil
	case fx > fy:
		return 1, nil
	}
	return 0, nil
}

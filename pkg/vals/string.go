package vals

import (
	"fmt"
	"strings"
)

// stringMethod resolves the builtin methods available on string values.
// The names follow the textual conventions of the query language rather
// than Go's strings package, since they are reached dynamically from
// expressions.
func stringMethod(s, name string) (Method, bool) {
	switch name {
	case "upper":
		return nullary(func() any { return strings.ToUpper(s) }), true
	case "lower":
		return nullary(func() any { return strings.ToLower(s) }), true
	case "title":
		return nullary(func() any { return titleCase(s) }), true
	case "strip":
		return nullary(func() any { return strings.TrimSpace(s) }), true
	case "lstrip":
		return nullary(func() any { return strings.TrimLeft(s, " \t\r\n") }), true
	case "rstrip":
		return nullary(func() any { return strings.TrimRight(s, " \t\r\n") }), true
	case "split":
		return func(args ...any) (any, error) {
			var parts []string
			switch len(args) {
			case 0:
				parts = strings.Fields(s)
			case 1:
				sep, err := stringArg("split", args[0])
				if err != nil {
					return nil, err
				}
				parts = strings.Split(s, sep)
			default:
				return nil, arityError(1, len(args))
			}
			out := make([]any, len(parts))
			for i, p := range parts {
				out[i] = p
			}
			return out, nil
		}, true
	case "startswith":
		return stringary("startswith", func(arg string) any {
			return strings.HasPrefix(s, arg)
		}), true
	case "endswith":
		return stringary("endswith", func(arg string) any {
			return strings.HasSuffix(s, arg)
		}), true
	case "contains":
		return stringary("contains", func(arg string) any {
			return strings.Contains(s, arg)
		}), true
	case "replace":
		return func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, arityError(2, len(args))
			}
			old, err := stringArg("replace", args[0])
			if err != nil {
				return nil, err
			}
			new, err := stringArg("replace", args[1])
			if err != nil {
				return nil, err
			}
			return strings.ReplaceAll(s, old, new), nil
		}, true
	case "len":
		return nullary(func() any { return len([]rune(s)) }), true
	}
	return nil, false
}

func nullary(f func() any) Method {
	return func(args ...any) (any, error) {
		if len(args) != 0 {
			return nil, arityError(0, len(args))
		}
		return f(), nil
	}
}

func stringary(name string, f func(string) any) Method {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, arityError(1, len(args))
		}
		arg, err := stringArg(name, args[0])
		if err != nil {
			return nil, err
		}
		return f(arg), nil
	}
}

func stringArg(method string, a any) (string, error) {
	s, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("%s wants a string argument, got %T", method, a)
	}
	return s, nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

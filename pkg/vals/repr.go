package vals

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value, preferably as a
	// literal that would evaluate back to it.
	Repr() string
}

// shortMax is the longest representation embedded verbatim into error
// messages; anything longer is summarized by type.
const shortMax = 150

// Repr returns the representation of a value, used when rendering
// expressions and building evaluation error messages. It is implemented for
// the builtin nil, bool, string and numeric types, []byte, slices and maps,
// and types satisfying the Reprer interface. For other types, it uses
// fmt.Sprint with the format "<%T %v>".
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return quote(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat(v)
	case []byte:
		if utf8.Valid(v) {
			return quote(string(v))
		}
		return escapeBytes(v)
	case Reprer:
		return v.Repr()
	case []any:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = Repr(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = quote(k) + ": " + Repr(v[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("<%T %v>", v, v)
	}
}

// ReprShort is like Repr, but summarizes values whose representation exceeds
// shortMax characters, so that error messages stay readable.
func ReprShort(v any) string {
	r := Repr(v)
	if len(r) > shortMax {
		return fmt.Sprintf("<%T instance>", v)
	}
	return r
}

// quote renders s as a single-quoted literal, escaping characters that are
// not printable.
func quote(s string) string {
	q := strconv.Quote(s)
	return "'" + q[1:len(q)-1] + "'"
}

// escapeBytes renders undecodable bytes as an escaped-byte literal.
func escapeBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, c := range b {
		if c >= 0x20 && c < 0x7f && c != '\'' && c != '\\' {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep a decimal point so the representation reads as a float.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

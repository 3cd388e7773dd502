// internal/consolidator/values.go
package consolidator

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Source values reach this package as decoded by Load with UseNumber:
// string, json.Number, bool, nil, []interface{} or map[string]interface{}.

// passThrough returns v in the form it is re-emitted. Numbers are rewritten
// to their canonical text (integers without sign or leading noise, floats in
// shortest round-trip form with a fractional part); everything else is
// unchanged.
func passThrough(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		return json.Number(numberText(t))
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = passThrough(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = passThrough(e)
		}
		return out
	default:
		return v
	}
}

// identifierNumber converts an id value to its derived *_number: strings are
// parsed as integer literals, numbers are truncated toward zero and booleans
// count as 0 or 1.
func identifierNumber(v interface{}) (int, error) {
	switch t := v.(type) {
	case string:
		return parseIdentifier(t)
	case json.Number:
		if isIntegerLiteral(string(t)) {
			n, err := strconv.Atoi(string(t))
			if err != nil {
				return 0, fmt.Errorf("integer %s out of range", t)
			}
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("cannot convert %s to integer", t)
		}
		return truncate(f)
	case float64:
		return truncate(t)
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, fmt.Errorf("cannot convert null to integer")
	default:
		return 0, fmt.Errorf("cannot convert %s to integer", jsonKind(v))
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to integer", f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("integer %v out of range", f)
	}
	return int(t), nil
}

func isIntegerLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// parseIdentifier parses an integer literal: surrounding whitespace and a
// sign are allowed, single underscores may separate digits, and any Unicode
// decimal digit counts as a digit.
func parseIdentifier(s string) (int, error) {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == '_':
			if i == 0 || i == len(runes)-1 || !unicode.IsDigit(runes[i-1]) || !unicode.IsDigit(runes[i+1]) {
				return 0, fmt.Errorf("invalid literal for integer: %q", s)
			}
		case r > unicode.MaxASCII && unicode.IsDigit(r):
			b.WriteRune('0' + rune(digitValue(r)))
		default:
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, fmt.Errorf("invalid literal for integer: %q", s)
	}
	return n, nil
}

// digitValue returns the value of a decimal digit rune. Every run of
// decimal digits in the Unicode tables starts at a zero and spans whole
// blocks of ten.
func digitValue(r rune) int {
	for _, rg := range unicode.Nd.R16 {
		if rg.Stride == 1 && r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if rg.Stride == 1 && r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10
		}
	}
	return -1
}

// displayText renders a value for the report the way string interpolation
// prints it: strings verbatim, everything else in literal form.
func displayText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return literalText(v)
}

func literalText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		return quoteText(t)
	case json.Number:
		return numberText(t)
	case float64:
		return floatText(t)
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = literalText(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = quoteText(k) + ": " + literalText(t[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

func numberText(n json.Number) string {
	s := string(n)
	if isIntegerLiteral(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return strings.TrimPrefix(s, "+")
	}
	f, err := n.Float64()
	if err != nil && !math.IsInf(f, 0) {
		return s
	}
	return floatText(f)
}

func floatText(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

func quoteText(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == '\\' || r == q:
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}

// matchesKey reports whether a foreign key equals key. Only string values
// can match.
func matchesKey(v interface{}, key string) bool {
	s, ok := v.(string)
	return ok && s == key
}

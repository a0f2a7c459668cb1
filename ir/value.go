package ir

import (
	"strconv"
	"strings"
)

type valueType int

const (
	stringValue valueType = iota
	intValue
	floatValue
)

// Value is the immutable scalar payload of a Node.  It holds either a
// string, an int64 or a float64.
type Value struct {
	t valueType
	s string
	i int64
	f float64
}

func StringValue(s string) Value {
	return Value{t: stringValue, s: s}
}

func IntValue(i int64) Value {
	return Value{t: intValue, i: i}
}

func FloatValue(f float64) Value {
	return Value{t: floatValue, f: f}
}

func (v Value) IsString() bool { return v.t == stringValue }
func (v Value) IsInt() bool    { return v.t == intValue }
func (v Value) IsFloat() bool  { return v.t == floatValue }

func (v Value) Str() string {
	return v.s
}

func (v Value) Int() int64 {
	switch v.t {
	case intValue:
		return v.i
	case floatValue:
		return int64(v.f)
	}
	return 0
}

func (v Value) Float() float64 {
	switch v.t {
	case intValue:
		return float64(v.i)
	case floatValue:
		return v.f
	}
	return 0
}

// String is the plain string form of the value, used as the slot key by
// BindByValue.  Integers are base 10 whatever kind carries them.
func (v Value) String() string {
	switch v.t {
	case intValue:
		return strconv.FormatInt(v.i, 10)
	case floatValue:
		return formatFloat(v.f)
	default:
		return v.s
	}
}

// formatFloat always keeps a fraction or exponent so a number never reads
// as an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// render formats v for display as a node of kind k.
func render(k Kind, v Value) string {
	switch k {
	case HexKind:
		return prefixed(strconv.FormatInt(v.Int(), 16), "0x")
	case BinKind:
		return prefixed(strconv.FormatInt(v.Int(), 2), "0b")
	default:
		return v.String()
	}
}

func prefixed(digits, prefix string) string {
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		return "-" + prefix + rest
	}
	return prefix + digits
}

func parseNumber(text string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Value{}, literalErr(NumberKind, text, err)
	}
	return FloatValue(f), nil
}

func parseInteger(text string) (Value, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return Value{}, literalErr(IntegerKind, text, err)
	}
	return IntValue(i), nil
}

// parseBased parses text in the given base after stripping an optional sign
// and an optional two character prefix such as "0x".
func parseBased(k Kind, text, prefix string, base int) (Value, error) {
	d := strings.TrimSpace(text)
	neg := false
	switch {
	case strings.HasPrefix(d, "-"):
		neg = true
		d = d[1:]
	case strings.HasPrefix(d, "+"):
		d = d[1:]
	}
	if len(d) >= 2 && strings.EqualFold(d[:2], prefix) {
		d = d[2:]
	}
	if d == "" || d[0] == '-' || d[0] == '+' {
		return Value{}, literalErr(k, text, nil)
	}
	if neg {
		d = "-" + d
	}
	i, err := strconv.ParseInt(d, base, 64)
	if err != nil {
		return Value{}, literalErr(k, text, err)
	}
	return IntValue(i), nil
}

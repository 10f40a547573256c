package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of a Value.
type Kind uint8

const (
	// KindUndefined is the kind of a field that is not present on a record.
	KindUndefined Kind = iota
	// KindNull is the kind of an explicit null.
	KindNull
	// KindNumber is the kind of a numeric value.
	KindNumber
	// KindString is the kind of a text value.
	KindString
	// KindBool is the kind of a boolean value.
	KindBool
)

// Value is a tagged scalar stored in a record field.
// Values are comparable: two values are equal only when both kind and payload are equal,
// so the number 1 never equals the string "1".
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Undefined is the value of a missing field.
//
//nolint:gochecknoglobals // Immutable zero value used as a constant.
var Undefined = Value{}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// NumberValue returns a numeric value.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// StringValue returns a text value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the text form of the value as used for grouping and primitive ordering:
// "21", "1.5", "NaN", "true", "null", "undefined".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindNumber:
		return formatNumber(v.num)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "undefined"
	}
}

// Number coerces the value to a number.
// Booleans become 1 or 0, null becomes 0, text is parsed after trimming
// (empty text is 0), anything unparsable or undefined becomes NaN.
func (v Value) Number() float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindNumber:
		return v.num
	case KindString:
		return parseNumber(v.str)
	case KindBool:
		if v.b {
			return 1
		}

		return 0
	default:
		return math.NaN()
	}
}

// Interface returns the value as a plain Go value: nil, float64, string or bool.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON encodes the value. Non-finite numbers and undefined encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && (math.IsNaN(v.num) || math.IsInf(v.num, 0)) {
		return []byte("null"), nil
	}

	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar into the value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalYAML encodes the value as a plain YAML scalar; NaN becomes .nan.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// FromAny converts a decoded JSON or YAML scalar into a Value.
func FromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return BoolValue(typed), nil
	case string:
		return StringValue(typed), nil
	case float64:
		return NumberValue(typed), nil
	case float32:
		return NumberValue(float64(typed)), nil
	case int:
		return NumberValue(float64(typed)), nil
	case int64:
		return NumberValue(float64(typed)), nil
	case uint64:
		return NumberValue(float64(typed)), nil
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return Undefined, fmt.Errorf("%w: %s", ErrUnsupportedValue, typed)
		}

		return NumberValue(f), nil
	default:
		return Undefined, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// ParseValue reads a command-line value: a JSON scalar such as 42, true, null or "42",
// and plain text otherwise.
func ParseValue(s string) Value {
	var raw any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return StringValue(s)
	}

	v, err := FromAny(raw)
	if err != nil {
		return StringValue(s)
	}

	return v
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		// Go pads exponents to two digits ("1e-07"), the canonical form does not.
		mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")

		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)

	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// ParseFloat also understands "inf", "nan" and digit separators, none of which are numbers here.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	// Radix literals are unsigned integers only: no sign and no binary exponent.
	if unsigned := strings.TrimLeft(s, "+-"); hasRadixPrefix(unsigned) {
		if unsigned != s {
			return math.NaN()
		}

		if n, err := strconv.ParseUint(s, 0, 64); err == nil {
			return float64(n)
		}

		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil || (errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
		return f
	}

	return math.NaN()
}

func hasRadixPrefix(s string) bool {
	return len(s) > 1 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1]))
}

package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestValue_String tests the String method of Value.
func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "integer", value: NumberValue(21), expected: "21"},
		{name: "fraction", value: NumberValue(1.5), expected: "1.5"},
		{name: "negative", value: NumberValue(-3), expected: "-3"},
		{name: "zero", value: NumberValue(0), expected: "0"},
		{name: "large", value: NumberValue(1e21), expected: "1e+21"},
		{name: "small", value: NumberValue(1e-7), expected: "1e-7"},
		{name: "nan", value: NumberValue(math.NaN()), expected: "NaN"},
		{name: "infinity", value: NumberValue(math.Inf(-1)), expected: "-Infinity"},
		{name: "string", value: StringValue("A"), expected: "A"},
		{name: "bool", value: BoolValue(true), expected: "true"},
		{name: "null", value: Null(), expected: "null"},
		{name: "undefined", value: Undefined, expected: "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

// TestValue_Number tests numeric coercion.
func TestValue_Number(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    Value
		expected float64
		isNaN    bool
	}{
		{name: "number", value: NumberValue(4.5), expected: 4.5},
		{name: "numeric text", value: StringValue(" 42 "), expected: 42},
		{name: "exponent text", value: StringValue("1e3"), expected: 1000},
		{name: "hex text", value: StringValue("0x10"), expected: 16},
		{name: "empty text", value: StringValue(""), expected: 0},
		{name: "infinity text", value: StringValue("Infinity"), expected: math.Inf(1)},
		{name: "true", value: BoolValue(true), expected: 1},
		{name: "false", value: BoolValue(false), expected: 0},
		{name: "null", value: Null(), expected: 0},
		{name: "word", value: StringValue("abc"), isNaN: true},
		{name: "go-only inf spelling", value: StringValue("inf"), isNaN: true},
		{name: "digit separators", value: StringValue("1_000"), isNaN: true},
		{name: "undefined", value: Undefined, isNaN: true},
		{name: "overflowing text", value: StringValue("1e400"), expected: math.Inf(1)},
		{name: "negative overflowing text", value: StringValue("-1e400"), expected: math.Inf(-1)},
		{name: "octal text", value: StringValue("0o17"), expected: 15},
		{name: "binary text", value: StringValue("0B101"), expected: 5},
		{name: "leading zero is decimal", value: StringValue("0755"), expected: 755},
		{name: "signed hex text", value: StringValue("-0x10"), isNaN: true},
		{name: "plus signed hex text", value: StringValue("+0x10"), isNaN: true},
		{name: "hex float text", value: StringValue("0x1p4"), isNaN: true},
		{name: "prefix without digits", value: StringValue("0x"), isNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.value.Number()
			if tt.isNaN {
				assert.True(t, math.IsNaN(result))

				return
			}

			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestValue_StrictEquality tests that values of different kinds never compare equal.
func TestValue_StrictEquality(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, NumberValue(1), StringValue("1"))
	assert.NotEqual(t, BoolValue(false), NumberValue(0))
	assert.NotEqual(t, Null(), Undefined)
	assert.Equal(t, StringValue("x"), StringValue("x"))
	assert.True(t, NumberValue(2) == NumberValue(2)) //nolint:testifylint // Strict == is what is under test.
}

// TestFromAny tests the FromAny function.
func TestFromAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected Value
		valid    bool
	}{
		{name: "nil", input: nil, expected: Null(), valid: true},
		{name: "bool", input: true, expected: BoolValue(true), valid: true},
		{name: "string", input: "s", expected: StringValue("s"), valid: true},
		{name: "float", input: 2.5, expected: NumberValue(2.5), valid: true},
		{name: "int", input: 3, expected: NumberValue(3), valid: true},
		{name: "json number", input: json.Number("7"), expected: NumberValue(7), valid: true},
		{name: "object", input: map[string]any{}, valid: false},
		{name: "array", input: []any{1}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := FromAny(tt.input)
			if !tt.valid {
				require.ErrorIs(t, err, ErrUnsupportedValue)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestParseValue tests the ParseValue function.
func TestParseValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NumberValue(42), ParseValue("42"))
	assert.Equal(t, StringValue("42"), ParseValue(`"42"`))
	assert.Equal(t, BoolValue(true), ParseValue("true"))
	assert.Equal(t, Null(), ParseValue("null"))
	assert.Equal(t, StringValue("Charlie"), ParseValue("Charlie"))
	assert.Equal(t, StringValue("[1,2]"), ParseValue("[1,2]"))
}

// TestValue_JSON tests JSON encoding and decoding of values.
func TestValue_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Record{"a": NumberValue(1), "b": StringValue("x"), "c": NumberValue(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":"x","c":null}`, string(data))

	var decoded Record

	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":"x","c":null,"d":false}`), &decoded))
	assert.Equal(t, Record{"a": NumberValue(1), "b": StringValue("x"), "c": Null(), "d": BoolValue(false)}, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"a":{"nested":true}}`), &decoded))
}

// TestValue_YAML tests YAML encoding of values.
func TestValue_YAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(Record{"a": NumberValue(1.5), "b": StringValue("x"), "c": NumberValue(math.NaN())})
	require.NoError(t, err)
	assert.Equal(t, "a: 1.5\nb: x\nc: .nan\n", string(data))
}

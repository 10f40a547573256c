package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/recordkit/internal/constants"
	"github.com/oshokin/recordkit/pkg/collection"
	"github.com/oshokin/recordkit/pkg/record"
)

// students returns the records used across the rendering tests.
func students() record.List {
	return record.List{
		{"name": record.StringValue("John"), "age": record.NumberValue(20)},
		{"name": record.StringValue("Jane"), "age": record.NumberValue(21)},
		{"name": record.StringValue("Jack"), "age": record.NumberValue(20)},
	}
}

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New(constants.FormatYAML, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, constants.FormatYAML, r.Format())

	_, err = New("xml", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

// TestRender tests the Render method in both formats.
func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		value    any
		expected string
	}{
		{
			name:     "json record",
			format:   constants.FormatJSON,
			value:    students()[0],
			expected: "{\n  \"age\": 20,\n  \"name\": \"John\"\n}\n",
		},
		{
			name:     "yaml record",
			format:   constants.FormatYAML,
			value:    students()[0],
			expected: "age: 20\nname: John\n",
		},
		{
			name:     "json bool",
			format:   constants.FormatJSON,
			value:    true,
			expected: "true\n",
		},
		{
			name:     "json NaN sum",
			format:   constants.FormatJSON,
			value:    record.NumberValue(math.NaN()),
			expected: "null\n",
		},
		{
			name:     "yaml NaN sum",
			format:   constants.FormatYAML,
			value:    record.NumberValue(math.NaN()),
			expected: ".nan\n",
		},
		{
			name:     "json html is not escaped",
			format:   constants.FormatJSON,
			value:    "<b>",
			expected: "\"<b>\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			r, err := New(tt.format, &buf)
			require.NoError(t, err)
			require.NoError(t, r.Render(tt.value))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

// TestRenderGroups tests that groups keep their key order.
func TestRenderGroups(t *testing.T) {
	t.Parallel()

	groups, err := record.GroupBy(students(), "age")
	require.NoError(t, err)

	var buf bytes.Buffer

	r, err := New(constants.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, RenderGroups(r, groups))

	expectedJSON := `{
  "20": [
    {
      "age": 20,
      "name": "John"
    },
    {
      "age": 20,
      "name": "Jack"
    }
  ],
  "21": [
    {
      "age": 21,
      "name": "Jane"
    }
  ]
}
`
	assert.Equal(t, expectedJSON, buf.String())

	buf.Reset()

	r, err = New(constants.FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, RenderGroups(r, groups))

	expectedYAML := `"20":
  - age: 20
    name: John
  - age: 20
    name: Jack
"21":
  - age: 21
    name: Jane
`
	assert.Equal(t, expectedYAML, buf.String())
}

// TestRenderGroups_KeyOrder tests that keys are not sorted.
func TestRenderGroups_KeyOrder(t *testing.T) {
	t.Parallel()

	groups, err := collection.GroupBy([]string{"b", "a", "b"}, func(s string) string { return s })
	require.NoError(t, err)

	var buf bytes.Buffer

	r, err := New(constants.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, RenderGroups(r, groups))

	assert.JSONEq(t, `{"b": ["b", "b"], "a": ["a"]}`, buf.String())
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"b"`)), bytes.Index(buf.Bytes(), []byte(`"a"`)))
}

// TestRenderSearch tests rendering of search results.
func TestRenderSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   record.SearchResult
		expected string
	}{
		{
			name:     "single match not found",
			result:   record.SearchResult{Mode: collection.FirstOne},
			expected: "null\n",
		},
		{
			name:     "all mode not found",
			result:   record.SearchResult{Mode: collection.All, Matches: record.List{}},
			expected: "[]\n",
		},
		{
			name: "single match",
			result: record.SearchResult{
				Mode:  collection.LastOne,
				Match: record.Record{"name": record.StringValue("Jack")},
			},
			expected: "{\n  \"name\": \"Jack\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			r, err := New(constants.FormatJSON, &buf)
			require.NoError(t, err)
			require.NoError(t, r.RenderSearch(tt.result))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

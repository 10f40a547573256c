package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedValue struct {
	N string
	V int
}

func nameOf(r namedValue) string { return r.N }

// TestParseSearchMode tests the ParseSearchMode function.
func TestParseSearchMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected SearchMode
		valid    bool
	}{
		{input: "", expected: FirstOne, valid: true},
		{input: "FIRST ONE", expected: FirstOne, valid: true},
		{input: "first", expected: FirstOne, valid: true},
		{input: "LAST ONE", expected: LastOne, valid: true},
		{input: "last", expected: LastOne, valid: true},
		{input: "ALL", expected: All, valid: true},
		{input: "ONE", expected: FirstOne, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			mode, err := ParseSearchMode(tt.input)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidArgument)
			}

			assert.Equal(t, tt.expected, mode)
		})
	}
}

// TestSearchMode_String tests the String method of SearchMode.
func TestSearchMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FIRST ONE", FirstOne.String())
	assert.Equal(t, "LAST ONE", LastOne.String())
	assert.Equal(t, "ALL", All.String())
}

// TestFirstAndLast tests the First and Last functions.
func TestFirstAndLast(t *testing.T) {
	t.Parallel()

	input := []namedValue{{N: "X", V: 1}, {N: "Y", V: 3}, {N: "X", V: 2}}

	first, ok := First(input, nameOf, "X")
	require.True(t, ok)
	assert.Equal(t, namedValue{N: "X", V: 1}, first)

	last, ok := Last(input, nameOf, "X")
	require.True(t, ok)
	assert.Equal(t, namedValue{N: "X", V: 2}, last)

	_, ok = First(input, nameOf, "Z")
	assert.False(t, ok)

	_, ok = Last(input, nameOf, "Z")
	assert.False(t, ok)
}

// TestLast_ScansFromEnd tests that Last stops at the last match without visiting earlier items.
func TestLast_ScansFromEnd(t *testing.T) {
	t.Parallel()

	var visited []int

	key := func(v int) int {
		visited = append(visited, v)

		return v % 2
	}

	last, ok := Last([]int{1, 2, 3, 4, 5}, key, 1)
	require.True(t, ok)
	assert.Equal(t, 5, last)
	assert.Equal(t, []int{5}, visited)
}

// TestFindAll tests the FindAll function.
func TestFindAll(t *testing.T) {
	t.Parallel()

	input := []namedValue{{N: "X", V: 1}, {N: "X", V: 2}}

	assert.Equal(t, input, FindAll(input, nameOf, "X"))

	none := FindAll(input, nameOf, "Y")
	require.NotNil(t, none)
	assert.Empty(t, none)

	none = FindAll(nil, nameOf, "Y")
	require.NotNil(t, none)
	assert.Empty(t, none)
}

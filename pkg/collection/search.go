package collection

import (
	"fmt"
	"strings"
)

// SearchMode selects which matches a search returns.
type SearchMode uint8

const (
	// FirstOne returns the first match only.
	FirstOne SearchMode = iota
	// LastOne returns the last match only.
	LastOne
	// All returns every match.
	All
)

// String returns the canonical name of the search mode.
func (m SearchMode) String() string {
	switch m {
	case FirstOne:
		return "FIRST ONE"
	case LastOne:
		return "LAST ONE"
	case All:
		return "ALL"
	default:
		return fmt.Sprintf("SearchMode(%d)", uint8(m))
	}
}

// ParseSearchMode converts a textual mode into a SearchMode.
// An empty string yields FirstOne.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first one", "first":
		return FirstOne, nil
	case "last one", "last":
		return LastOne, nil
	case "all":
		return All, nil
	default:
		return FirstOne, fmt.Errorf("%w: unknown search mode '%s'", ErrInvalidArgument, s)
	}
}

// First returns the first item whose key equals want.
func First[T any, K comparable](items []T, key func(T) K, want K) (T, bool) {
	for _, item := range items {
		if key(item) == want {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Last returns the last item whose key equals want, scanning from the end.
func Last[T any, K comparable](items []T, key func(T) K, want K) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if key(items[i]) == want {
			return items[i], true
		}
	}

	var zero T

	return zero, false
}

// FindAll returns every item whose key equals want.
// The result is never nil: no match yields an empty slice.
func FindAll[T any, K comparable](items []T, key func(T) K, want K) []T {
	result := make([]T, 0)

	for _, item := range items {
		if key(item) == want {
			result = append(result, item)
		}
	}

	return result
}

package collection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort direction used by the ordering operations.
type Direction uint8

const (
	// Ascending orders from the smallest to the largest value.
	Ascending Direction = iota
	// Descending orders from the largest to the smallest value.
	Descending
)

// Scalar is the set of primitive element types that can be ordered without a key.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection converts a textual direction into a Direction.
// It accepts "asc", "ascending", "desc" and "descending" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: unknown direction '%s'", ErrInvalidArgument, s)
	}
}

// OrderBy returns a copy of items sorted by the number returned by key.
// The sort is stable. NaN keys go first in ascending order and last in descending order.
func OrderBy[T any](items []T, key func(T) float64, dir Direction) ([]T, error) {
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return []T{}, nil
	}

	if key == nil {
		return nil, fmt.Errorf("%w: key is required for non-primitive sorting", ErrInvalidArgument)
	}

	result := slices.Clone(items)

	slices.SortStableFunc(result, func(a, b T) int {
		if dir == Descending {
			return cmp.Compare(key(b), key(a))
		}

		return cmp.Compare(key(a), key(b))
	})

	return result, nil
}

// OrderValues returns a copy of primitive values sorted by their string form
// using locale-aware collation.
func OrderValues[T Scalar](items []T, dir Direction) ([]T, error) {
	return OrderByText(items, func(v T) string { return fmt.Sprint(v) }, dir)
}

// OrderByText returns a copy of items sorted by the text returned by text
// using root-locale collation. The sort is stable.
func OrderByText[T any](items []T, text func(T) string, dir Direction) ([]T, error) {
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return []T{}, nil
	}

	if text == nil {
		return nil, fmt.Errorf("%w: text accessor is required", ErrInvalidArgument)
	}

	// Collator keeps internal buffers, so every call gets its own.
	collator := collate.New(language.Und)
	result := slices.Clone(items)

	slices.SortStableFunc(result, func(a, b T) int {
		if dir == Descending {
			return collator.CompareString(text(b), text(a))
		}

		return collator.CompareString(text(a), text(b))
	})

	return result, nil
}

func validateDirection(dir Direction) error {
	if dir != Ascending && dir != Descending {
		return fmt.Errorf("%w: unknown direction %s", ErrInvalidArgument, dir)
	}

	return nil
}

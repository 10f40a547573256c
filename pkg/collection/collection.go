package collection

import (
	"fmt"
	"iter"
	"slices"
)

// Groups is an ordered mapping from a stringified key to the elements sharing it.
// Keys keep the order of their first occurrence in the input,
// elements inside a group keep their input order.
type Groups[T any] struct {
	// keys holds distinct group keys in first-occurrence order.
	keys []string
	// groups maps each key to its elements.
	groups map[string][]T
}

// Keys returns the group keys in first-occurrence order.
func (g *Groups[T]) Keys() []string {
	return slices.Clone(g.keys)
}

// Get returns a copy of the elements grouped under key, or nil if there is no such group.
func (g *Groups[T]) Get(key string) []T {
	return slices.Clone(g.groups[key])
}

// Len returns the number of groups.
func (g *Groups[T]) Len() int {
	return len(g.keys)
}

// All iterates over groups in key order.
func (g *Groups[T]) All() iter.Seq2[string, []T] {
	return func(yield func(string, []T) bool) {
		for _, key := range g.keys {
			if !yield(key, slices.Clone(g.groups[key])) {
				return
			}
		}
	}
}

// GroupBy groups items by the string form of the value returned by key.
// The string form is produced with fmt.Sprint, so key types implementing fmt.Stringer control it.
func GroupBy[T, K any](items []T, key func(T) K) (*Groups[T], error) {
	if key == nil {
		return nil, fmt.Errorf("%w: key to group is required", ErrInvalidArgument)
	}

	result := &Groups[T]{
		groups: make(map[string][]T),
	}

	for _, item := range items {
		groupKey := fmt.Sprint(key(item))

		if _, ok := result.groups[groupKey]; !ok {
			result.keys = append(result.keys, groupKey)
		}

		result.groups[groupKey] = append(result.groups[groupKey], item)
	}

	return result, nil
}

// RemoveDuplicates keeps the first item for every distinct key and drops the rest.
func RemoveDuplicates[T any, K comparable](items []T, key func(T) K) []T {
	var (
		seen   = make(map[K]struct{}, len(items))
		result = make([]T, 0, len(items))
	)

	for _, item := range items {
		value := key(item)
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}

		result = append(result, item)
	}

	return result
}

// Sum adds up the numbers returned by key.
// A NaN anywhere in the input makes the total NaN.
func Sum[T any](items []T, key func(T) float64) float64 {
	var total float64

	for _, item := range items {
		total += key(item)
	}

	return total
}

// HasDuplicateKey reports whether two items share the same key.
// It stops at the first repeated key.
func HasDuplicateKey[T any, K comparable](items []T, key func(T) K) bool {
	seen := make(map[K]struct{}, len(items))

	for _, item := range items {
		value := key(item)
		if _, ok := seen[value]; ok {
			return true
		}

		seen[value] = struct{}{}
	}

	return false
}

// Includes reports whether any item's key equals want.
func Includes[T any, K comparable](items []T, key func(T) K, want K) bool {
	return slices.ContainsFunc(items, func(item T) bool {
		return key(item) == want
	})
}

// Remove returns the items whose key does not equal want.
func Remove[T any, K comparable](items []T, key func(T) K, want K) []T {
	result := make([]T, 0, len(items))

	for _, item := range items {
		if key(item) != want {
			result = append(result, item)
		}
	}

	return result
}

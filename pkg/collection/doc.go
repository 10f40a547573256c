// Package collection provides generic, allocation-only operations over slices of uniform values:
// grouping, ordering, deduplication, summing, searching, membership tests and filtering.
// Every operation takes the field to work on as an accessor function, never mutates its input
// and returns freshly allocated slices.
package collection

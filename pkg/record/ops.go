package record

import (
	"fmt"
	"math"

	"github.com/oshokin/recordkit/pkg/collection"
)

// GroupBy groups records by the text form of field.
func GroupBy(list List, field string) (*collection.Groups[Record], error) {
	if field == "" {
		return nil, fmt.Errorf("%w: key to group is required", ErrInvalidArgument)
	}

	return collection.GroupBy(list, Field(field))
}

// OrderBy sorts a dataset.
// Records are ordered by field coerced to a number, and field is required.
// Primitive values are ordered by their text form, and field must be empty.
func OrderBy(data Dataset, field string, dir collection.Direction) (Dataset, error) {
	if data.Len() == 0 {
		if data.IsRecords() {
			return RecordsDataset(List{}), nil
		}

		return ScalarsDataset([]Value{}), nil
	}

	if !data.IsRecords() {
		if field != "" {
			return Dataset{}, fmt.Errorf("%w: key should not be provided for primitive lists", ErrInvalidArgument)
		}

		values, err := collection.OrderByText(data.Scalars, Value.String, dir)
		if err != nil {
			return Dataset{}, err
		}

		return ScalarsDataset(values), nil
	}

	if field == "" {
		return Dataset{}, fmt.Errorf("%w: key is required for record sorting", ErrInvalidArgument)
	}

	records, err := collection.OrderBy(data.Records, NumberField(field), dir)
	if err != nil {
		return Dataset{}, err
	}

	return RecordsDataset(records), nil
}

// RemoveDuplicates keeps the first record for every distinct value of field.
// All NaN values count as one value.
func RemoveDuplicates(list List, field string) List {
	return collection.RemoveDuplicates(list, dedupeKey(field))
}

// Sum adds up field coerced to a number. Non-numeric values make the result NaN.
func Sum(list List, field string) float64 {
	return collection.Sum(list, NumberField(field))
}

// HasDuplicateKey reports whether two records share the same value of field.
// All NaN values count as one value.
func HasDuplicateKey(list List, field string) bool {
	return collection.HasDuplicateKey(list, dedupeKey(field))
}

// Includes reports whether any record's field strictly equals want.
func Includes(list List, field string, want Value) bool {
	return collection.Includes(list, Field(field), want)
}

// Remove returns the records whose field does not strictly equal want.
func Remove(list List, field string, want Value) List {
	return collection.Remove(list, Field(field), want)
}

// SearchResult is the outcome of Search.
// Single-match modes fill Match (nil when nothing matched),
// the All mode fills Matches (empty, never nil, when nothing matched).
type SearchResult struct {
	// Mode is the search mode that produced the result.
	Mode collection.SearchMode
	// Match is the matching record for the FirstOne and LastOne modes.
	Match Record
	// Matches holds every matching record for the All mode.
	Matches List
}

// Found reports whether the search matched at least one record.
func (r SearchResult) Found() bool {
	if r.Mode == collection.All {
		return len(r.Matches) > 0
	}

	return r.Match != nil
}

// Search finds records whose field strictly equals want.
func Search(list List, field string, want Value, mode collection.SearchMode) (SearchResult, error) {
	result := SearchResult{Mode: mode}

	switch mode {
	case collection.FirstOne:
		if match, ok := collection.First(list, Field(field), want); ok {
			result.Match = match
		}
	case collection.LastOne:
		if match, ok := collection.Last(list, Field(field), want); ok {
			result.Match = match
		}
	case collection.All:
		result.Matches = collection.FindAll(list, Field(field), want)
	default:
		return SearchResult{}, fmt.Errorf("%w: unknown search mode %s", ErrInvalidArgument, mode)
	}

	return result, nil
}

// nanKey stands for every NaN in a distinct-value set.
// Real numbers never carry text, so it cannot collide with them.
//
//nolint:gochecknoglobals // Immutable sentinel used as a constant.
var nanKey = Value{kind: KindNumber, str: "NaN"}

// dedupeKey reads field as a map key where every NaN is the same key.
func dedupeKey(field string) func(Record) Value {
	return func(r Record) Value {
		v := r.Get(field)
		if v.kind == KindNumber && math.IsNaN(v.num) {
			return nanKey
		}

		return v
	}
}

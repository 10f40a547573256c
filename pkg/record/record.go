package record

import (
	"errors"
	"fmt"

	"github.com/oshokin/recordkit/pkg/collection"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidArgument is returned for a missing field name or an inconsistent ordering request.
	// It is the same value as collection.ErrInvalidArgument.
	ErrInvalidArgument = collection.ErrInvalidArgument
	// ErrUnsupportedValue indicates a field value that is not a scalar.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrMixedShapes indicates a list mixing records and primitive values.
	ErrMixedShapes = errors.New("list mixes records and primitive values")
)

// Record is a structured value with named scalar fields.
type Record map[string]Value

// List is an ordered sequence of records.
type List []Record

// Get returns the value of field, or Undefined if the record has no such field.
func (r Record) Get(field string) Value {
	return r[field]
}

// Field returns an accessor reading the named field of a record.
func Field(name string) func(Record) Value {
	return func(r Record) Value {
		return r.Get(name)
	}
}

// NumberField returns an accessor reading the named field coerced to a number.
func NumberField(name string) func(Record) float64 {
	return func(r Record) float64 {
		return r.Get(name).Number()
	}
}

// FromMap converts a decoded JSON or YAML object into a Record.
func FromMap(raw map[string]any) (Record, error) {
	result := make(Record, len(raw))

	for field, value := range raw {
		v, err := FromAny(value)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", field, err)
		}

		result[field] = v
	}

	return result, nil
}

// Dataset is a decoded list whose elements are either all records or all primitive values.
// Exactly one of Records and Scalars is used.
type Dataset struct {
	// Records holds the elements when the list is made of objects.
	Records List
	// Scalars holds the elements when the list is made of primitive values.
	Scalars []Value
}

// RecordsDataset wraps records into a Dataset.
func RecordsDataset(records List) Dataset {
	return Dataset{Records: records}
}

// ScalarsDataset wraps primitive values into a Dataset.
func ScalarsDataset(values []Value) Dataset {
	return Dataset{Scalars: values}
}

// IsRecords reports whether the dataset is made of records.
func (d Dataset) IsRecords() bool {
	return d.Records != nil
}

// Len returns the number of elements.
func (d Dataset) Len() int {
	if d.IsRecords() {
		return len(d.Records)
	}

	return len(d.Scalars)
}

// DatasetFromSlice converts a decoded JSON or YAML array into a Dataset.
// The first element decides whether the list holds records or primitive values;
// every other element must have the same shape.
func DatasetFromSlice(raw []any) (Dataset, error) {
	if len(raw) == 0 {
		return Dataset{Scalars: []Value{}}, nil
	}

	if _, ok := raw[0].(map[string]any); !ok {
		values := make([]Value, 0, len(raw))

		for i, item := range raw {
			v, err := FromAny(item)
			if err != nil {
				return Dataset{}, fmt.Errorf("element %d: %w", i, shapeError(err))
			}

			values = append(values, v)
		}

		return ScalarsDataset(values), nil
	}

	records := make(List, 0, len(raw))

	for i, item := range raw {
		object, ok := item.(map[string]any)
		if !ok {
			return Dataset{}, fmt.Errorf("element %d: %w", i, ErrMixedShapes)
		}

		r, err := FromMap(object)
		if err != nil {
			return Dataset{}, fmt.Errorf("element %d: %w", i, err)
		}

		records = append(records, r)
	}

	return RecordsDataset(records), nil
}

func shapeError(err error) error {
	if errors.Is(err, ErrUnsupportedValue) {
		return fmt.Errorf("%w: %w", ErrMixedShapes, err)
	}

	return err
}

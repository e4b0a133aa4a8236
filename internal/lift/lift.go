// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package lift

import (
	"maps"
	"slices"

	"github.com/mia-platform/cols/internal/record"
)

const (
	shapeValue     = "value->value function"
	shapeFunc      = "record->value function"
	shapeTransform = "record->record function"
	shapePredicate = "predicate"
	shapePointwise = "function in pointwise operator"
)

// ToValue lifts spec into a value->value function. Only Value specs are accepted.
func ToValue(spec Spec) (Value, error) {
	switch s := spec.(type) {
	case Value:
		if s != nil {
			return s, nil
		}
	}

	return nil, newUsageError(shapeValue, spec)
}

// ToFunc lifts spec into a record->value function. A Field reads that field.
func ToFunc(spec Spec) (Func, error) {
	switch s := spec.(type) {
	case Func:
		if s != nil {
			return s, nil
		}
	case Field:
		return pluck(string(s)), nil
	}

	return nil, newUsageError(shapeFunc, spec)
}

// ToTransform lifts spec into a record->record function. A Mapping is applied pointwise.
func ToTransform(spec Spec) (Transform, error) {
	switch s := spec.(type) {
	case Transform:
		if s != nil {
			return s, nil
		}
	case Mapping:
		return pointwise(s)
	}

	return nil, newUsageError(shapeTransform, spec)
}

// ToPredicate lifts spec into a predicate. A Field tests the truthiness of that field,
// a Where requires every per-field predicate to pass, checked in field name order and
// stopping at the first one that fails or errors.
func ToPredicate(spec Spec) (Predicate, error) {
	switch s := spec.(type) {
	case Predicate:
		if s != nil {
			return s, nil
		}
	case Field:
		field := string(s)
		return func(r record.Record) (bool, error) {
			return record.Truthy(r[field]), nil
		}, nil
	case Where:
		for field, predicate := range s {
			if predicate == nil {
				return nil, newUsageError(shapePredicate, Field(field))
			}
		}
		fields := slices.Sorted(maps.Keys(s))
		return func(r record.Record) (bool, error) {
			for _, field := range fields {
				ok, err := s[field](r[field])
				if err != nil || !ok {
					return false, err
				}
			}
			return true, nil
		}, nil
	}

	return nil, newUsageError(shapePredicate, spec)
}

// pluck returns a function reading field from a record.
func pluck(field string) Func {
	return func(r record.Record) (any, error) {
		return r[field], nil
	}
}

// pointwise builds the record->record function described by mapping.
func pointwise(mapping Mapping) (Transform, error) {
	for field, entry := range mapping {
		if !entry.valid() {
			return nil, newUsageError(shapePointwise, Field(field))
		}
	}

	wildcard, hasWildcard := mapping[Wildcard]
	return func(r record.Record) (record.Record, error) {
		result := make(record.Record, len(r)+len(mapping))
		for field, value := range r {
			entry, ok := mapping[field]
			if !ok && hasWildcard {
				entry, ok = wildcard, true
			}
			if !ok {
				result[field] = value
				continue
			}

			if err := entry.apply(result, field, value, r); err != nil {
				return nil, err
			}
		}

		for field, entry := range mapping {
			if field == Wildcard || r.Has(field) {
				continue
			}

			if err := entry.apply(result, field, nil, r); err != nil {
				return nil, err
			}
		}

		return result, nil
	}, nil
}

// apply stores into result the outcome of the entry for field.
func (e Entry) apply(result record.Record, field string, value any, r record.Record) error {
	var (
		output any
		err    error
	)

	switch {
	case e.drop:
		return nil
	case e.value != nil:
		output, err = e.value(value)
	default:
		output, err = e.derive(r)
	}
	if err != nil {
		return &FieldError{Field: field, Err: err}
	}

	result[field] = output
	return nil
}

// FieldError wraps an error raised while computing a single field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "field " + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

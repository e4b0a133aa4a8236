// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package lift

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/record"
)

func upper(value any) (any, error) {
	return strings.ToUpper(value.(string)), nil
}

func TestToValue(t *testing.T) {
	t.Parallel()

	fn, err := ToValue(Value(upper))
	require.NoError(t, err)
	result, err := fn("a")
	require.NoError(t, err)
	assert.Equal(t, "A", result)

	for name, spec := range map[string]Spec{
		"field":        Field("a"),
		"nil":          nil,
		"nil function": Value(nil),
		"mapping":      Mapping{},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ToValue(spec)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestToFunc(t *testing.T) {
	t.Parallel()

	r := record.Record{"browser": "chrome", "score": float64(10)}

	pluck, err := ToFunc(Field("browser"))
	require.NoError(t, err)
	value, err := pluck(r)
	require.NoError(t, err)
	assert.Equal(t, "chrome", value)

	missing, err := ToFunc(Field("missing"))
	require.NoError(t, err)
	value, err = missing(r)
	require.NoError(t, err)
	assert.Nil(t, value)

	fn, err := ToFunc(Func(func(r record.Record) (any, error) { return r["score"], nil }))
	require.NoError(t, err)
	value, err = fn(r)
	require.NoError(t, err)
	assert.Equal(t, float64(10), value)

	_, err = ToFunc(Value(upper))
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, "record->value function", usageErr.Shape)
	assert.Equal(t, "not usable as record->value function: value function", err.Error())
}

func TestPointwiseTransform(t *testing.T) {
	t.Parallel()

	input := record.Record{"bench": "box1", "score": "10", "lines": "3", "noise": "x"}

	testCases := map[string]struct {
		mapping       Mapping
		expected      record.Record
		expectedError error
	}{
		"unmapped fields are carried over": {
			mapping:  Mapping{},
			expected: input,
		},
		"existing fields are transformed": {
			mapping: Mapping{"score": Apply(aggregate.Number), "lines": Apply(aggregate.Number)},
			expected: record.Record{
				"bench": "box1", "score": float64(10), "lines": float64(3), "noise": "x",
			},
		},
		"drop discards existing fields": {
			mapping:  Mapping{"noise": Drop()},
			expected: record.Record{"bench": "box1", "score": "10", "lines": "3"},
		},
		"drop of a missing field creates nothing": {
			mapping:  Mapping{"missing": Drop()},
			expected: input,
		},
		"derive on existing field receives the record": {
			mapping: Mapping{"bench": Derive(func(r record.Record) (any, error) {
				return r["bench"].(string) + "/" + r["noise"].(string), nil
			})},
			expected: record.Record{"bench": "box1/x", "score": "10", "lines": "3", "noise": "x"},
		},
		"new fields are derived from the record": {
			mapping: Mapping{"total": Derive(func(r record.Record) (any, error) {
				return r["score"].(string) + r["lines"].(string), nil
			})},
			expected: record.Record{"bench": "box1", "score": "10", "lines": "3", "noise": "x", "total": "103"},
		},
		"new fields with value functions receive nil": {
			mapping:  Mapping{"label": Apply(aggregate.Constant("TOTAL"))},
			expected: record.Record{"bench": "box1", "score": "10", "lines": "3", "noise": "x", "label": "TOTAL"},
		},
		"wildcard applies to fields without entries": {
			mapping: Mapping{Wildcard: Apply(upper), "score": Apply(aggregate.Number), "noise": Drop()},
			expected: record.Record{
				"bench": "BOX1", "score": float64(10), "lines": "3",
			},
		},
		"wildcard drop keeps only mapped fields": {
			mapping:  Mapping{Wildcard: Drop(), "bench": Apply(aggregate.Identity)},
			expected: record.Record{"bench": "box1"},
		},
		"errors are reported with the field": {
			mapping:       Mapping{"bench": Apply(aggregate.Number)},
			expectedError: aggregate.ErrNotNumber,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			transform, err := ToTransform(test.mapping)
			require.NoError(t, err)

			output, err := transform(input)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "bench", fieldErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, output)
			assert.Equal(t, record.Record{"bench": "box1", "score": "10", "lines": "3", "noise": "x"}, input)
		})
	}
}

func TestToTransformRejectsUnusableSpecs(t *testing.T) {
	t.Parallel()

	testCases := map[string]Spec{
		"field":         Field("a"),
		"func":          Func(func(record.Record) (any, error) { return nil, nil }),
		"invalid entry": Mapping{"a": Entry{}},
		"nil":           nil,
	}

	for name, spec := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ToTransform(spec)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}

	transform, err := ToTransform(Transform(func(r record.Record) (record.Record, error) { return nil, nil }))
	require.NoError(t, err)
	output, err := transform(record.Record{"a": "1"})
	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestToPredicate(t *testing.T) {
	t.Parallel()

	greaterThan := func(limit float64) ValuePredicate {
		return func(value any) (bool, error) {
			n, ok := record.Number(value)
			return ok && n > limit, nil
		}
	}

	testCases := map[string]struct {
		spec     Spec
		input    record.Record
		expected bool
	}{
		"truthy field":  {spec: Field("ok"), input: record.Record{"ok": "yes"}, expected: true},
		"falsy field":   {spec: Field("ok"), input: record.Record{"ok": ""}, expected: false},
		"missing field": {spec: Field("ok"), input: record.Record{}, expected: false},
		"where passes": {
			spec:     Where{"score": greaterThan(10), "lines": greaterThan(1)},
			input:    record.Record{"score": float64(20), "lines": float64(2)},
			expected: true,
		},
		"where fails on one field": {
			spec:     Where{"score": greaterThan(10), "lines": greaterThan(1)},
			input:    record.Record{"score": float64(20), "lines": float64(1)},
			expected: false,
		},
		"predicate function": {
			spec:     Predicate(func(r record.Record) (bool, error) { return r.Has("x"), nil }),
			input:    record.Record{"x": nil},
			expected: true,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			predicate, err := ToPredicate(test.spec)
			require.NoError(t, err)
			ok, err := predicate(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, ok)
		})
	}

	_, err := ToPredicate(Mapping{})
	assert.ErrorIs(t, err, ErrUsage)
	_, err = ToPredicate(Where{"a": nil})
	assert.ErrorIs(t, err, ErrUsage)

	failing, err := ToPredicate(Where{"a": func(any) (bool, error) { return false, assert.AnError }})
	require.NoError(t, err)
	_, err = failing(record.Record{"a": "1"})
	assert.True(t, errors.Is(err, assert.AnError))
}

func TestWhereChecksFieldsInOrder(t *testing.T) {
	t.Parallel()

	reject := func(any) (bool, error) { return false, nil }
	fail := func(any) (bool, error) { return false, assert.AnError }

	testCases := map[string]struct {
		spec          Where
		expectedError error
	}{
		"rejection before failure filters the record": {
			spec: Where{"a": reject, "b": fail},
		},
		"failure before rejection fails": {
			spec:          Where{"a": fail, "b": reject},
			expectedError: assert.AnError,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			predicate, err := ToPredicate(test.spec)
			require.NoError(t, err)

			for range 100 {
				ok, err := predicate(record.Record{"a": "1", "b": "x"})
				assert.False(t, ok)
				if test.expectedError != nil {
					require.ErrorIs(t, err, test.expectedError)
					continue
				}
				require.NoError(t, err)
			}
		})
	}
}

func TestMappingHelpers(t *testing.T) {
	t.Parallel()

	mapping := Mapping{"b": Drop(), "a": Apply(aggregate.Sum)}
	clone := mapping.Clone()
	clone["c"] = Derive(func(record.Record) (any, error) { return nil, nil })

	assert.Len(t, mapping, 2)
	assert.Equal(t, "{a:apply, b:drop}", mapping.String())
	assert.Equal(t, []Spec{Field("a"), Field("-b")}, Fields("a", "-b"))

	_, err := ToFunc(mapping)
	assert.EqualError(t, err, "not usable as record->value function: mapping {a:apply, b:drop}")
}

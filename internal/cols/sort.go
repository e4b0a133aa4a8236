// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"
	"slices"
	"strings"

	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

// sortKey is a lifted sort key and its direction, 1 ascending and -1 descending.
type sortKey struct {
	value     lift.Func
	direction int
}

// keyed pairs a record with its precomputed sort key values.
type keyed struct {
	record record.Record
	values []any
}

// Sort orders the records by keys. A key is a field name, reversed by a leading "-", or a
// record->value function. The first key is the primary one, the following ones break ties
// and records still equal keep their input order.
func (t *Table) Sort(keys ...lift.Spec) *Table {
	sortKeys, err := liftSortKeys(keys)
	return t.operator("sort", err, func(_ context.Context, input record.Sequence) (record.Sequence, error) {
		rows := make([]keyed, len(input))
		for i, r := range input {
			values := make([]any, len(sortKeys))
			for k, key := range sortKeys {
				value, err := key.value(r)
				if err != nil {
					return nil, err
				}
				values[k] = value
			}
			rows[i] = keyed{record: r, values: values}
		}

		compare := composeComparator(sortKeys)
		slices.SortStableFunc(rows, func(a, b keyed) int {
			return compare(a.values, b.values)
		})

		result := make(record.Sequence, len(rows))
		for i, row := range rows {
			result[i] = row.record
		}
		return result, nil
	})
}

func liftSortKeys(keys []lift.Spec) ([]sortKey, error) {
	if len(keys) == 0 {
		return nil, ErrNoSortKeys
	}

	sortKeys := make([]sortKey, len(keys))
	for i, key := range keys {
		direction := 1
		if field, ok := key.(lift.Field); ok && strings.HasPrefix(string(field), "-") {
			key = field[1:]
			direction = -1
		}

		fn, err := lift.ToFunc(key)
		if err != nil {
			return nil, err
		}
		sortKeys[i] = sortKey{value: fn, direction: direction}
	}
	return sortKeys, nil
}

// composeComparator folds the keys from the rightmost one: each key compares its own
// values and defers to the comparator built so far on equality.
func composeComparator(keys []sortKey) func(a, b []any) int {
	compare := func(_, _ []any) int { return 0 }
	for idx := len(keys) - 1; idx >= 0; idx-- {
		next := compare
		direction := keys[idx].direction
		compare = func(a, b []any) int {
			if c := record.Compare(a[idx], b[idx]); c != 0 {
				return direction * c
			}
			return next(a, b)
		}
	}
	return compare
}

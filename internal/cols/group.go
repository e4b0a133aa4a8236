// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

// groupKey identifies a group. It is only ever built from the printable form of a key.
type groupKey string

// Group merges the records sharing the same key into one group record whose fields hold
// the list of the member values, groups ordered by first appearance of their key. Records
// with a nil key are skipped.
//
// reducers, a Mapping or a Transform, is then applied to every group record, typically to
// reduce lists back to scalars with the aggregate functions. When key is a Field, the key
// field is reduced with aggregate.First unless reducers already maps it.
func (t *Table) Group(key lift.Spec, reducers lift.Spec) *Table {
	keyFn, err := lift.ToFunc(key)
	if err != nil {
		return t.operator("group", err, nil)
	}

	if field, ok := key.(lift.Field); ok {
		reducers = withFirst(reducers, string(field))
	}

	var transform lift.Transform
	if reducers != nil {
		transform, err = lift.ToTransform(reducers)
	}

	return t.operator("group", err, func(_ context.Context, input record.Sequence) (record.Sequence, error) {
		groups, err := groupRecords(input, keyFn)
		if err != nil || transform == nil {
			return groups, err
		}
		return mapSequence(groups, transform)
	})
}

// Collapse groups every record into a single group record, useful for grand totals.
func (t *Table) Collapse(reducers lift.Spec) *Table {
	return t.Group(lift.Func(func(record.Record) (any, error) { return 0, nil }), reducers)
}

// withFirst returns a copy of reducers reducing field with aggregate.First when it has no
// entry for it. Specs other than mappings are returned unchanged.
func withFirst(reducers lift.Spec, field string) lift.Spec {
	var mapping lift.Mapping
	switch r := reducers.(type) {
	case nil:
		mapping = lift.Mapping{}
	case lift.Mapping:
		if _, ok := r[field]; ok {
			return r
		}
		mapping = r.Clone()
	default:
		return reducers
	}

	mapping[field] = lift.Apply(aggregate.First)
	return mapping
}

func groupRecords(input record.Sequence, keyFn lift.Func) (record.Sequence, error) {
	index := make(map[groupKey]int)
	groups := make(record.Sequence, 0)

	for _, r := range input {
		value, err := keyFn(r)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}

		key := groupKey(record.Format(value))
		position, ok := index[key]
		if !ok {
			position = len(groups)
			index[key] = position
			groups = append(groups, make(record.Record, len(r)))
		}

		group := groups[position]
		for field, fieldValue := range r {
			values, _ := group[field].([]any)
			group[field] = append(values, fieldValue)
		}
	}

	return groups, nil
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"

	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/pipeline"
	"github.com/mia-platform/cols/internal/record"
)

// Join pairs every record of the receiver with every record of right that agrees on all
// the fields they share. A merged record holds the left fields plus the right fields the
// left record does not have. Output is ordered by left record, then by right record.
func (t *Table) Join(right *Table) *Table {
	if right == nil {
		return t.operator("join", errNilJoinTable, nil)
	}

	return &Table{
		pipeline: pipeline.Bind(t.pipeline, func(_ context.Context, left record.Sequence) *pipeline.Pipeline[record.Sequence] {
			return pipeline.Chain(right.pipeline, func(ctx context.Context, others record.Sequence) (record.Sequence, error) {
				result := joinSequences(left, others)
				logger.Named(ctx, loggerName).Trace("operator done", "operator", "join", "left", len(left), "right", len(others), "output", len(result))
				return result, nil
			}, nil)
		}),
	}
}

func joinSequences(left, right record.Sequence) record.Sequence {
	result := make(record.Sequence, 0)
	for _, x := range left {
		for _, y := range right {
			if !joinable(x, y) {
				continue
			}

			merged := x.Clone()
			for field, value := range y {
				if !merged.Has(field) {
					merged[field] = value
				}
			}
			result = append(result, merged)
		}
	}
	return result
}

// joinable reports whether x and y hold equal values on every field they share.
func joinable(x, y record.Record) bool {
	for field, value := range x {
		other, shared := y[field]
		if shared && !record.Equal(value, other) {
			return false
		}
	}
	return true
}

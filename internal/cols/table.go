// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"

	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/pipeline"
	"github.com/mia-platform/cols/internal/printer"
	"github.com/mia-platform/cols/internal/record"
)

// Table is a pipeline of records.
type Table struct {
	pipeline *pipeline.Pipeline[record.Sequence]
}

// FromRecords creates a Table holding records.
func FromRecords(records record.Sequence) *Table {
	return &Table{pipeline: pipeline.Resolved(records)}
}

// FailedTable creates a Table failing with err.
func FailedTable(err error) *Table {
	return &Table{pipeline: pipeline.Failed[record.Sequence](err)}
}

// Then chains arbitrary continuations onto the table. It is the primitive every operator
// is built with.
func (t *Table) Then(onSuccess pipeline.OnSuccess[record.Sequence, record.Sequence], onFail pipeline.OnFail[record.Sequence]) *Table {
	return &Table{pipeline: t.pipeline.Then(onSuccess, onFail)}
}

// Resolve runs the pipeline and returns its records.
func (t *Table) Resolve(ctx context.Context) (record.Sequence, error) {
	return t.pipeline.Resolve(ctx)
}

// PrintErrors terminates the chain: a failure is logged, written to the error output of
// the context printer and swallowed. The returned Table resolves to an empty sequence.
func (t *Table) PrintErrors() *Table {
	return t.Then(nil, func(ctx context.Context, err error) (record.Sequence, error) {
		logger.Named(ctx, loggerName).Error("pipeline failed", "error", err)
		printer.FromContext(ctx).PrintError(err)
		return nil, nil
	})
}

// operator chains fn as a named stage. setupErr, typically a lifting failure, fails the
// stage once the input is available.
func (t *Table) operator(name string, setupErr error, fn func(ctx context.Context, input record.Sequence) (record.Sequence, error)) *Table {
	return t.Then(func(ctx context.Context, input record.Sequence) (record.Sequence, error) {
		log := logger.Named(ctx, loggerName).With("operator", name)
		if setupErr != nil {
			log.Debug("operator rejected its arguments", "error", setupErr)
			return nil, setupErr
		}

		output, err := fn(ctx, input)
		if err != nil {
			log.Debug("operator failed", "error", err)
			return nil, err
		}

		log.Trace("operator done", "input", len(input), "output", len(output))
		return output, nil
	}, nil)
}

// Map applies a record->record spec to every record. Records mapped to nil are omitted.
func (t *Table) Map(spec lift.Spec) *Table {
	transform, err := lift.ToTransform(spec)
	return t.operator("map", err, func(_ context.Context, input record.Sequence) (record.Sequence, error) {
		return mapSequence(input, transform)
	})
}

// Filter keeps the records satisfying the predicate spec. Kept records are not modified.
func (t *Table) Filter(spec lift.Spec) *Table {
	predicate, err := lift.ToPredicate(spec)
	if err != nil {
		return t.operator("filter", err, nil)
	}

	return t.Map(lift.Transform(func(r record.Record) (record.Record, error) {
		ok, err := predicate(r)
		if err != nil || !ok {
			return nil, err
		}
		return r, nil
	}))
}

func mapSequence(input record.Sequence, transform lift.Transform) (record.Sequence, error) {
	result := make(record.Sequence, 0, len(input))
	for _, r := range input {
		output, err := transform(r)
		if err != nil {
			return nil, err
		}
		if output != nil {
			result = append(result, output)
		}
	}
	return result, nil
}

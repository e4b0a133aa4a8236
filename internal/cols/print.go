// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"
	"errors"
	"strings"

	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/printer"
	"github.com/mia-platform/cols/internal/record"
)

// Print writes the table to the context printer and passes it through unchanged.
// Without columns the whole sequence is dumped, otherwise every record prints one line
// with the column values separated by a space.
func (t *Table) Print(columns ...lift.Spec) *Table {
	if len(columns) == 0 {
		return t.operator("print", nil, func(ctx context.Context, input record.Sequence) (record.Sequence, error) {
			if input == nil {
				input = record.Sequence{}
			}
			return input, printer.FromContext(ctx).Dump(input)
		})
	}

	fns := make([]lift.Func, len(columns))
	var liftErrs error
	for i, column := range columns {
		fn, err := lift.ToFunc(column)
		liftErrs = errors.Join(liftErrs, err)
		fns[i] = fn
	}

	return t.operator("print", liftErrs, func(ctx context.Context, input record.Sequence) (record.Sequence, error) {
		out := printer.FromContext(ctx)
		values := make([]string, len(fns))
		for _, r := range input {
			for i, fn := range fns {
				value, err := fn(r)
				if err != nil {
					return nil, err
				}
				values[i] = record.Format(value)
			}

			if err := out.Println(strings.Join(values, " ")); err != nil {
				return nil, err
			}
		}
		return input, nil
	})
}

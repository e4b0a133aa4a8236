// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

/*
Package cols turns line oriented tabular text into records and transforms them with a
chain of operators.

A chain starts from Lines, usually read from files, which Columns parses into a Table.
Every Table operator returns a new Table wrapping a deferred computation chained onto the
receiver, so a chain describes the work and Resolve runs it:

	total := cols.File("octane.txt", source.Options{}).
		Columns("browser", "bench", "lines", "score").
		Map(lift.Mapping{
			"lines": lift.Apply(aggregate.Number),
			"score": lift.Apply(aggregate.Number),
		}).
		Group(lift.Field("browser"), lift.Mapping{"score": lift.Apply(aggregate.Average)}).
		Print(lift.Fields("browser", "score")...).
		PrintErrors()

	_, _ = total.Resolve(ctx)

Operator arguments are lift specs: field names, functions or pointwise mappings. A spec
that does not fit the operator fails the chain with an error wrapping lift.ErrUsage, like
an I/O error would.
*/
package cols

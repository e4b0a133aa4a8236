// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/printer"
	"github.com/mia-platform/cols/internal/record"
)

// benchLines are the lines used throughout the operator tests.
var benchLines = []string{
	"chrome box1 10",
	"firefox box1 20",
}

// scores parses benchLines into records with a numeric score.
func scores() *Table {
	return FromLines(benchLines).
		Columns("browser", "bench", "score").
		Map(lift.Mapping{"score": lift.Apply(aggregate.Number)})
}

func resolve(t *testing.T, table *Table) record.Sequence {
	t.Helper()

	result, err := table.Resolve(t.Context())
	require.NoError(t, err)
	return result
}

// printerContext returns a context whose printer writes into the returned buffers.
func printerContext(t *testing.T) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return printer.WithContext(t.Context(), printer.New(out, errOut)), out, errOut
}

func fieldNames(r record.Record) []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

func TestPrintColumns(t *testing.T) {
	t.Parallel()

	ctx, out, _ := printerContext(t)
	table := scores().Print(
		lift.Field("browser"),
		lift.Func(func(r record.Record) (any, error) { return r["score"].(float64) * 2, nil }),
		lift.Field("missing"),
	)

	result, err := table.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "chrome 20 \nfirefox 40 \n", out.String())
	assert.Len(t, result, 2)
}

func TestPrintPassesRecordsThrough(t *testing.T) {
	t.Parallel()

	ctx, _, _ := printerContext(t)
	expected, err := scores().Resolve(ctx)
	require.NoError(t, err)

	result, err := scores().Print(lift.Field("browser")).Print().Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestPrintDump(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		table    *Table
		expected string
	}{
		"records": {
			table:    FromRecords(record.Sequence{{"browser": "chrome", "score": float64(10)}}),
			expected: "[\n\t{\n\t\t\"browser\": \"chrome\",\n\t\t\"score\": 10\n\t}\n]\n",
		},
		"empty sequence": {
			table:    FromRecords(nil),
			expected: "[]\n",
		},
		"not a number parsed from a column": {
			table: FromLines([]string{"a NaN", "b 2"}).
				Columns("n", "v").
				Map(lift.Mapping{"v": lift.Apply(aggregate.Number)}),
			expected: "[\n\t{\n\t\t\"n\": \"a\",\n\t\t\"v\": \"NaN\"\n\t},\n\t{\n\t\t\"n\": \"b\",\n\t\t\"v\": 2\n\t}\n]\n",
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, out, _ := printerContext(t)
			_, err := test.table.Print().Resolve(ctx)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out.String())
		})
	}
}

func TestPrintFailures(t *testing.T) {
	t.Parallel()

	t.Run("column functions failures", func(t *testing.T) {
		t.Parallel()

		ctx, out, _ := printerContext(t)
		_, err := scores().Print(lift.Func(func(record.Record) (any, error) {
			return nil, assert.AnError
		})).Resolve(ctx)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, out.String())
	})

	t.Run("unusable columns", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := printerContext(t)
		_, err := scores().Print(lift.Field("browser"), lift.Mapping{}).Resolve(ctx)
		assert.ErrorIs(t, err, lift.ErrUsage)
	})

	t.Run("upstream failures print nothing", func(t *testing.T) {
		t.Parallel()

		ctx, out, errOut := printerContext(t)
		result, err := FailedTable(assert.AnError).Print().PrintErrors().Resolve(ctx)
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), assert.AnError.Error())
	})
}

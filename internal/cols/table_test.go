// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/record"
)

func TestMap(t *testing.T) {
	t.Parallel()

	input := record.Sequence{
		{"a": "1", "b": "x"},
		{"a": "2"},
		{"b": "y", "c": "3"},
	}

	t.Run("pointwise mapping preserves length and field sets", func(t *testing.T) {
		t.Parallel()

		mapping := lift.Mapping{"a": lift.Apply(aggregate.Number), "c": lift.Apply(aggregate.Number)}
		result := resolve(t, FromRecords(input).Map(mapping))

		require.Len(t, result, len(input))
		for i := range input {
			assert.ElementsMatch(t, fieldNames(input[i]), fieldNames(result[i]))
		}
		assert.Equal(t, float64(1), result[0]["a"])
		assert.Equal(t, "x", result[0]["b"])
		assert.Equal(t, float64(3), result[2]["c"])
	})

	t.Run("input records are not modified", func(t *testing.T) {
		t.Parallel()

		records := record.Sequence{{"a": "1"}}
		_ = resolve(t, FromRecords(records).Map(lift.Mapping{"a": lift.Apply(aggregate.Number), "b": lift.Drop()}))
		assert.Equal(t, record.Sequence{{"a": "1"}}, records)
	})

	t.Run("nil results are omitted", func(t *testing.T) {
		t.Parallel()

		result := resolve(t, FromRecords(input).Map(lift.Transform(func(r record.Record) (record.Record, error) {
			if !r.Has("a") {
				return nil, nil
			}
			return record.Record{"a": r["a"]}, nil
		})))
		assert.Equal(t, record.Sequence{{"a": "1"}, {"a": "2"}}, result)
	})

	t.Run("new fields are derived in the same pass", func(t *testing.T) {
		t.Parallel()

		result := resolve(t, FromRecords(record.Sequence{{"x": float64(2), "y": float64(3)}}).Map(lift.Mapping{
			"sum": lift.Derive(func(r record.Record) (any, error) {
				return r["x"].(float64) + r["y"].(float64), nil
			}),
			"y": lift.Drop(),
		}))
		assert.Equal(t, record.Sequence{{"x": float64(2), "sum": float64(5)}}, result)
	})

	t.Run("unusable spec fails the chain", func(t *testing.T) {
		t.Parallel()

		_, err := FromRecords(input).Map(lift.Field("a")).Resolve(t.Context())
		assert.ErrorIs(t, err, lift.ErrUsage)
	})

	t.Run("earlier failures win over usage errors", func(t *testing.T) {
		t.Parallel()

		_, err := FailedTable(assert.AnError).Map(lift.Field("a")).Resolve(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, lift.ErrUsage)
	})

	t.Run("transform errors fail the chain", func(t *testing.T) {
		t.Parallel()

		_, err := FromRecords(input).Map(lift.Mapping{"b": lift.Apply(aggregate.Number)}).Resolve(t.Context())
		assert.ErrorIs(t, err, aggregate.ErrNotNumber)
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	greaterThan := func(limit float64) lift.ValuePredicate {
		return func(value any) (bool, error) {
			n, ok := record.Number(value)
			return ok && n > limit, nil
		}
	}

	testCases := map[string]struct {
		spec          lift.Spec
		expected      record.Sequence
		expectedError error
	}{
		"where on a field": {
			spec:     lift.Where{"score": greaterThan(10)},
			expected: record.Sequence{{"browser": "firefox", "bench": "box1", "score": float64(20)}},
		},
		"predicate function": {
			spec: lift.Predicate(func(r record.Record) (bool, error) {
				return r["browser"] == "chrome", nil
			}),
			expected: record.Sequence{{"browser": "chrome", "bench": "box1", "score": float64(10)}},
		},
		"truthy field keeps everything": {
			spec: lift.Field("bench"),
			expected: record.Sequence{
				{"browser": "chrome", "bench": "box1", "score": float64(10)},
				{"browser": "firefox", "bench": "box1", "score": float64(20)},
			},
		},
		"missing field keeps nothing": {
			spec:     lift.Field("missing"),
			expected: record.Sequence{},
		},
		"predicate errors fail the chain": {
			spec: lift.Predicate(func(record.Record) (bool, error) {
				return false, assert.AnError
			}),
			expectedError: assert.AnError,
		},
		"unusable spec": {
			spec:          lift.Mapping{},
			expectedError: lift.ErrUsage,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := scores().Filter(test.spec).Resolve(t.Context())
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestFilterDoesNotCopyRecords(t *testing.T) {
	t.Parallel()

	input := record.Sequence{{"keep": "yes"}, {"keep": ""}}
	result := resolve(t, FromRecords(input).Filter(lift.Field("keep")))

	require.Len(t, result, 1)
	result[0]["marker"] = true
	assert.Equal(t, true, input[0]["marker"])
}

func TestPrintErrors(t *testing.T) {
	t.Parallel()

	ctx, out, errOut := printerContext(t)
	logs := new(bytes.Buffer)
	ctx = logger.WithContext(ctx, logger.NewLogger(logs))

	result, err := FromRecords(record.Sequence{{"a": "1"}}).
		Sort().
		Print(lift.Field("a")).
		PrintErrors().
		Resolve(ctx)

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, out.String())
	assert.Equal(t, ErrNoSortKeys.Error()+"\n", errOut.String())
	assert.Contains(t, logs.String(), `"@message":"pipeline failed"`)
}

func TestPrintErrorsPassesDataThrough(t *testing.T) {
	t.Parallel()

	ctx, _, errOut := printerContext(t)
	result, err := scores().PrintErrors().Resolve(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Empty(t, errOut.String())
}

func TestThenOnTable(t *testing.T) {
	t.Parallel()

	result := resolve(t, scores().Then(func(_ context.Context, input record.Sequence) (record.Sequence, error) {
		return input[:1], nil
	}, nil))
	assert.Equal(t, record.Sequence{{"browser": "chrome", "bench": "box1", "score": float64(10)}}, result)
}

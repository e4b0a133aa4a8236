// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strconv"
	"strings"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

type valueFactory func(args string) (lift.Value, error)

var valueFunctions = map[string]valueFactory{
	"number":   noArgs(aggregate.Number),
	"integer":  noArgs(aggregate.Integer),
	"round":    noArgs(aggregate.Round),
	"upper":    noArgs(stringValue(strings.ToUpper)),
	"lower":    noArgs(stringValue(strings.ToLower)),
	"trim":     noArgs(stringValue(strings.TrimSpace)),
	"identity": noArgs(aggregate.Identity),
	"id":       noArgs(aggregate.Identity),
	"sum":      noArgs(aggregate.Sum),
	"product":  noArgs(aggregate.Product),
	"min":      noArgs(aggregate.Minimum),
	"minimum":  noArgs(aggregate.Minimum),
	"max":      noArgs(aggregate.Maximum),
	"maximum":  noArgs(aggregate.Maximum),
	"avg":      noArgs(aggregate.Average),
	"average":  noArgs(aggregate.Average),
	"first":    noArgs(aggregate.First),
	"last":     noArgs(aggregate.Last),
	"count":    noArgs(aggregate.Count),
	"constant": constant,
}

func noArgs(fn lift.Value) valueFactory {
	return func(args string) (lift.Value, error) {
		if args != "" {
			return nil, ErrArguments
		}
		return fn, nil
	}
}

// constant returns its argument, as a number when it is one.
func constant(args string) (lift.Value, error) {
	var value any = args
	if n, err := strconv.ParseFloat(args, 64); err == nil {
		value = n
	}
	return aggregate.Constant(value), nil
}

func stringValue(fn func(string) string) lift.Value {
	return func(value any) (any, error) {
		return fn(record.Format(value)), nil
	}
}

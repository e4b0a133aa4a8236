// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

type predicateFactory func(args string) (lift.ValuePredicate, error)

var predicateFunctions = map[string]predicateFactory{
	"gt":     ordering(func(c int) bool { return c > 0 }),
	"ge":     ordering(func(c int) bool { return c >= 0 }),
	"lt":     ordering(func(c int) bool { return c < 0 }),
	"le":     ordering(func(c int) bool { return c <= 0 }),
	"eq":     equality(true),
	"ne":     equality(false),
	"match":  match,
	"truthy": truthy,
}

// ordering compares the value with a number. nil values never pass, other non numeric
// values are an error.
func ordering(accept func(int) bool) predicateFactory {
	return func(args string) (lift.ValuePredicate, error) {
		threshold, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrArguments, args)
		}

		return func(value any) (bool, error) {
			if value == nil {
				return false, nil
			}

			n, err := aggregate.Number(value)
			if err != nil {
				return false, err
			}
			return accept(record.Compare(n, threshold)), nil
		}, nil
	}
}

// equality compares the printable form of the value with its argument.
func equality(expected bool) predicateFactory {
	return func(args string) (lift.ValuePredicate, error) {
		return func(value any) (bool, error) {
			if n, ok := record.Number(value); ok {
				if threshold, err := strconv.ParseFloat(args, 64); err == nil {
					return (n == threshold) == expected, nil
				}
			}
			return (record.Format(value) == args) == expected, nil
		}, nil
	}
}

func match(args string) (lift.ValuePredicate, error) {
	re, err := regexp.Compile(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArguments, err)
	}

	return func(value any) (bool, error) {
		return re.MatchString(record.Format(value)), nil
	}, nil
}

func truthy(args string) (lift.ValuePredicate, error) {
	if args != "" {
		return nil, ErrArguments
	}

	return func(value any) (bool, error) {
		return record.Truthy(value), nil
	}, nil
}

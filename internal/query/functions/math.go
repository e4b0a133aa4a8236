// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"github.com/mia-platform/cols/internal/aggregate"
)

// Add sums its arguments, converting strings holding numbers.
func Add(first any, others ...any) (float64, error) {
	return foldNumbers(first, others, func(acc, x float64) (float64, error) { return acc + x, nil })
}

// Sub subtracts every following argument from the first one.
func Sub(first any, others ...any) (float64, error) {
	return foldNumbers(first, others, func(acc, x float64) (float64, error) { return acc - x, nil })
}

// Mul multiplies its arguments.
func Mul(first any, others ...any) (float64, error) {
	return foldNumbers(first, others, func(acc, x float64) (float64, error) { return acc * x, nil })
}

// Div divides the first argument by every following one.
func Div(first any, others ...any) (float64, error) {
	return foldNumbers(first, others, func(acc, x float64) (float64, error) {
		if x == 0 {
			return 0, ErrDivisionByZero
		}
		return acc / x, nil
	})
}

func foldNumbers(first any, others []any, fn func(acc, x float64) (float64, error)) (float64, error) {
	acc, err := toNumber(first)
	if err != nil {
		return 0, err
	}

	for _, other := range others {
		x, err := toNumber(other)
		if err != nil {
			return 0, err
		}
		if acc, err = fn(acc, x); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func toNumber(value any) (float64, error) {
	n, err := aggregate.Number(value)
	if err != nil {
		return 0, err
	}
	return n.(float64), nil
}

func round(value any) (float64, error) {
	n, err := aggregate.Round(value)
	if err != nil {
		return 0, err
	}
	return n.(float64), nil
}

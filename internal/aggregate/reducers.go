// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package aggregate

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mia-platform/cols/internal/record"
)

// Sum adds all the numbers in the list. An empty list sums to 0.
func Sum(list any) (any, error) {
	return fold(list, 0, func(acc, x float64) float64 { return acc + x })
}

// Product multiplies all the numbers in the list. An empty list multiplies to 1.
func Product(list any) (any, error) {
	return fold(list, 1, func(acc, x float64) float64 { return acc * x })
}

// Minimum returns the smallest number of the list.
func Minimum(list any) (any, error) {
	return foldNonEmpty(list, math.Min)
}

// Maximum returns the biggest number of the list.
func Maximum(list any) (any, error) {
	return foldNonEmpty(list, math.Max)
}

// Average returns the arithmetic mean of the numbers in the list.
func Average(list any) (any, error) {
	numbers, err := toNumbers(list)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("average: %w", ErrEmpty)
	}

	total := 0.0
	for _, n := range numbers {
		total += n
	}
	return total / float64(len(numbers)), nil
}

// First returns the first element of the list, nil if the list is empty.
func First(list any) (any, error) {
	items, err := toList(list)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// Last returns the last element of the list, nil if the list is empty.
func Last(list any) (any, error) {
	items, err := toList(list)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[len(items)-1], nil
}

// Count returns the number of elements of the list.
func Count(list any) (any, error) {
	items, err := toList(list)
	if err != nil {
		return nil, err
	}
	return float64(len(items)), nil
}

// Identity returns its input unchanged.
func Identity(value any) (any, error) {
	return value, nil
}

// Constant returns a function ignoring its input and always returning value.
func Constant(value any) func(any) (any, error) {
	return func(any) (any, error) {
		return value, nil
	}
}

func fold(list any, init float64, fn func(acc, x float64) float64) (any, error) {
	numbers, err := toNumbers(list)
	if err != nil {
		return nil, err
	}

	acc := init
	for _, n := range numbers {
		acc = fn(acc, n)
	}
	return acc, nil
}

func foldNonEmpty(list any, fn func(acc, x float64) float64) (any, error) {
	numbers, err := toNumbers(list)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, ErrEmpty
	}

	acc := numbers[0]
	for _, n := range numbers[1:] {
		acc = fn(acc, n)
	}
	return acc, nil
}

// toList converts any slice or array to a []any.
func toList(list any) ([]any, error) {
	if items, ok := list.([]any); ok {
		return items, nil
	}
	if list == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotList)
	}

	listType := reflect.TypeOf(list).Kind()
	switch listType {
	case reflect.Slice, reflect.Array:
		reflectedList := reflect.ValueOf(list)
		result := make([]any, reflectedList.Len())
		for i := range reflectedList.Len() {
			result[i] = reflectedList.Index(i).Interface()
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotList, listType.String())
	}
}

func toNumbers(list any) ([]float64, error) {
	items, err := toList(list)
	if err != nil {
		return nil, err
	}

	numbers := make([]float64, len(items))
	for i, item := range items {
		n, ok := record.Number(item)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotNumber, record.Format(item))
		}
		numbers[i] = n
	}
	return numbers, nil
}

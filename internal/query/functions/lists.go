// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strings"
	"unicode/utf8"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/record"
)

// Len returns the number of elements of a list, or the number of characters of any
// other value.
func Len(value any) (int, error) {
	if _, ok := value.(string); !ok {
		if count, err := aggregate.Count(value); err == nil {
			return int(count.(float64)), nil
		}
	}
	return utf8.RuneCountInString(record.Format(value)), nil
}

// First returns the first element of a list.
func First(list any) (any, error) {
	return aggregate.First(list)
}

// Last returns the last element of a list.
func Last(list any) (any, error) {
	return aggregate.Last(list)
}

// Join concatenates the printable form of the list elements with separator.
func Join(separator string, list []any) string {
	parts := make([]string, len(list))
	for i, item := range list {
		parts[i] = record.Format(item)
	}
	return strings.Join(parts, separator)
}

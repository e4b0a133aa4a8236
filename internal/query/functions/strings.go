// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strconv"
	"strings"

	"github.com/mia-platform/cols/internal/record"
)

// Quote wraps the printable form of the value in double quotes.
func Quote(value any) string {
	return strconv.Quote(record.Format(value))
}

// TrimPrefix removes prefix from the printable form of value.
func TrimPrefix(prefix string, value any) string {
	return strings.TrimPrefix(record.Format(value), prefix)
}

// TrimSuffix removes suffix from the printable form of value.
func TrimSuffix(suffix string, value any) string {
	return strings.TrimSuffix(record.Format(value), suffix)
}

// Replace substitutes every occurrence of old with replacement.
func Replace(old, replacement string, value any) string {
	return strings.ReplaceAll(record.Format(value), old, replacement)
}

// Truncate keeps the first length characters of value, or the last ones when length is
// negative. Values shorter than length are returned whole.
func Truncate(length any, value any) (string, error) {
	n, err := toNumber(length)
	if err != nil {
		return "", err
	}

	runes := []rune(record.Format(value))
	size := int(n)
	switch {
	case size < 0 && len(runes)+size > 0:
		return string(runes[len(runes)+size:]), nil
	case size >= 0 && len(runes) > size:
		return string(runes[:size]), nil
	default:
		return string(runes), nil
	}
}

// Split breaks value around every occurrence of separator.
func Split(separator string, value any) []any {
	parts := strings.Split(record.Format(value), separator)
	result := make([]any, len(parts))
	for i, part := range parts {
		result[i] = part
	}
	return result
}

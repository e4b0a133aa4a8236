// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package aggregate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mia-platform/cols/internal/record"
)

// Number parses a string into a float64. Numbers are returned unchanged.
func Number(value any) (any, error) {
	if n, ok := record.Number(value); ok {
		return n, nil
	}

	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, record.Format(value))
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, str)
	}
	return n, nil
}

// Integer parses the leading integer of a string, ignoring anything after it, so that
// "12px" becomes 12. Numbers are truncated toward zero.
func Integer(value any) (any, error) {
	if n, ok := record.Number(value); ok {
		return math.Trunc(n), nil
	}

	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, record.Format(value))
	}

	trimmed := strings.TrimSpace(str)
	end := 0
	for i, c := range trimmed {
		if (c == '-' || c == '+') && i == 0 {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end = i + 1
	}

	n, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, str)
	}
	return float64(n), nil
}

// Round rounds a number to the nearest integer, half away from zero.
func Round(value any) (any, error) {
	n, err := Number(value)
	if err != nil {
		return nil, err
	}
	return math.Round(n.(float64)), nil
}

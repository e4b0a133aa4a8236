// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package record

import (
	"cmp"
	"fmt"
	"reflect"
)

// Compare orders two values: numbers numerically, anything else by its printable form.
// nil sorts after every other value.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	x, xIsNumber := Number(a)
	y, yIsNumber := Number(b)
	if xIsNumber && yIsNumber {
		return cmp.Compare(x, y)
	}

	return cmp.Compare(Format(a), Format(b))
}

// Equal reports whether two values are the same value of the same type.
// Lists are compared element by element.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		if _, isList := b.([]any); isList {
			return false
		}
		if n, ok := Number(a); ok {
			m, ok := Number(b)
			return ok && n == m
		}
		return reflect.DeepEqual(a, b)
	}
}

// castToString converts obj to its string representation.
func castToString(obj any) string {
	switch v := obj.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

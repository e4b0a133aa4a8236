// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package record

import (
	"maps"
	"math"
	"strconv"
	"strings"
)

// Record maps a field name to its value. Values are strings, float64 numbers, nil for
// undefined values, or []any while a group is being built.
type Record map[string]any

// Sequence is an ordered list of records.
type Sequence []Record

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	return maps.Clone(r)
}

// Get returns the value stored at field, nil if the field is missing.
func (r Record) Get(field string) any {
	return r[field]
}

// Has reports whether field is present on the record, even when its value is nil.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Format returns the printable form of a value.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Format(item)
		}
		return strings.Join(parts, ",")
	default:
		return castToString(v)
	}
}

// Number returns value as a float64 when it holds a number.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Truthy reports whether value counts as true when used as a predicate.
// nil, false, empty strings, zero, NaN and empty lists are false.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	default:
		if n, ok := Number(v); ok {
			return n != 0 && !math.IsNaN(n)
		}
		return true
	}
}

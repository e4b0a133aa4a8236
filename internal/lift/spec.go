// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package lift

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mia-platform/cols/internal/record"
)

// Wildcard is the Mapping key applied to present fields with no entry of their own.
const Wildcard = "*"

// Spec is a shorthand accepted in place of an explicit function.
type Spec interface {
	kind() string
}

type (
	// Field names a record field.
	Field string

	// Value transforms a single value.
	Value func(value any) (any, error)

	// Func computes a value from a whole record.
	Func func(r record.Record) (any, error)

	// Transform computes a new record from a record. A nil result drops the record.
	Transform func(r record.Record) (record.Record, error)

	// Predicate decides whether a record is kept.
	Predicate func(r record.Record) (bool, error)

	// ValuePredicate decides on a single field value.
	ValuePredicate func(value any) (bool, error)

	// Mapping is a pointwise record transformation keyed by field name.
	Mapping map[string]Entry

	// Where keeps a record when every per-field predicate passes.
	Where map[string]ValuePredicate
)

func (Field) kind() string     { return "field" }
func (Value) kind() string     { return "value function" }
func (Func) kind() string      { return "record function" }
func (Transform) kind() string { return "transform" }
func (Predicate) kind() string { return "predicate" }
func (Mapping) kind() string   { return "mapping" }
func (Where) kind() string     { return "where" }

func (f Field) String() string { return string(f) }

func (m Mapping) String() string {
	keys := make([]string, 0, len(m))
	for key, entry := range m {
		keys = append(keys, key+":"+entry.String())
	}
	slices.Sort(keys)
	return "{" + strings.Join(keys, ", ") + "}"
}

// Clone returns a copy of the mapping that can be modified freely.
func (m Mapping) Clone() Mapping {
	clone := make(Mapping, len(m)+1)
	for key, entry := range m {
		clone[key] = entry
	}
	return clone
}

// Fields lists the field names as Field specs, handy for Sort and Print.
func Fields(names ...string) []Spec {
	specs := make([]Spec, len(names))
	for i, name := range names {
		specs[i] = Field(name)
	}
	return specs
}

// Entry is the action a Mapping performs on one field: apply a value function, derive the
// value from the whole record, or drop the field.
type Entry struct {
	value  Value
	derive Func
	drop   bool
}

// Apply transforms the field value. For fields missing from the record fn receives nil.
func Apply(fn Value) Entry {
	return Entry{value: fn}
}

// Derive computes the field from the whole record.
func Derive(fn Func) Entry {
	return Entry{derive: fn}
}

// Drop removes the field from the output.
func Drop() Entry {
	return Entry{drop: true}
}

func (e Entry) String() string {
	switch {
	case e.drop:
		return "drop"
	case e.value != nil:
		return "apply"
	case e.derive != nil:
		return "derive"
	default:
		return "invalid"
	}
}

func (e Entry) valid() bool {
	return e.drop || e.value != nil || e.derive != nil
}

// describe returns a printable form of a spec for error messages.
func describe(spec Spec) string {
	switch s := spec.(type) {
	case nil:
		return "<nil>"
	case Field:
		return fmt.Sprintf("%s %q", s.kind(), string(s))
	case Mapping:
		return s.kind() + " " + s.String()
	default:
		return s.kind()
	}
}

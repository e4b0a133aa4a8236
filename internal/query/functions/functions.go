// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/mia-platform/cols/internal/lift"
)

const (
	// DropExpression is the expression removing a field. YAML nulls decode to the empty
	// expression, which drops too.
	DropExpression = "~"
	// TemplateFunction prefixes expressions deriving a value from the whole record.
	TemplateFunction = "template"
)

// Entry resolves a mapping expression into a lift.Entry. Template expressions derive the
// field from the record, the empty and drop expressions remove the field and every other
// expression applies a value function to the field.
func Entry(expression string) (lift.Entry, error) {
	name, args := split(expression)
	switch name {
	case "", DropExpression:
		if args != "" {
			return lift.Entry{}, newExpressionError(expression, ErrArguments)
		}
		return lift.Drop(), nil
	case TemplateFunction:
		fn, err := Template(args)
		if err != nil {
			return lift.Entry{}, newExpressionError(expression, err)
		}
		return lift.Derive(fn), nil
	}

	fn, err := Value(expression)
	if err != nil {
		return lift.Entry{}, err
	}
	return lift.Apply(fn), nil
}

// Mapping resolves every expression of a field to expression map.
func Mapping(expressions map[string]string) (lift.Mapping, error) {
	mapping := make(lift.Mapping, len(expressions))
	for field, expression := range expressions {
		entry, err := Entry(expression)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		mapping[field] = entry
	}
	return mapping, nil
}

// Value resolves an expression into a value function.
func Value(expression string) (lift.Value, error) {
	name, args := split(expression)
	factory, ok := valueFunctions[name]
	if !ok {
		return nil, newExpressionError(expression, fmt.Errorf("%w %q", ErrUnknownFunction, name))
	}

	fn, err := factory(args)
	if err != nil {
		return nil, newExpressionError(expression, err)
	}
	return fn, nil
}

// Predicate resolves an expression into a predicate on a single value.
func Predicate(expression string) (lift.ValuePredicate, error) {
	name, args := split(expression)
	factory, ok := predicateFunctions[name]
	if !ok {
		return nil, newExpressionError(expression, fmt.Errorf("%w %q", ErrUnknownFunction, name))
	}

	fn, err := factory(args)
	if err != nil {
		return nil, newExpressionError(expression, err)
	}
	return fn, nil
}

// Where resolves a field to predicate expression map.
func Where(expressions map[string]string) (lift.Where, error) {
	where := make(lift.Where, len(expressions))
	for field, expression := range expressions {
		predicate, err := Predicate(expression)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		where[field] = predicate
	}
	return where, nil
}

// Key resolves a key expression, as used by sort, group and print: template expressions
// become record functions, anything else names a field.
func Key(expression string) (lift.Spec, error) {
	name, args := split(expression)
	if name != TemplateFunction {
		return lift.Field(strings.TrimSpace(expression)), nil
	}

	fn, err := Template(args)
	if err != nil {
		return nil, newExpressionError(expression, err)
	}
	return fn, nil
}

// ValueFunctions lists the names of the available value functions.
func ValueFunctions() []string {
	return slices.Sorted(maps.Keys(valueFunctions))
}

// PredicateFunctions lists the names of the available predicate functions.
func PredicateFunctions() []string {
	return slices.Sorted(maps.Keys(predicateFunctions))
}

// split separates the function name from the rest of the expression.
func split(expression string) (string, string) {
	expression = strings.TrimSpace(expression)
	index := strings.IndexFunc(expression, unicode.IsSpace)
	if index < 0 {
		return expression, ""
	}
	return expression[:index], strings.TrimSpace(expression[index:])
}

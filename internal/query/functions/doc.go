// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package functions resolves the textual function expressions used in query files.
//
// An expression is a function name optionally followed by its arguments, separated by
// whitespace:
//
//	number
//	constant TOTAL
//	gt 10
//	match ^chrome
//	template {{ add .searchReplace .rename }}
//
// Value expressions transform a single field, predicate expressions decide on a single
// field value and template expressions derive a value from the whole record.
package functions

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package aggregate contains the reducers applied to the lists accumulated by grouping,
// together with a few scalar conversions commonly used right after column parsing.
//
// Every function has the value->value shape func(any) (any, error) so that it can be
// used directly as a pointwise mapping entry.
package aggregate

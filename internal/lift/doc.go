// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package lift normalizes shorthand specs into executable functions.
//
// A Spec is one of a closed set of kinds: a Field name, a Value, Func, Transform or
// Predicate function, a pointwise Mapping or a per-field Where clause. Each operator asks
// for the shape it needs through one of the lift functions:
//
//	ToValue      value -> value
//	ToFunc       record -> value
//	ToTransform  record -> record
//	ToPredicate  record -> bool
//
// A spec that cannot be lifted into the requested shape fails with a *UsageError.
package lift

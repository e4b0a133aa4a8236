// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline provides the deferred computation every cols operator is built on.
//
// A Pipeline wraps a computation that eventually yields one value or fails with an error.
// Pipelines are immutable: Then, Chain and Bind return a new Pipeline chained onto the
// receiver. Work is lazy and memoized, nothing runs until Resolve is called and every
// caller of Resolve observes the same outcome.
//
// Failures skip every success continuation until a failure continuation handles them.
// Errors returned by continuations and panics raised inside them flow through the same
// failure channel.
package pipeline

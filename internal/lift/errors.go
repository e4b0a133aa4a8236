// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package lift

import "errors"

// ErrUsage is wrapped by every error caused by passing an unusable spec to an operator.
var ErrUsage = errors.New("usage error")

// Ensure UsageError implements the error interface.
var _ error = &UsageError{}

// UsageError reports a spec that cannot be lifted into the requested shape.
type UsageError struct {
	// Shape is the function shape that was requested.
	Shape string
	// Spec describes the offending value.
	Spec string
}

func newUsageError(shape string, spec Spec) *UsageError {
	return &UsageError{
		Shape: shape,
		Spec:  describe(spec),
	}
}

func (e *UsageError) Error() string {
	return "not usable as " + e.Shape + ": " + e.Spec
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFunction is returned for expressions naming a function that does not exist.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrArguments is returned when a function receives the wrong arguments.
	ErrArguments = errors.New("invalid arguments")
	// ErrDivisionByZero is returned by the div template function.
	ErrDivisionByZero = errors.New("division by zero")
)

// Ensure ExpressionError implements the error interface.
var _ error = &ExpressionError{}

// ExpressionError reports an expression that could not be resolved.
type ExpressionError struct {
	Expression string
	err        error
}

func newExpressionError(expression string, err error) *ExpressionError {
	return &ExpressionError{
		Expression: expression,
		err:        err,
	}
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("expression %q: %s", e.Expression, e.err)
}

func (e *ExpressionError) Unwrap() error {
	return e.err
}

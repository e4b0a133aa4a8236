// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package aggregate

import "errors"

var (
	// ErrNotList is returned when a reducer receives something other than a list.
	ErrNotList = errors.New("value is not a list")
	// ErrNotNumber is returned when a numeric function receives a non numeric value.
	ErrNotNumber = errors.New("value is not a number")
	// ErrEmpty is returned by reducers that have no meaningful result for an empty list.
	ErrEmpty = errors.New("empty list")
)

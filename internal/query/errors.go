// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package query

import "errors"

var (
	// ErrParsing reports failures that occur while decoding query files.
	ErrParsing = errors.New("error parsing")
	// ErrNoInput is returned when a query has no file to read.
	ErrNoInput = errors.New("no input files")
)

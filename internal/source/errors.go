// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import "errors"

var (
	// ErrUnknownEncoding is returned when the requested encoding label cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// readError decorates an I/O failure with the path of the file being read.
type readError struct {
	path string
	err  error
}

func (e *readError) Error() string {
	return "reading " + e.path + ": " + e.err.Error()
}

func (e *readError) Unwrap() error {
	return e.err
}

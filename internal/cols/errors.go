// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"fmt"

	"github.com/mia-platform/cols/internal/lift"
)

var (
	// ErrNoSortKeys is returned by Sort when it is called without keys.
	ErrNoSortKeys = fmt.Errorf("%w: sort requires at least one key", lift.ErrUsage)
)

// separatorError reports a column separator that is not a valid regular expression.
type separatorError struct {
	separator string
	err       error
}

func (e *separatorError) Error() string {
	return fmt.Sprintf("invalid column separator %q: %s", e.separator, e.err)
}

func (e *separatorError) Unwrap() []error {
	return []error{lift.ErrUsage, e.err}
}

var errNilJoinTable = fmt.Errorf("%w: join requires a table", lift.ErrUsage)

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mia-platform/cols/internal/cols"
	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/printer"
	"github.com/mia-platform/cols/internal/query"
)

const runLoggerName = "cols:run"

// options configures the execution of the run command.
type options struct {
	queryPaths []string
	files      []string
	config     *Config
	printer    printer.Printer
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if len(o.queryPaths) == 0 {
		return errNoQuery
	}

	if problems := o.config.validate(); len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidOptions, strings.Join(problems, ", "))
	}

	return nil
}

// execute runs every query of every query file, in order, stopping at the first failure.
// Queries are all built before any of them runs.
func (o *options) execute(ctx context.Context) error {
	ctx = printer.WithContext(ctx, o.printer)
	log := logger.Named(ctx, runLoggerName)

	queries := make([]*query.Query, 0)
	for _, path := range o.queryPaths {
		loaded, err := query.Load(ctx, path)
		if err != nil {
			return err
		}
		queries = append(queries, loaded...)
	}

	defaults := o.config.queryOptions()
	tables := make([]*cols.Table, len(queries))
	for i, q := range queries {
		table, err := q.Table(o.files, defaults)
		if err != nil {
			return fmt.Errorf("query %d: %w", i+1, err)
		}
		tables[i] = table
	}

	for i, table := range tables {
		log.Debug("running query", "query", i+1, "of", len(tables))
		records, err := table.Resolve(ctx)
		if err != nil {
			return fmt.Errorf("query %d: %w", i+1, err)
		}
		log.Trace("query done", "query", i+1, "records", len(records))
	}

	return nil
}

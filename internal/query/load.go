// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/cols/internal/logger"
)

const loggerName = "cols:query"

// Load parses the queries held by the file at path, in document order. Relative file
// paths inside the queries are resolved against the directory of path.
func Load(ctx context.Context, path string) ([]*Query, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	queries, err := Parse(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	logger.Named(ctx, loggerName).Debug("queries loaded", "path", path, "queries", len(queries))
	return queries, nil
}

// Parse decodes every YAML document of reader into a query. Empty documents are skipped.
// Relative file paths are resolved against dir.
func Parse(reader io.Reader, dir string) ([]*Query, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	queries := make([]*Query, 0)
	for {
		query := new(Query)
		if err := decoder.Decode(&query); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		if query == nil {
			continue
		}

		if err := query.validate(); err != nil {
			return nil, err
		}

		query.setDir(dir)
		queries = append(queries, query)
	}

	return queries, nil
}

// validate checks the query and its nested queries for missing required fields.
func (q *Query) validate() error {
	if len(q.Columns) == 0 {
		return errors.New("missing required fields: columns")
	}

	for i, step := range q.Steps {
		switch step.Kind {
		case StepGroup:
			if step.Group.By == "" {
				return fmt.Errorf("step %d: missing required fields: by", i+1)
			}
		case StepJoin:
			if err := step.Join.validate(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return nil
}

func (q *Query) setDir(dir string) {
	q.dir = dir
	for _, step := range q.Steps {
		if step.Join != nil {
			step.Join.setDir(dir)
		}
	}
}

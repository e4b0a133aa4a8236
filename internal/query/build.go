// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package query

import (
	"fmt"
	"path/filepath"

	"github.com/mia-platform/cols/internal/cols"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/query/functions"
	"github.com/mia-platform/cols/internal/source"
)

// Options holds the settings used by queries that do not set their own.
type Options struct {
	Encoding  string
	Separator string
}

// Table builds the table described by the query. files, when not empty, replaces the files
// listed in the query. Expressions are resolved here, so an invalid query fails before
// any file is read.
func (q *Query) Table(files []string, opts Options) (*cols.Table, error) {
	if len(files) == 0 {
		files = q.paths()
	}
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	encoding := q.Encoding
	if encoding == "" {
		encoding = opts.Encoding
	}
	separator := q.Separator
	if separator == "" {
		separator = opts.Separator
	}

	columns := make([]string, len(q.Columns))
	for i, column := range q.Columns {
		if column != SkipColumn {
			columns[i] = column
		}
	}

	table := cols.Files(files, source.Options{Encoding: encoding}).ColumnsBy(separator, columns...)
	for i, step := range q.Steps {
		var err error
		if table, err = step.apply(table, opts); err != nil {
			return nil, fmt.Errorf("step %d %s: %w", i+1, step.Kind, err)
		}
	}

	return table, nil
}

// paths returns the query files, relative ones joined to the query directory.
func (q *Query) paths() []string {
	paths := make([]string, len(q.Files))
	for i, file := range q.Files {
		if filepath.IsAbs(file) || q.dir == "" {
			paths[i] = file
			continue
		}
		paths[i] = filepath.Join(q.dir, file)
	}
	return paths
}

func (s *Step) apply(table *cols.Table, opts Options) (*cols.Table, error) {
	switch s.Kind {
	case StepMap:
		mapping, err := functions.Mapping(s.Map)
		if err != nil {
			return nil, err
		}
		return table.Map(mapping), nil
	case StepFilter:
		if s.Filter.Where == nil {
			if s.Filter.Field == "" {
				return nil, fmt.Errorf("%w: filter requires a field or predicates", ErrParsing)
			}
			return table.Filter(lift.Field(s.Filter.Field)), nil
		}
		where, err := functions.Where(s.Filter.Where)
		if err != nil {
			return nil, err
		}
		return table.Filter(where), nil
	case StepSort:
		keys, err := resolveKeys(s.Sort)
		if err != nil {
			return nil, err
		}
		return table.Sort(keys...), nil
	case StepGroup:
		key, err := functions.Key(s.Group.By)
		if err != nil {
			return nil, err
		}
		reducers, err := resolveReducers(s.Group.Fields)
		if err != nil {
			return nil, err
		}
		return table.Group(key, reducers), nil
	case StepCollapse:
		reducers, err := resolveReducers(s.Collapse)
		if err != nil {
			return nil, err
		}
		return table.Collapse(reducers), nil
	case StepJoin:
		right, err := s.Join.Table(nil, opts)
		if err != nil {
			return nil, err
		}
		return table.Join(right), nil
	case StepPrint:
		columns, err := resolveKeys(s.Print)
		if err != nil {
			return nil, err
		}
		return table.Print(columns...), nil
	default:
		return nil, fmt.Errorf("%w: empty step", ErrParsing)
	}
}

func resolveKeys(expressions []string) ([]lift.Spec, error) {
	specs := make([]lift.Spec, len(expressions))
	for i, expression := range expressions {
		spec, err := functions.Key(expression)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	return specs, nil
}

// resolveReducers resolves the reducer expressions of group and collapse. No expressions
// means no reducers.
func resolveReducers(expressions map[string]string) (lift.Spec, error) {
	if len(expressions) == 0 {
		return nil, nil
	}
	return functions.Mapping(expressions)
}

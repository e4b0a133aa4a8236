// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cols

import (
	"context"
	"regexp"
	"strings"

	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/pipeline"
	"github.com/mia-platform/cols/internal/record"
	"github.com/mia-platform/cols/internal/source"
)

const (
	loggerName = "cols:pipeline"

	// Skip can be used as a column name to discard that column.
	Skip = ""
)

// Lines is a pipeline of raw text lines.
type Lines struct {
	pipeline *pipeline.Pipeline[[]string]
}

// FromLines creates a Lines pipeline holding lines.
func FromLines(lines []string) *Lines {
	return &Lines{pipeline: pipeline.Resolved(lines)}
}

// File creates a Lines pipeline reading the file at path.
func File(path string, opts source.Options) *Lines {
	return &Lines{
		pipeline: pipeline.Of(func(ctx context.Context) ([]string, error) {
			return source.ReadLines(ctx, path, opts)
		}),
	}
}

// Files creates a Lines pipeline reading all paths concurrently and concatenating their
// lines in the given order.
func Files(paths []string, opts source.Options) *Lines {
	return &Lines{
		pipeline: pipeline.Of(func(ctx context.Context) ([]string, error) {
			return source.ReadFiles(ctx, paths, opts)
		}),
	}
}

// File returns a Lines pipeline with the lines of path appended to the receiver's.
func (l *Lines) File(path string, opts source.Options) *Lines {
	return l.Then(func(ctx context.Context, lines []string) ([]string, error) {
		more, err := source.ReadLines(ctx, path, opts)
		if err != nil {
			return nil, err
		}

		result := make([]string, 0, len(lines)+len(more))
		result = append(result, lines...)
		return append(result, more...), nil
	}, nil)
}

// Then chains arbitrary continuations onto the lines.
func (l *Lines) Then(onSuccess pipeline.OnSuccess[[]string, []string], onFail pipeline.OnFail[[]string]) *Lines {
	return &Lines{pipeline: l.pipeline.Then(onSuccess, onFail)}
}

// Resolve runs the pipeline and returns its lines.
func (l *Lines) Resolve(ctx context.Context) ([]string, error) {
	return l.pipeline.Resolve(ctx)
}

// Columns splits every line on runs of whitespace and assigns token i to names[i].
// Names equal to Skip discard their token, tokens without a name are dropped and names
// without a token get a nil value.
func (l *Lines) Columns(names ...string) *Table {
	return l.ColumnsBy("", names...)
}

// ColumnsBy is Columns with a custom separator, a regular expression. An empty separator
// means runs of whitespace.
func (l *Lines) ColumnsBy(separator string, names ...string) *Table {
	split := strings.Fields
	var separatorErr error
	if separator != "" {
		re, err := regexp.Compile(separator)
		if err != nil {
			separatorErr = &separatorError{separator: separator, err: err}
		} else {
			split = func(line string) []string {
				return re.Split(line, -1)
			}
		}
	}

	names = append([]string(nil), names...)
	return &Table{
		pipeline: pipeline.Chain(l.pipeline, func(ctx context.Context, lines []string) (record.Sequence, error) {
			if separatorErr != nil {
				return nil, separatorErr
			}

			result := make(record.Sequence, len(lines))
			for i, line := range lines {
				result[i] = parseColumns(split(line), names)
			}

			logger.Named(ctx, loggerName).Trace("operator done", "operator", "columns", "output", len(result))
			return result, nil
		}, nil),
	}
}

func parseColumns(tokens, names []string) record.Record {
	r := make(record.Record, len(names))
	for i, name := range names {
		if name == Skip {
			continue
		}

		if i < len(tokens) {
			r[name] = tokens[i]
		} else {
			r[name] = nil
		}
	}
	return r
}

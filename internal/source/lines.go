// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/mia-platform/cols/internal/logger"
)

const (
	loggerName = "cols:source"

	// DefaultEncoding is used when Options does not name an encoding.
	DefaultEncoding = "utf8"
)

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Options configures how files are read.
type Options struct {
	// Encoding is the label of the file encoding, DefaultEncoding when empty.
	Encoding string
}

// Encoding resolves an encoding label such as "utf8", "latin1" or "utf-16le".
func Encoding(label string) (encoding.Encoding, error) {
	if label == "" {
		label = DefaultEncoding
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	return enc, nil
}

// ReadLines reads the file at path and returns its non empty lines. Lines are terminated
// by any of "\n", "\r\n" or "\r".
func ReadLines(ctx context.Context, path string, opts Options) ([]string, error) {
	log := logger.Named(ctx, loggerName)

	enc, err := Encoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &readError{path: path, err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, enc.NewDecoder()))
	if err != nil {
		return nil, &readError{path: path, err: err}
	}

	lines := SplitLines(string(data))
	log.Trace("file read", "path", path, "lines", len(lines))
	return lines, nil
}

// ReadFiles reads all paths concurrently and concatenates their lines in the given order.
func ReadFiles(ctx context.Context, paths []string, opts Options) ([]string, error) {
	results := make([][]string, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	for idx, path := range paths {
		group.Go(func() error {
			lines, err := ReadLines(groupCtx, path, opts)
			if err != nil {
				return err
			}

			results[idx] = lines
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, lines := range results {
		total += len(lines)
	}

	all := make([]string, 0, total)
	for _, lines := range results {
		all = append(all, lines...)
	}
	return all, nil
}

// SplitLines splits text on any line terminator and removes empty lines.
func SplitLines(text string) []string {
	parts := strings.Split(newlineNormalizer.Replace(text), "\n")

	lines := make([]string, 0, len(parts))
	for _, line := range parts {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

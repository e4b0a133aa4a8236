// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mia-platform/cols/internal/pipeline"
)

var (
	errNoQuery        = errors.New("no query file provided")
	errInvalidOptions = errors.New("invalid options")

	// queryExtensions are the extensions of the files collected from query directories.
	queryExtensions = []string{".yaml", ".yml"}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	var panicErr *pipeline.PanicError
	switch {
	case errors.Is(err, errNoQuery):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidOptions):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	case errors.As(err, &panicErr):
		cmd.PrintErrln(err)
		cmd.PrintErrf("%+v\n", panicErr)
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// unwrappedError returns the unwrapped error if available, otherwise it returns the original error.
func unwrappedError(err error) error {
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		return unwrapped
	}

	return err
}

// collectPaths expands every directory in paths into the query files it directly
// contains, the ones with a YAML extension. Paths naming a file are kept as they are.
func collectPaths(paths []string) ([]string, error) {
	collected := make([]string, 0)
	for _, p := range paths {
		root := filepath.Clean(p)
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("query file %q: %w", path, unwrappedError(err))
			}

			switch {
			case path == root && !entry.IsDir():
				collected = append(collected, path)
			case entry.IsDir() && path != root:
				return filepath.SkipDir
			case !entry.IsDir() && slices.Contains(queryExtensions, filepath.Ext(path)):
				collected = append(collected, path)
			}

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return collected, nil
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/printer"
	"github.com/mia-platform/cols/internal/query"
)

const (
	queryPathFlagName  = "query-file"
	queryPathFlagShort = "f"
	queryPathFlagUsage = "Path to a query file or to a directory containing query files. Can be specified multiple times."

	encodingFlagName  = "encoding"
	encodingFlagUsage = "Encoding of the input files for queries that do not set one, overrides COLS_ENCODING"

	separatorFlagName  = "separator"
	separatorFlagUsage = "Regular expression splitting lines into columns for queries that do not set one, overrides COLS_SEPARATOR"

	// logLevelFlagName is the persistent flag of the root command.
	logLevelFlagName = "log-level"
)

// runFlags holds the flags for the "run" command.
type runFlags struct {
	queryPaths []string
	encoding   string
	separator  string
}

// addFlags adds the cli flags to the cobra command.
func (f *runFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(
		&f.queryPaths,
		queryPathFlagName,
		queryPathFlagShort,
		nil,
		queryPathFlagUsage)

	cmd.Flags().StringVar(&f.encoding, encodingFlagName, "", encodingFlagUsage)
	cmd.Flags().StringVar(&f.separator, separatorFlagName, "", separatorFlagUsage)
}

// toOptions merges the environment configuration with the flags and the arguments.
func (f *runFlags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(encodingFlagName) {
		config.Encoding = f.encoding
	}
	if cmd.Flags().Changed(separatorFlagName) {
		config.Separator = f.separator
	}

	if flag := cmd.Flags().Lookup(logLevelFlagName); flag == nil || !flag.Changed {
		logger.FromContext(cmd.Context()).SetLevel(logger.LevelFromString(config.LogLevel))
	}

	queryPaths, err := collectPaths(f.queryPaths)
	if err != nil {
		return nil, err
	}

	return &options{
		queryPaths: queryPaths,
		files:      args,
		config:     config,
		printer:    printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}, nil
}

// queryOptions returns the defaults applied to queries.
func (c *Config) queryOptions() query.Options {
	return query.Options{
		Encoding:  c.Encoding,
		Separator: c.Separator,
	}
}

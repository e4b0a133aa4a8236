// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/cols/internal/query/functions"
)

const (
	runCmdUsage = "run -f QUERY [FILE...]"
	runCmdShort = "run the pipelines described in query files"
	runCmdLong  = `Run the pipelines described in one or more YAML query files.
	Every query reads its input files, splits their lines into columns and runs
	its steps in order; print steps write to the standard output.

	Input files passed as arguments replace the files listed in the queries.
	A query file can hold more than one query, separated by "---", and a
	directory can be passed in place of a file to run every query inside it.`

	runCmdExample = `# Run a report over the files listed in the query
	cols run -f report.yaml

	# Run the same report over other files encoded in latin1
	cols run -f report.yaml --encoding latin1 octane-1.txt octane-2.txt`
)

// RunCmd returns the "run" cli command executing query files.
func RunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:     runCmdUsage,
		Short:   heredoc.Doc(runCmdShort),
		Long:    heredoc.Doc(runCmdLong) + functionsHelp(),
		Example: heredoc.Doc(runCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// functionsHelp lists the functions usable in map, group and filter expressions.
func functionsHelp() string {
	return "\n\nValue functions: " + strings.Join(functions.ValueFunctions(), ", ") +
		"\nPredicate functions: " + strings.Join(functions.PredicateFunctions(), ", ")
}

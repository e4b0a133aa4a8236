// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/cols/internal/logger"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	Version = "test"
	BuildDate = "2024-06-01"

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)

	log := logger.NewLogger(cmd.OutOrStderr())
	ctx := logger.WithContext(t.Context(), log)

	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)

	log.Info("ignored line for set log level")
	lines := strings.Split(buffer.String(), "\n")
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, BuildDate, runtime.Version())+"\n", buffer.String())

	buffer.Reset()
	BuildDate = ""
	cmd.SetArgs([]string{"--log-level", "WARN", "version"})
	err = cmd.ExecuteContext(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 2) // version output + empty line
	assert.Equal(t, versionString(Version, "", runtime.Version())+"\n", buffer.String())
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		version   string
		buildDate string
		expected  string
	}{
		"default values": {
			version:  "DEV",
			expected: "DEV, Go Version: go1.25.6",
		},
		"with version and build date": {
			version:   "1.0.0",
			buildDate: "2026-10-19",
			expected:  "1.0.0 (2026-10-19), Go Version: go1.25.6",
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, versionString(test.version, test.buildDate, "go1.25.6"))
		})
	}
}

func TestRootCommandRunsQueries(t *testing.T) {
	t.Parallel()

	cmd := rootCmd()
	buffer := new(bytes.Buffer)
	cmd.SetOut(buffer)
	cmd.SetErr(new(bytes.Buffer))

	ctx := logger.WithContext(t.Context(), logger.NewLogger(new(bytes.Buffer)))
	cmd.SetArgs([]string{"run", "-f", "internal/cmd/testdata/queries/total.yaml"})
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Equal(t, "35\n", buffer.String())
}

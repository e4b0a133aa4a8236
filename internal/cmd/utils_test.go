// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestFileStructure creates a test file structure under the given baseDir.
func setupTestFileStructure(tb testing.TB, baseDir string) {
	tb.Helper()

	require.NoError(tb, os.MkdirAll(filepath.Join(baseDir, "queries", "subdir"), os.ModePerm))

	for _, name := range []string{
		filepath.Join("queries", "report.yaml"),
		filepath.Join("queries", "totals.yml"),
		filepath.Join("queries", "notes.txt"),
		filepath.Join("queries", "subdir", "nested.yaml"),
	} {
		require.NoError(tb, os.WriteFile(filepath.Join(baseDir, name), []byte("columns: [a]\n"), os.ModePerm))
	}

	require.NoError(tb, os.Symlink(filepath.Join(baseDir, "queries", "report.yaml"), filepath.Join(baseDir, "symlink.file")))

	require.NoError(tb, os.Mkdir(filepath.Join(baseDir, "secret"), os.ModePerm))
	require.NoError(tb, os.Chmod(filepath.Join(baseDir, "secret"), 0o0000))
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package printer implements the diagnostics sinks used by pipelines: a line oriented
// output, a structured dump of whole sequences and an error output.
// A Printer travels inside the context like the logger does.
package printer

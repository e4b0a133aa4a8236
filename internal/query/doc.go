// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package query loads pipelines described in YAML files and builds the matching cols
// tables. A file holds one or more YAML documents, each one a query:
//
//	files: [octane.txt]
//	columns: [browser, bench, ~, score]
//	steps:
//	  - map: {score: number}
//	  - filter: {score: "gt 10"}
//	  - group: {by: browser, fields: {score: average, bench: ~}}
//	  - print: [browser, score]
//
// Step values are expressions resolved by the functions package.
package query

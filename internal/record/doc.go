// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package record defines the schemaless records flowing through a pipeline and the
// helpers used to format, order and compare their values.
package record

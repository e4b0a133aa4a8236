// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package source reads the text files feeding a pipeline and splits them into lines.
// Files can be decoded from any encoding known to the WHATWG encoding standard.
package source

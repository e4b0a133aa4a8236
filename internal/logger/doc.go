// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps hclog behind a small interface and carries loggers through
// context.Context, so that pipeline stages can log without extra parameters.
package logger

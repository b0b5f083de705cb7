// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package main

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

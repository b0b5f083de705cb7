// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package main

import (
	"os"

	qreperr "github.com/qrep-dev/qrep/pkg/errors"
)

func main() {
	// The command reports its own failures on stderr.
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(qreperr.ExitCode(err))
	}
}

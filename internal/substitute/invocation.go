// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

// Package substitute reads a text file, applies one regular-expression
// substitution to its contents and writes the result to another file.
package substitute

import (
	"fmt"

	qreperr "github.com/qrep-dev/qrep/pkg/errors"
)

// ArgCount is the number of positional arguments an invocation takes.
const ArgCount = 4

// Invocation holds the four positional arguments of a single run.
type Invocation struct {
	Pattern     string
	Replacement string
	InputPath   string
	OutputPath  string
}

// ParseArgs builds an Invocation from the raw argument list, excluding the
// program name. Only the count is checked; empty strings and missing paths
// surface later as pattern or file errors.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) != ArgCount {
		return Invocation{}, qreperr.New(qreperr.CodeCLIArgsInvalidCount,
			fmt.Sprintf("wrong number of arguments, expected %d, got %d", ArgCount, len(args)),
			qreperr.Field("expected", ArgCount),
			qreperr.Field("got", len(args)),
		)
	}

	return Invocation{
		Pattern:     args[0],
		Replacement: args[1],
		InputPath:   args[2],
		OutputPath:  args[3],
	}, nil
}

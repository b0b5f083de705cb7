// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package substitute

import (
	"context"
	"log/slog"
)

// Run reads the input file, applies the substitution and writes the output
// file, stopping at the first failing step. Nothing is written unless the
// read and the substitution both succeed.
func Run(inv Invocation) error {
	input, err := ReadInput(inv.InputPath)
	if err != nil {
		return err
	}
	slog.Debug("read input file", "path", inv.InputPath, "bytes", len(input))

	sub, err := Compile(inv.Pattern, inv.Replacement)
	if err != nil {
		return err
	}
	output := sub.Apply(input)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("applied substitution",
			"pattern", inv.Pattern,
			"replacement", inv.Replacement,
			"matches", sub.Count(input),
		)
	}

	if err := WriteOutput(inv.OutputPath, output); err != nil {
		return err
	}
	slog.Debug("wrote output file", "path", inv.OutputPath, "bytes", len(output))

	return nil
}

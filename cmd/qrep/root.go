// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package main

import (
	"log/slog"

	"github.com/qrep-dev/qrep/internal/config"
	"github.com/qrep-dev/qrep/internal/substitute"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the qrep command. It takes exactly four positional
// arguments and no flags: flag parsing is disabled so that patterns such as
// "-?[0-9]+" reach the substitution untouched.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:                "qrep <pattern> <replacement> <input-file> <output-file>",
		Short:              "qrep - quickly replace a string with another in a file",
		Long:               "qrep reads a text file, replaces every match of a regular expression and writes the result to an output file.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			cfg = loaded
			setupLogging(cmd, cfg)
			if err != nil {
				slog.Warn("ignoring invalid configuration, using defaults", "error", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runSubstitution(args); err != nil {
				reportError(cmd.ErrOrStderr(), newStyles(cmd.ErrOrStderr(), cfg.Color), err)
				return err
			}
			return nil
		},
	}

	return root
}

func runSubstitution(args []string) error {
	inv, err := substitute.ParseArgs(args)
	if err != nil {
		return err
	}
	return substitute.Run(inv)
}

// setupLogging installs a text handler on the command's stderr at the
// configured level.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	slog.Debug("starting qrep", "version", version, "commit", commit, "built", date)
}

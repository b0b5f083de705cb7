// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/qrep-dev/qrep/internal/config"
	qreperr "github.com/qrep-dev/qrep/pkg/errors"
)

// --- lipgloss styles ---

type styles struct {
	name        lipgloss.Style
	errorPrefix lipgloss.Style
}

// newStyles binds the styles to w. Under "auto" the terminal decides,
// which also honors NO_COLOR.
func newStyles(w io.Writer, colorMode string) styles {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		name:        r.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		errorPrefix: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func printUsage(w io.Writer, st styles) {
	fmt.Fprintf(w, "%s - quickly replace a string with another in a file\n", st.name.Render("qrep"))
	fmt.Fprintln(w, "Usage: qrep <target string> <replacement string> <input file> <output file>")
}

// reportError writes the diagnostic for err. A wrong argument count is
// preceded by the usage banner.
func reportError(w io.Writer, st styles, err error) {
	if qreperr.HasCode(err, qreperr.CodeCLIArgsInvalidCount) {
		printUsage(w, st)
	}
	fmt.Fprintf(w, "%s %s\n", st.errorPrefix.Render("Error:"), err)
	slog.Debug("run failed",
		"kind", qreperr.KindOf(err),
		"code", qreperr.CodeOf(err),
		"context", qreperr.FieldsOf(err),
	)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package main

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/qrep-dev/qrep/internal/config"
	qreperr "github.com/qrep-dev/qrep/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestReportError_PlainText(t *testing.T) {
	buf := new(bytes.Buffer)
	st := newStyles(buf, config.ColorNever)

	reportError(buf, st, stderrors.New("something failed"))

	assert.Equal(t, "Error: something failed\n", buf.String())
}

func TestReportError_ArgumentCountPrintsUsageFirst(t *testing.T) {
	buf := new(bytes.Buffer)
	st := newStyles(buf, config.ColorNever)

	err := qreperr.New(qreperr.CodeCLIArgsInvalidCount, "wrong number of arguments, expected 4, got 2")
	reportError(buf, st, err)

	assert.Equal(t,
		"qrep - quickly replace a string with another in a file\n"+
			"Usage: qrep <target string> <replacement string> <input file> <output file>\n"+
			"Error: wrong number of arguments, expected 4, got 2\n",
		buf.String(),
	)
}

func TestNewStyles_AlwaysEmitsColor(t *testing.T) {
	buf := new(bytes.Buffer)
	st := newStyles(buf, config.ColorAlways)

	reportError(buf, st, stderrors.New("boom"))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom")
}

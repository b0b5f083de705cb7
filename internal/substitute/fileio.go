// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package substitute

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	qreperr "github.com/qrep-dev/qrep/pkg/errors"
)

// ErrInvalidUTF8 is the cause attached to an input that is not valid text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

const outputFileMode os.FileMode = 0o644

// ReadInput returns the whole content of path as text.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", wrapInput(err, path)
	}
	if !utf8.Valid(data) {
		return "", wrapInput(ErrInvalidUTF8, path)
	}
	return string(data), nil
}

// WriteOutput writes data to path, creating the file or truncating an
// existing one. A failed write may leave a partial file behind.
func WriteOutput(path, data string) error {
	if err := os.WriteFile(path, []byte(data), outputFileMode); err != nil {
		return qreperr.Wrap(err, qreperr.CodeOutputWriteFailure,
			fmt.Sprintf("failed to write data to output file '%s'", path),
			qreperr.FieldPath(path),
		)
	}
	return nil
}

func wrapInput(err error, path string) error {
	return qreperr.Wrap(err, qreperr.CodeInputReadFailure,
		fmt.Sprintf("failed to read input file '%s'", path),
		qreperr.FieldPath(path),
	)
}

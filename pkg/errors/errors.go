// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package errors

import (
	"fmt"

	"github.com/samber/oops"
)

// Code is the machine-readable identifier for an error.
type Code string

const (
	CodeCLIArgsInvalidCount Code = "cli.args.invalid_count"

	CodeInputReadFailure      Code = "input.read.failure"
	CodePatternCompileInvalid Code = "pattern.compile.invalid"
	CodeOutputWriteFailure    Code = "output.write.failure"

	CodeConfigLoadInvalidValue Code = "config.load.invalid_value"
)

// Kind groups codes into the failure classes a user can tell apart.
type Kind string

const (
	KindNone           Kind = ""
	KindArgumentCount  Kind = "ArgumentCountError"
	KindInputRead      Kind = "InputReadError"
	KindPatternCompile Kind = "PatternCompileError"
	KindOutputWrite    Kind = "OutputWriteError"
	KindOther          Kind = "Error"
)

// Attr is a structured key/value context attached to an error.
type Attr struct {
	Key   string
	Value any
}

// Field creates a structured error field.
func Field(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

func FieldPath(value string) Attr {
	return Field("path", value)
}

func FieldPattern(value string) Attr {
	return Field("pattern", value)
}

func FieldReplacement(value string) Attr {
	return Field("replacement", value)
}

func New(code Code, msg string, fields ...Attr) error {
	return oops.Code(code).With(flatten(fields)...).New(msg)
}

func Errorf(code Code, format string, args ...any) error {
	return oops.Code(code).Errorf(format, args...)
}

func Wrap(err error, code Code, msg string, fields ...Attr) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).With(flatten(fields)...).Wrapf(err, "%s", msg)
}

func Wrapf(err error, code Code, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).Wrapf(err, format, args...)
}

func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	if code, ok := oopsErr.Code().(Code); ok {
		return code
	}

	if code, ok := oopsErr.Code().(string); ok {
		return Code(code)
	}

	return Code(fmt.Sprintf("%v", oopsErr.Code()))
}

func FieldsOf(err error) map[string]any {
	if err == nil {
		return nil
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Context()
}

func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// KindOf reports the failure class of err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	switch CodeOf(err) {
	case CodeCLIArgsInvalidCount:
		return KindArgumentCount
	case CodeInputReadFailure:
		return KindInputRead
	case CodePatternCompileInvalid:
		return KindPatternCompile
	case CodeOutputWriteFailure:
		return KindOutputWrite
	default:
		return KindOther
	}
}

// ExitCode maps err to the process exit status. Every failure is fatal
// and shares status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func flatten(fields []Attr) []any {
	pairs := make([]any, 0, len(fields)*2)
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		pairs = append(pairs, field.Key, field.Value)
	}
	return pairs
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 qrep Contributors

package substitute

import (
	"fmt"
	"regexp"

	qreperr "github.com/qrep-dev/qrep/pkg/errors"
)

// Substitution is a compiled pattern paired with its replacement template.
type Substitution struct {
	re          *regexp.Regexp
	replacement string
}

// Compile parses pattern as a regular expression in RE2 syntax and binds it
// to replacement. Inside replacement, $1, ${1}, $name and ${name} expand to
// the matching capture group and $$ to a literal dollar sign. Groups that do
// not exist expand to the empty string.
func Compile(pattern, replacement string) (*Substitution, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, qreperr.Wrap(err, qreperr.CodePatternCompileInvalid,
			fmt.Sprintf("failed to replace with regular expression '%s' and replacement '%s'", pattern, replacement),
			qreperr.FieldPattern(pattern),
			qreperr.FieldReplacement(replacement),
		)
	}
	return &Substitution{re: re, replacement: replacement}, nil
}

// Apply replaces every non-overlapping match in input. Matches are found
// leftmost-first in a single pass; an empty match never directly follows
// the previous match, so the scan always advances. When nothing matches
// the input is returned unchanged.
func (s *Substitution) Apply(input string) string {
	return s.re.ReplaceAllString(input, s.replacement)
}

// Count reports how many replacements Apply would make.
func (s *Substitution) Count(input string) int {
	return len(s.re.FindAllStringIndex(input, -1))
}
